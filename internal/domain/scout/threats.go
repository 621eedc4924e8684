package scout

import "sort"

// DetectThreats scans an opposing roster for standout risks. Rules are
// evaluated independently per player, so one player can raise several threats
// and a quiet roster raises none.
func DetectThreats(enemies []PlayerProfile) []Threat {
	threats := make([]Threat, 0, len(enemies))

	for _, p := range enemies {
		if p.Stats.KD > 1.5 {
			threats = append(threats, Threat{
				Type:            "star_player",
				Player:          p.Handle,
				Role:            p.Analysis.Role,
				KD:              p.Stats.KD,
				Severity:        SeverityHigh,
				CounterStrategy: "Focus fire, use utility to isolate",
			})
		}

		if p.Analysis.Role == RoleAWPer && p.Stats.HeadshotPct > 50 {
			threats = append(threats, Threat{
				Type:            "skilled_awper",
				Player:          p.Handle,
				Role:            p.Analysis.Role,
				HeadshotPct:     p.Stats.HeadshotPct,
				Severity:        SeverityHigh,
				CounterStrategy: "Smoke key angles, use flashes for peeks",
			})
		}

		if p.Analysis.PlayStyle == StyleAggressive && p.Stats.KD > 1.2 {
			threats = append(threats, Threat{
				Type:            "aggressive_player",
				Player:          p.Handle,
				KD:              p.Stats.KD,
				Severity:        SeverityMedium,
				CounterStrategy: "Stack sites, prepare for rushes",
			})
		}
	}

	// Stable: equal-severity threats keep detection order.
	sort.SliceStable(threats, func(i, j int) bool {
		return severityRank(threats[i].Severity) > severityRank(threats[j].Severity)
	})

	return threats
}

// DetectOpportunities finds team-level weaknesses in the opposing roster.
func DetectOpportunities(enemies []PlayerProfile) []Opportunity {
	if len(enemies) == 0 {
		return nil
	}

	opportunities := make([]Opportunity, 0, 3)

	var weak []string
	var winRateSum float64
	hasAWPer := false
	for _, p := range enemies {
		if p.Stats.KD < 0.8 {
			weak = append(weak, p.Handle)
		}
		winRateSum += p.Stats.WinRate
		if p.Analysis.Role == RoleAWPer {
			hasAWPer = true
		}
	}

	if len(weak) > 0 {
		opportunities = append(opportunities, Opportunity{
			Type:         "weak_players",
			Targets:      weak,
			Exploitation: "Target these players for easy picks",
		})
	}

	if avgWinRate := winRateSum / float64(len(enemies)); avgWinRate < 45 {
		opportunities = append(opportunities, Opportunity{
			Type:         "low_confidence_team",
			WinRate:      avgWinRate,
			Exploitation: "Apply pressure early to break morale",
		})
	}

	if !hasAWPer {
		opportunities = append(opportunities, Opportunity{
			Type:         "no_awper",
			Exploitation: "Control long ranges with AWP",
		})
	}

	return opportunities
}
