package scout

import (
	"fmt"
	"sort"
)

var mapPlaybook = map[string][]Recommendation{
	"de_mirage": {
		{
			Type:        "map_control",
			Priority:    SeverityHigh,
			Title:       "Control Middle",
			Description: "Mid control is crucial on Mirage",
			Actions:     []string{"Smoke window/connector early", "Contest mid with 2 players"},
		},
	},
	"de_dust2": {
		{
			Type:        "map_control",
			Priority:    SeverityHigh,
			Title:       "Long A Control",
			Description: "Take long control for map presence",
			Actions:     []string{"Rush long with flash support", "Smoke CT cross"},
		},
	},
	"de_inferno": {
		{
			Type:        "map_control",
			Priority:    SeverityHigh,
			Title:       "Banana Control",
			Description: "Control banana for B site pressure",
			Actions:     []string{"Molly car position", "Flash over for control"},
		},
	},
}

var defaultMapRecommendations = []Recommendation{
	{
		Type:        "generic",
		Priority:    SeverityMedium,
		Title:       "Default Setup",
		Description: "Play standard positions and gather info",
		Actions:     []string{"Spread across map", "Look for picks"},
	},
}

// Recommend produces the tactical plan for facing the opposing roster. Rules
// fire independently in a fixed order (style, AWP, weak link, then map
// guidance); the final list is sorted by priority with equal-priority entries
// keeping that generation order.
func Recommend(own, enemy TeamAnalysis, mapName string) []Recommendation {
	recommendations := make([]Recommendation, 0, 4)

	if enemy.Style == TeamStyleAggressive && own.Style == TeamStyleTactical {
		recommendations = append(recommendations, Recommendation{
			Type:        "counter_style",
			Priority:    SeverityHigh,
			Title:       "Counter Aggressive Play",
			Description: "Enemy team plays aggressive. Use utility to slow pushes and play for trades.",
			Actions: []string{
				"Stack bombsites early in rounds",
				"Use incendiaries on chokepoints",
				"Play crossfires and trade frags",
			},
		})
	}

	if enemy.Composition.HasAWPer {
		recommendations = append(recommendations, Recommendation{
			Type:        "counter_awp",
			Priority:    SeverityHigh,
			Title:       "Neutralize Enemy AWPer",
			Description: "Enemy has dedicated AWPer. Control their angles.",
			Actions: []string{
				"Smoke common AWP angles immediately",
				"Use coordinated flashes for peeks",
				"Force close-range engagements",
			},
		})
	}

	if enemy.WeakestPlayer.Vulnerability == SeverityHigh {
		recommendations = append(recommendations, Recommendation{
			Type:        "exploit_weakness",
			Priority:    SeverityMedium,
			Title:       "Target Weak Link",
			Description: fmt.Sprintf("Focus %s - lowest performer on enemy team.", enemy.WeakestPlayer.Handle),
			Actions: []string{
				"Push their typical positions",
				"Force duels against this player",
				"Exploit for map control",
			},
		})
	}

	if mapRecs, ok := mapPlaybook[mapName]; ok {
		recommendations = append(recommendations, mapRecs...)
	} else {
		recommendations = append(recommendations, defaultMapRecommendations...)
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return severityRank(recommendations[i].Priority) > severityRank(recommendations[j].Priority)
	})

	return recommendations
}
