package scout

// Confidence scores how much the briefing can be trusted given the amount of
// data behind it: 10 points per profile, a bonus for deep match histories,
// and 15 when at least one player has a meaningful recent-match sample.
// Capped at 95 because scouting data is never a guarantee.
func Confidence(profiles []PlayerProfile) int {
	confidence := len(profiles) * 10

	for _, p := range profiles {
		switch {
		case p.Stats.MatchesPlayed > 100:
			confidence += 10
		case p.Stats.MatchesPlayed > 50:
			confidence += 5
		case p.Stats.MatchesPlayed > 20:
			confidence += 3
		}
	}

	for _, p := range profiles {
		if len(p.RecentMatches) > 10 {
			confidence += 15
			break
		}
	}

	if confidence > 95 {
		confidence = 95
	}
	return confidence
}
