package scout

// Rule cascades are ordered; the first matching predicate wins. Keeping them
// as explicit lists makes the fallback and tie-break policy testable on its
// own instead of being buried in nested conditionals.

type roleRule struct {
	role  Role
	match func(Stats) bool
}

var roleRules = []roleRule{
	{RoleAWPer, func(s Stats) bool { return s.HeadshotPct > 50 && s.KD > 1.2 }},
	{RoleEntryFragger, func(s Stats) bool { return s.ADR > 85 && s.KD > 1.1 }},
	{RolePlaymaker, func(s Stats) bool { return s.MVPs > 0.25*s.MatchesPlayed }},
	{RoleSupport, func(s Stats) bool { return s.KD < 0.9 && s.Accuracy > 20 }},
}

// InferRole derives the player's likely in-game function. Deterministic for
// identical stats.
func InferRole(s Stats) Role {
	for _, rule := range roleRules {
		if rule.match(s) {
			return rule.role
		}
	}
	return RoleRifler
}

type styleRule struct {
	style PlayStyle
	match func(Stats) bool
}

var styleRules = []styleRule{
	{StyleAggressive, func(s Stats) bool { return s.KD > 1.3 && s.Accuracy > 25 }},
	{StyleBalanced, func(s Stats) bool { return s.WinRate > 55 && s.KD > 1.0 }},
	{StyleSupportive, func(s Stats) bool { return s.Accuracy > 22 && s.KD < 1.0 }},
}

func InferPlayStyle(s Stats) PlayStyle {
	for _, rule := range styleRules {
		if rule.match(s) {
			return rule.style
		}
	}
	return StylePassive
}

type tagRule struct {
	tag   string
	match func(Stats) bool
}

var strengthRules = []tagRule{
	{"high_headshot_rate", func(s Stats) bool { return s.HeadshotPct > 50 }},
	{"good_fragger", func(s Stats) bool { return s.KD > 1.2 }},
	{"winner_mentality", func(s Stats) bool { return s.WinRate > 55 }},
	{"good_aim", func(s Stats) bool { return s.Accuracy > 25 }},
	{"mvp_player", func(s Stats) bool { return s.MVPs > 0.25*s.MatchesPlayed }},
}

var weaknessRules = []tagRule{
	{"low_kd", func(s Stats) bool { return s.KD < 0.8 }},
	{"low_headshot_rate", func(s Stats) bool { return s.HeadshotPct < 35 }},
	{"low_win_rate", func(s Stats) bool { return s.WinRate < 45 }},
	{"poor_aim", func(s Stats) bool { return s.Accuracy < 15 }},
}

// IdentifyStrengths returns every strength tag whose threshold the stat block
// clears. Tags are independent; a profile may carry several or none.
func IdentifyStrengths(s Stats) []string {
	return matchTags(strengthRules, s)
}

func IdentifyWeaknesses(s Stats) []string {
	return matchTags(weaknessRules, s)
}

func matchTags(rules []tagRule, s Stats) []string {
	tags := make([]string, 0, len(rules))
	for _, rule := range rules {
		if rule.match(s) {
			tags = append(tags, rule.tag)
		}
	}
	return tags
}

// Analyze bundles the full per-player derivation.
func Analyze(s Stats) Analysis {
	return Analysis{
		Role:       InferRole(s),
		PlayStyle:  InferPlayStyle(s),
		Strengths:  IdentifyStrengths(s),
		Weaknesses: IdentifyWeaknesses(s),
	}
}

// RecentFormOf classifies the player's current shape from their recent match
// list: high average rating with a winning record reads hot, the opposite
// reads cold.
func RecentFormOf(matches []RecentMatch) Form {
	if len(matches) == 0 {
		return FormUnknown
	}

	var ratingSum float64
	var wins int
	for _, m := range matches {
		ratingSum += m.Rating
		if m.Result == "win" {
			wins++
		}
	}

	avgRating := ratingSum / float64(len(matches))
	winShare := float64(wins) / float64(len(matches))

	switch {
	case avgRating > 1.1 && winShare > 0.6:
		return FormHot
	case avgRating < 0.9 || winShare < 0.4:
		return FormCold
	default:
		return FormAverage
	}
}
