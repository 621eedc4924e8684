package scout

type teamStyleRule struct {
	style TeamStyle
	match func(avgKD float64, comp TeamComposition) bool
}

var teamStyleRules = []teamStyleRule{
	{TeamStyleAggressive, func(avgKD float64, comp TeamComposition) bool {
		return avgKD > 1.1 && comp.EntryFraggers >= 2
	}},
	{TeamStyleTactical, func(avgKD float64, comp TeamComposition) bool {
		return comp.HasAWPer && avgKD > 1.0
	}},
	{TeamStyleDefensive, func(avgKD float64, comp TeamComposition) bool {
		return avgKD < 0.9
	}},
}

var strategyByStyle = map[TeamStyle]string{
	TeamStyleAggressive: "Fast executes and map control",
	TeamStyleTactical:   "Slow defaults with AWP control",
	TeamStyleDefensive:  "Passive holds and late rotates",
	TeamStyleBalanced:   "Standard defaults and mid-round calls",
}

// AnalyzeTeam aggregates a roster into a TeamAnalysis. An empty roster yields
// an explicit no-data result with zeroed numbers rather than NaN averages.
func AnalyzeTeam(profiles []PlayerProfile) TeamAnalysis {
	if len(profiles) == 0 {
		return TeamAnalysis{HasData: false}
	}

	var kdSum, winRateSum, ratingSum float64
	comp := TeamComposition{Roles: make(map[Role]int, len(profiles))}
	for _, p := range profiles {
		kdSum += p.Stats.KD
		winRateSum += p.Stats.WinRate
		ratingSum += p.Rating.Value
		comp.Roles[p.Analysis.Role]++
	}
	comp.HasAWPer = comp.Roles[RoleAWPer] > 0
	comp.EntryFraggers = comp.Roles[RoleEntryFragger]
	comp.Supports = comp.Roles[RoleSupport]

	count := float64(len(profiles))
	avgKD := kdSum / count

	// Strict comparisons so that on equal KD the first-seen player keeps
	// both the top and the weakest slot.
	top, weakest := profiles[0], profiles[0]
	for _, p := range profiles[1:] {
		if p.Stats.KD > top.Stats.KD {
			top = p
		}
		if p.Stats.KD < weakest.Stats.KD {
			weakest = p
		}
	}

	vulnerability := SeverityMedium
	if weakest.Stats.KD < 0.8 {
		vulnerability = SeverityHigh
	}

	style := TeamStyleBalanced
	for _, rule := range teamStyleRules {
		if rule.match(avgKD, comp) {
			style = rule.style
			break
		}
	}

	return TeamAnalysis{
		HasData:        true,
		PlayerCount:    len(profiles),
		AverageKD:      avgKD,
		AverageWinRate: winRateSum / count,
		AverageRating:  ratingSum / count,
		TopPlayer: TeamPlayerRef{
			Handle: top.Handle,
			KD:     top.Stats.KD,
			Role:   top.Analysis.Role,
		},
		WeakestPlayer: WeakPlayerRef{
			Handle:        weakest.Handle,
			KD:            weakest.Stats.KD,
			Vulnerability: vulnerability,
		},
		Composition:       comp,
		Style:             style,
		PredictedStrategy: strategyByStyle[style],
	}
}
