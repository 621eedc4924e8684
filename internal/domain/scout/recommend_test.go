package scout

import "testing"

func TestRecommend_CounterAWPAndWeakLink(t *testing.T) {
	t.Parallel()

	own := TeamAnalysis{HasData: true, Style: TeamStyleBalanced}
	enemy := TeamAnalysis{
		HasData: true,
		Style:   TeamStyleTactical,
		Composition: TeamComposition{
			HasAWPer: true,
		},
		WeakestPlayer: WeakPlayerRef{Handle: "anchor", KD: 0.7, Vulnerability: SeverityHigh},
	}

	recommendations := Recommend(own, enemy, "de_overpass")

	if len(recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d: %+v", len(recommendations), recommendations)
	}
	if recommendations[0].Type != "counter_awp" || recommendations[0].Priority != SeverityHigh {
		t.Fatalf("expected counter_awp first, got %+v", recommendations[0])
	}
	if recommendations[1].Type != "exploit_weakness" || recommendations[1].Priority != SeverityMedium {
		t.Fatalf("expected exploit_weakness second, got %+v", recommendations[1])
	}
	// Unknown map falls back to the generic default setup.
	if recommendations[2].Type != "generic" {
		t.Fatalf("expected generic map guidance, got %+v", recommendations[2])
	}
}

func TestRecommend_PriorityOrderingIsStable(t *testing.T) {
	t.Parallel()

	own := TeamAnalysis{HasData: true, Style: TeamStyleTactical}
	enemy := TeamAnalysis{
		HasData:       true,
		Style:         TeamStyleAggressive,
		Composition:   TeamComposition{HasAWPer: true},
		WeakestPlayer: WeakPlayerRef{Handle: "weak", Vulnerability: SeverityHigh},
	}

	recommendations := Recommend(own, enemy, "de_mirage")

	// Three high-priority rules fire (style, awp, mirage map guidance) and
	// must keep their generation order; the medium weak-link rule trails.
	wantOrder := []string{"counter_style", "counter_awp", "map_control", "exploit_weakness"}
	if len(recommendations) != len(wantOrder) {
		t.Fatalf("expected %d recommendations, got %d", len(wantOrder), len(recommendations))
	}
	for i, want := range wantOrder {
		if recommendations[i].Type != want {
			t.Fatalf("recommendation[%d]=%s want=%s", i, recommendations[i].Type, want)
		}
	}
}

func TestRecommend_MapPlaybookEntries(t *testing.T) {
	t.Parallel()

	own := TeamAnalysis{HasData: true}
	enemy := TeamAnalysis{HasData: true}

	cases := map[string]string{
		"de_mirage":  "Control Middle",
		"de_dust2":   "Long A Control",
		"de_inferno": "Banana Control",
	}

	for mapName, title := range cases {
		recommendations := Recommend(own, enemy, mapName)
		if len(recommendations) != 1 {
			t.Fatalf("map %s: expected only map guidance, got %+v", mapName, recommendations)
		}
		if recommendations[0].Title != title {
			t.Fatalf("map %s: title=%q want=%q", mapName, recommendations[0].Title, title)
		}
	}
}

func TestConfidence(t *testing.T) {
	t.Parallel()

	deepHistory := make([]RecentMatch, 11)
	profiles := []PlayerProfile{
		{Stats: Stats{MatchesPlayed: 150}, RecentMatches: deepHistory},
		{Stats: Stats{MatchesPlayed: 150}, RecentMatches: deepHistory},
	}
	if got := Confidence(profiles); got != 55 {
		t.Fatalf("Confidence=%d want=55", got)
	}

	// 10 per profile + 10 per deep history + 15 recent bonus caps at 95.
	var big []PlayerProfile
	for i := 0; i < 8; i++ {
		big = append(big, PlayerProfile{Stats: Stats{MatchesPlayed: 500}, RecentMatches: deepHistory})
	}
	if got := Confidence(big); got != 95 {
		t.Fatalf("Confidence=%d want=95", got)
	}

	if got := Confidence(nil); got != 0 {
		t.Fatalf("Confidence(nil)=%d want=0", got)
	}

	tiers := []PlayerProfile{
		{Stats: Stats{MatchesPlayed: 60}},
		{Stats: Stats{MatchesPlayed: 25}},
		{Stats: Stats{MatchesPlayed: 5}},
	}
	// 3×10 + 5 + 3 + 0, no recent-match bonus.
	if got := Confidence(tiers); got != 38 {
		t.Fatalf("Confidence=%d want=38", got)
	}
}
