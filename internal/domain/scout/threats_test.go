package scout

import "testing"

func TestDetectThreats_StarPlayerThreshold(t *testing.T) {
	t.Parallel()

	star := scoutedProfile(t, "star", Stats{KD: 1.6})
	threats := DetectThreats([]PlayerProfile{star})
	if len(threats) != 1 {
		t.Fatalf("expected one threat, got %d", len(threats))
	}
	if threats[0].Type != "star_player" || threats[0].Severity != SeverityHigh {
		t.Fatalf("unexpected threat: %+v", threats[0])
	}

	below := scoutedProfile(t, "solid", Stats{KD: 1.4})
	if got := DetectThreats([]PlayerProfile{below}); len(got) != 0 {
		t.Fatalf("expected no threats for kd=1.4, got %+v", got)
	}
}

// scoutedProfile builds a profile whose analysis labels are derived from
// the given stats, as the normalizer would produce.
func scoutedProfile(t *testing.T, handle string, stats Stats) PlayerProfile {
	t.Helper()
	return PlayerProfile{
		Handle:   handle,
		Stats:    stats,
		Analysis: Analyze(stats),
	}
}

func TestDetectThreats_OnePlayerCanRaiseSeveral(t *testing.T) {
	t.Parallel()

	// High kd + awper headshots + aggressive style all at once.
	stats := Stats{KD: 1.6, HeadshotPct: 55, Accuracy: 26}
	p := scoutedProfile(t, "ace", stats)

	threats := DetectThreats([]PlayerProfile{p})
	if len(threats) != 3 {
		t.Fatalf("expected three threats, got %d: %+v", len(threats), threats)
	}

	// Sorted high before medium; the two high entries keep detection order.
	if threats[0].Type != "star_player" || threats[1].Type != "skilled_awper" {
		t.Fatalf("unexpected high-severity ordering: %s, %s", threats[0].Type, threats[1].Type)
	}
	if threats[2].Type != "aggressive_player" || threats[2].Severity != SeverityMedium {
		t.Fatalf("unexpected tail threat: %+v", threats[2])
	}
}

func TestDetectThreats_SortsBySeverityAcrossPlayers(t *testing.T) {
	t.Parallel()

	aggressive := scoutedProfile(t, "pusher", Stats{KD: 1.35, Accuracy: 26})
	star := scoutedProfile(t, "carry", Stats{KD: 1.7, Accuracy: 10})

	threats := DetectThreats([]PlayerProfile{aggressive, star})
	if len(threats) < 2 {
		t.Fatalf("expected at least two threats, got %d", len(threats))
	}
	if threats[0].Severity != SeverityHigh || threats[0].Player != "carry" {
		t.Fatalf("expected carry's high threat first, got %+v", threats[0])
	}
}

func TestDetectOpportunities(t *testing.T) {
	t.Parallel()

	enemies := []PlayerProfile{
		scoutedProfile(t, "weak1", Stats{KD: 0.7, WinRate: 40}),
		scoutedProfile(t, "weak2", Stats{KD: 0.75, WinRate: 42}),
		scoutedProfile(t, "mid", Stats{KD: 1.0, WinRate: 48}),
	}

	opportunities := DetectOpportunities(enemies)
	if len(opportunities) != 3 {
		t.Fatalf("expected weak_players, low_confidence_team and no_awper, got %+v", opportunities)
	}

	if opportunities[0].Type != "weak_players" {
		t.Fatalf("first opportunity=%s want=weak_players", opportunities[0].Type)
	}
	if got := opportunities[0].Targets; len(got) != 2 || got[0] != "weak1" || got[1] != "weak2" {
		t.Fatalf("unexpected targets: %v", got)
	}
	if opportunities[1].Type != "low_confidence_team" {
		t.Fatalf("second opportunity=%s want=low_confidence_team", opportunities[1].Type)
	}
	if opportunities[2].Type != "no_awper" {
		t.Fatalf("third opportunity=%s want=no_awper", opportunities[2].Type)
	}
}

func TestDetectOpportunities_NoneOnStrongRoster(t *testing.T) {
	t.Parallel()

	enemies := []PlayerProfile{
		scoutedProfile(t, "awp", Stats{KD: 1.3, HeadshotPct: 55, WinRate: 60}),
		scoutedProfile(t, "frag", Stats{KD: 1.2, WinRate: 58}),
	}

	if got := DetectOpportunities(enemies); len(got) != 0 {
		t.Fatalf("expected no opportunities, got %+v", got)
	}
}
