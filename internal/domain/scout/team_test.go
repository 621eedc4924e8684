package scout

import (
	"math"
	"testing"
)

func profileWith(handle string, kd, winRate, rating float64, role Role) PlayerProfile {
	return PlayerProfile{
		Handle:   handle,
		Stats:    Stats{KD: kd, WinRate: winRate},
		Rating:   Rating{Value: rating},
		Analysis: Analysis{Role: role},
	}
}

func TestAnalyzeTeam_Averages(t *testing.T) {
	t.Parallel()

	analysis := AnalyzeTeam([]PlayerProfile{
		profileWith("a", 1.0, 50, 1000, RoleRifler),
		profileWith("b", 2.0, 60, 1200, RoleRifler),
	})

	if !analysis.HasData {
		t.Fatal("expected HasData=true")
	}
	if analysis.AverageKD != 1.5 {
		t.Fatalf("AverageKD=%v want=1.5", analysis.AverageKD)
	}
	if analysis.AverageWinRate != 55 {
		t.Fatalf("AverageWinRate=%v want=55", analysis.AverageWinRate)
	}
	if analysis.AverageRating != 1100 {
		t.Fatalf("AverageRating=%v want=1100", analysis.AverageRating)
	}
	if analysis.TopPlayer.Handle != "b" || analysis.WeakestPlayer.Handle != "a" {
		t.Fatalf("unexpected top/weakest: top=%s weakest=%s", analysis.TopPlayer.Handle, analysis.WeakestPlayer.Handle)
	}
}

func TestAnalyzeTeam_EmptyInputIsExplicitNoData(t *testing.T) {
	t.Parallel()

	analysis := AnalyzeTeam(nil)
	if analysis.HasData {
		t.Fatal("expected HasData=false for empty roster")
	}
	for name, v := range map[string]float64{
		"AverageKD":      analysis.AverageKD,
		"AverageWinRate": analysis.AverageWinRate,
		"AverageRating":  analysis.AverageRating,
	} {
		if math.IsNaN(v) || v != 0 {
			t.Fatalf("%s=%v want 0", name, v)
		}
	}
}

func TestAnalyzeTeam_TiesKeepFirstOccurrence(t *testing.T) {
	t.Parallel()

	analysis := AnalyzeTeam([]PlayerProfile{
		profileWith("first", 1.1, 50, 0, RoleRifler),
		profileWith("second", 1.1, 50, 0, RoleRifler),
		profileWith("third", 1.1, 50, 0, RoleRifler),
	})

	if analysis.TopPlayer.Handle != "first" {
		t.Fatalf("TopPlayer=%s want=first", analysis.TopPlayer.Handle)
	}
	if analysis.WeakestPlayer.Handle != "first" {
		t.Fatalf("WeakestPlayer=%s want=first", analysis.WeakestPlayer.Handle)
	}
}

func TestAnalyzeTeam_StyleCascade(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		profiles []PlayerProfile
		want     TeamStyle
		strategy string
	}{
		{
			"aggressive on kd and double entry",
			[]PlayerProfile{
				profileWith("a", 1.3, 50, 0, RoleEntryFragger),
				profileWith("b", 1.2, 50, 0, RoleEntryFragger),
			},
			TeamStyleAggressive,
			"Fast executes and map control",
		},
		{
			"tactical on awper with positive kd",
			[]PlayerProfile{
				profileWith("a", 1.2, 50, 0, RoleAWPer),
				profileWith("b", 1.0, 50, 0, RoleRifler),
			},
			TeamStyleTactical,
			"Slow defaults with AWP control",
		},
		{
			"defensive on low kd",
			[]PlayerProfile{
				profileWith("a", 0.8, 50, 0, RoleRifler),
				profileWith("b", 0.85, 50, 0, RoleSupport),
			},
			TeamStyleDefensive,
			"Passive holds and late rotates",
		},
		{
			"balanced fallback",
			[]PlayerProfile{
				profileWith("a", 1.0, 50, 0, RoleRifler),
			},
			TeamStyleBalanced,
			"Standard defaults and mid-round calls",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			analysis := AnalyzeTeam(tc.profiles)
			if analysis.Style != tc.want {
				t.Fatalf("Style=%s want=%s", analysis.Style, tc.want)
			}
			if analysis.PredictedStrategy != tc.strategy {
				t.Fatalf("PredictedStrategy=%q want=%q", analysis.PredictedStrategy, tc.strategy)
			}
		})
	}
}

func TestAnalyzeTeam_WeakestVulnerability(t *testing.T) {
	t.Parallel()

	high := AnalyzeTeam([]PlayerProfile{
		profileWith("ok", 1.2, 50, 0, RoleRifler),
		profileWith("struggling", 0.7, 50, 0, RoleRifler),
	})
	if high.WeakestPlayer.Vulnerability != SeverityHigh {
		t.Fatalf("Vulnerability=%s want=high", high.WeakestPlayer.Vulnerability)
	}

	medium := AnalyzeTeam([]PlayerProfile{
		profileWith("ok", 1.2, 50, 0, RoleRifler),
		profileWith("fine", 0.95, 50, 0, RoleRifler),
	})
	if medium.WeakestPlayer.Vulnerability != SeverityMedium {
		t.Fatalf("Vulnerability=%s want=medium", medium.WeakestPlayer.Vulnerability)
	}
}
