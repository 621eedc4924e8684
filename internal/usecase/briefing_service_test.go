package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riwahl/match-scout/internal/domain/scout"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	profiles map[string]scout.PlayerProfile
	errs     map[string]error
}

func (r *stubResolver) GetProfile(_ context.Context, playerID string) (scout.PlayerProfile, error) {
	if err, ok := r.errs[playerID]; ok {
		return scout.PlayerProfile{}, err
	}
	if p, ok := r.profiles[playerID]; ok {
		return p, nil
	}
	return scout.PlayerProfile{}, errors.New("unexpected player id " + playerID)
}

func analyzedProfile(handle string, stats scout.Stats) scout.PlayerProfile {
	return scout.PlayerProfile{
		PlayerID: handle,
		Handle:   handle,
		Source:   scout.SourceProvider,
		Stats:    stats,
		Analysis: scout.Analyze(stats),
	}
}

func TestBriefingService_BuildBriefing_FlagsEnemyAWPer(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{profiles: map[string]scout.PlayerProfile{
		"own-1":   analyzedProfile("own-1", scout.Stats{KD: 1.0}),
		"enemy-1": analyzedProfile("enemy-1", scout.Stats{KD: 1.6, HeadshotPct: 55}),
	}}
	service := NewBriefingService(resolver, nil, 4)

	briefing, err := service.BuildBriefing(context.Background(), BriefingInput{
		OwnPlayerIDs:   []string{"own-1"},
		EnemyPlayerIDs: []string{"enemy-1"},
		Map:            "de_train",
	})
	require.NoError(t, err)

	highThreats := 0
	for _, threat := range briefing.Threats {
		if threat.Severity != scout.SeverityHigh {
			continue
		}
		highThreats++
		require.Contains(t, []string{"star_player", "skilled_awper"}, threat.Type)
	}
	require.GreaterOrEqual(t, highThreats, 1)

	var counterAWP *scout.Recommendation
	for i := range briefing.Recommendations {
		if briefing.Recommendations[i].Type == "counter_awp" {
			counterAWP = &briefing.Recommendations[i]
			break
		}
	}
	require.NotNil(t, counterAWP, "expected a counter_awp recommendation against an AWPer roster")
	require.Equal(t, scout.SeverityHigh, counterAWP.Priority)
}

func TestBriefingService_BuildBriefing_ConfidenceUsesEnemyDataOnly(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{profiles: map[string]scout.PlayerProfile{
		// Own roster has deep history which must not inflate confidence.
		"own-1":   analyzedProfile("own-1", scout.Stats{KD: 1.2, MatchesPlayed: 1000}),
		"enemy-1": analyzedProfile("enemy-1", scout.Stats{KD: 0.9, MatchesPlayed: 60}),
	}}
	service := NewBriefingService(resolver, nil, 4)

	briefing, err := service.BuildBriefing(context.Background(), BriefingInput{
		OwnPlayerIDs:   []string{"own-1"},
		EnemyPlayerIDs: []string{"enemy-1"},
	})
	require.NoError(t, err)

	// One enemy profile at 10 points plus the >50 matches bonus.
	require.Equal(t, 15, briefing.Confidence)
}

func TestBriefingService_BuildBriefing_DropsFailedPlayersAndContinues(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{
		profiles: map[string]scout.PlayerProfile{
			"enemy-1": analyzedProfile("enemy-1", scout.Stats{KD: 1.1}),
		},
		errs: map[string]error{
			"enemy-2": errors.New("resolver blew up"),
		},
	}
	service := NewBriefingService(resolver, nil, 4)

	briefing, err := service.BuildBriefing(context.Background(), BriefingInput{
		EnemyPlayerIDs: []string{"enemy-1", "enemy-2"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, briefing.Opponents.PlayerCount)
	require.True(t, briefing.Opponents.HasData)
	require.False(t, briefing.Team.HasData)
}

func TestBriefingService_BuildBriefing_TotalFailureReturnsBriefingError(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{errs: map[string]error{
		"enemy-1": errors.New("down"),
		"enemy-2": errors.New("down"),
	}}
	service := NewBriefingService(resolver, nil, 4)

	_, err := service.BuildBriefing(context.Background(), BriefingInput{
		EnemyPlayerIDs: []string{"enemy-1", "enemy-2"},
	})

	var briefingErr *BriefingError
	require.ErrorAs(t, err, &briefingErr)
	require.Equal(t, FallbackStrategy, briefingErr.FallbackStrategy)
}

func TestBriefingService_BuildBriefing_RejectsEmptyRosters(t *testing.T) {
	t.Parallel()

	service := NewBriefingService(&stubResolver{}, nil, 4)

	_, err := service.BuildBriefing(context.Background(), BriefingInput{
		OwnPlayerIDs:   []string{" ", ""},
		EnemyPlayerIDs: nil,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBriefingService_BuildBriefing_DedupesRosterIDs(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{profiles: map[string]scout.PlayerProfile{
		"enemy-1": analyzedProfile("enemy-1", scout.Stats{KD: 1.0}),
	}}
	service := NewBriefingService(resolver, nil, 4)

	briefing, err := service.BuildBriefing(context.Background(), BriefingInput{
		EnemyPlayerIDs: []string{"enemy-1", "enemy-1", " enemy-1 "},
	})
	require.NoError(t, err)
	require.Equal(t, 1, briefing.Opponents.PlayerCount)
}
