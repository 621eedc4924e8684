package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riwahl/match-scout/internal/domain/scout"
	"github.com/riwahl/match-scout/internal/platform/logging"
)

type BriefingInput struct {
	OwnPlayerIDs   []string
	EnemyPlayerIDs []string
	Map            string
	MaxWorkers     int
}

type profileResolver interface {
	GetProfile(ctx context.Context, playerID string) (scout.PlayerProfile, error)
}

// BriefingService orchestrates a full pre-match briefing: both rosters are
// fetched in parallel, aggregated, scanned for threats and opportunities,
// and folded into ranked recommendations with a confidence score.
type BriefingService struct {
	profiles   profileResolver
	logger     *logging.Logger
	maxWorkers int
	now        func() time.Time
}

func NewBriefingService(profiles profileResolver, logger *logging.Logger, maxWorkers int) *BriefingService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	return &BriefingService{
		profiles:   profiles,
		logger:     logger,
		maxWorkers: maxWorkers,
		now:        time.Now,
	}
}

func (s *BriefingService) BuildBriefing(ctx context.Context, input BriefingInput) (scout.PreMatchBriefing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BriefingService.BuildBriefing")
	defer span.End()

	if s.profiles == nil {
		return scout.PreMatchBriefing{}, &BriefingError{
			Message:          "briefing orchestrator is not configured",
			FallbackStrategy: FallbackStrategy,
		}
	}

	ownIDs := normalizePlayerIDs(input.OwnPlayerIDs)
	enemyIDs := normalizePlayerIDs(input.EnemyPlayerIDs)
	if len(ownIDs)+len(enemyIDs) == 0 {
		return scout.PreMatchBriefing{}, fmt.Errorf("%w: at least one player id is required", ErrInvalidInput)
	}

	ownProfiles, ownErrs := s.resolveProfiles(ctx, ownIDs, input.MaxWorkers)
	enemyProfiles, enemyErrs := s.resolveProfiles(ctx, enemyIDs, input.MaxWorkers)

	if len(ownProfiles)+len(enemyProfiles) == 0 {
		s.logger.ErrorContext(ctx, "briefing orchestration failed for every player",
			"own_errors", len(ownErrs),
			"enemy_errors", len(enemyErrs),
		)
		return scout.PreMatchBriefing{}, &BriefingError{
			Message:          "unable to resolve any player profile",
			FallbackStrategy: FallbackStrategy,
		}
	}

	own := scout.AnalyzeTeam(ownProfiles)
	enemy := scout.AnalyzeTeam(enemyProfiles)

	briefing := scout.PreMatchBriefing{
		GeneratedAt:     s.now().UTC(),
		Map:             strings.TrimSpace(input.Map),
		Team:            own,
		Opponents:       enemy,
		Threats:         scout.DetectThreats(enemyProfiles),
		Opportunities:   scout.DetectOpportunities(enemyProfiles),
		Recommendations: scout.Recommend(own, enemy, strings.TrimSpace(input.Map)),
		Confidence:      scout.Confidence(enemyProfiles),
	}

	s.logger.InfoContext(ctx, "briefing generated",
		"map", briefing.Map,
		"own_players", len(ownProfiles),
		"enemy_players", len(enemyProfiles),
		"threats", len(briefing.Threats),
		"confidence", briefing.Confidence,
	)
	return briefing, nil
}

// resolveProfiles fetches every roster member concurrently through a bounded
// worker pool. Results keep the caller's roster order; a failed slot is
// dropped rather than aborting the whole briefing.
func (s *BriefingService) resolveProfiles(ctx context.Context, playerIDs []string, maxWorkers int) ([]scout.PlayerProfile, []error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	workerCount := normalizeBriefingWorkerCount(maxWorkers, s.maxWorkers, len(playerIDs))
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, []error{fmt.Errorf("create worker pool: %w", err)}
	}
	defer pool.Release()

	type slot struct {
		profile scout.PlayerProfile
		err     error
	}
	slots := make([]slot, len(playerIDs))

	var workers sync.WaitGroup
	for i, playerID := range playerIDs {
		i, playerID := i, playerID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			profile, err := s.profiles.GetProfile(ctx, playerID)
			slots[i] = slot{profile: profile, err: err}
		}); err != nil {
			workers.Done()
			slots[i] = slot{err: fmt.Errorf("submit fetch for player %s: %w", playerID, err)}
		}
	}
	workers.Wait()

	profiles := make([]scout.PlayerProfile, 0, len(playerIDs))
	var errs []error
	for i, st := range slots {
		if st.err != nil {
			s.logger.WarnContext(ctx, "player profile dropped from briefing",
				"player_id", playerIDs[i],
				"error", st.err,
			)
			errs = append(errs, st.err)
			continue
		}
		profiles = append(profiles, st.profile)
	}
	return profiles, errs
}

func normalizePlayerIDs(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, id := range raw {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func normalizeBriefingWorkerCount(requested, configured, taskCount int) int {
	value := requested
	if value <= 0 {
		value = configured
	}
	if value <= 0 {
		value = 1
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
