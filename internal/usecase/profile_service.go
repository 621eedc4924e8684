package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/riwahl/match-scout/internal/domain/scout"
	"github.com/riwahl/match-scout/internal/platform/logging"
)

// ProfileCache is the in-process cache port. Loader errors must not be
// cached, and concurrent loads of the same key must collapse into one.
type ProfileCache interface {
	GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error)
	Stats() (hits, misses int64)
	Len() int
}

// UsageStats is a snapshot of provider and cache activity since start.
type UsageStats struct {
	APICalls     int64   `json:"apiCalls"`
	Errors       int64   `json:"errors"`
	CacheHits    int64   `json:"cacheHits"`
	CacheMisses  int64   `json:"cacheMisses"`
	CacheSize    int     `json:"cacheSize"`
	CacheHitRate float64 `json:"cacheHitRate"`
}

// ProfileService resolves normalized player profiles, caching provider
// responses and degrading to synthetic data when the provider fails.
type ProfileService struct {
	fetcher    ProfileFetcher
	cache      ProfileCache
	logger     *logging.Logger
	matchLimit int

	apiCalls atomic.Int64
	errors   atomic.Int64
}

func NewProfileService(fetcher ProfileFetcher, cache ProfileCache, logger *logging.Logger, matchLimit int) *ProfileService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if matchLimit <= 0 {
		matchLimit = 20
	}
	return &ProfileService{
		fetcher:    fetcher,
		cache:      cache,
		logger:     logger,
		matchLimit: matchLimit,
	}
}

// GetProfile returns the normalized profile for one player. Provider
// failures never propagate: the result degrades to a synthetic profile
// tagged with its provenance, and synthetic results are never cached.
func (s *ProfileService) GetProfile(ctx context.Context, playerID string) (scout.PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.GetProfile")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return scout.PlayerProfile{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if s.fetcher == nil || s.cache == nil {
		return scout.PlayerProfile{}, fmt.Errorf("%w: profile service is not fully configured", ErrDependencyUnavailable)
	}

	key := fmt.Sprintf("profile:%s:%s", s.fetcher.Provider(), playerID)
	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.loadProfile(ctx, playerID)
	})
	if err != nil {
		s.errors.Add(1)
		s.logger.WarnContext(ctx, "profile fetch failed, substituting synthetic data",
			"provider", s.fetcher.Provider(),
			"player_id", playerID,
			"error", err,
		)
		return SyntheticProfile(playerID), nil
	}

	profile, ok := value.(scout.PlayerProfile)
	if !ok {
		return scout.PlayerProfile{}, fmt.Errorf("%w: unexpected cache entry for key %s", ErrDependencyUnavailable, key)
	}
	return profile, nil
}

func (s *ProfileService) loadProfile(ctx context.Context, playerID string) (scout.PlayerProfile, error) {
	s.apiCalls.Add(1)

	ext, err := s.fetcher.FetchProfile(ctx, playerID)
	if err != nil {
		return scout.PlayerProfile{}, err
	}

	// A profile without match history is still usable; the form and map
	// signals just stay empty.
	matches, err := s.fetcher.FetchRecentMatches(ctx, playerID, s.matchLimit)
	if err != nil {
		s.logger.WarnContext(ctx, "recent matches unavailable",
			"provider", s.fetcher.Provider(),
			"player_id", playerID,
			"error", err,
		)
		matches = nil
	}

	return NormalizeProfile(ext, matches), nil
}

// Usage reports lifetime service counters plus the cache snapshot.
func (s *ProfileService) Usage() UsageStats {
	out := UsageStats{
		APICalls: s.apiCalls.Load(),
		Errors:   s.errors.Load(),
	}
	if s.cache != nil {
		out.CacheHits, out.CacheMisses = s.cache.Stats()
		out.CacheSize = s.cache.Len()
	}
	if total := out.CacheHits + out.CacheMisses; total > 0 {
		out.CacheHitRate = float64(out.CacheHits) / float64(total)
	}
	return out
}

// SyntheticProfile builds the stand-in profile used when the provider cannot
// be reached. The stat block is a plausible mid-skill player so downstream
// analysis still produces sensible output; Source marks it as fabricated.
func SyntheticProfile(playerID string) scout.PlayerProfile {
	suffix := playerID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}

	stats := scout.Stats{
		Kills:         15420,
		Deaths:        13200,
		KD:            1.17,
		Damage:        1842000,
		Headshots:     7800,
		HeadshotPct:   50.6,
		Accuracy:      19.2,
		Wins:          520,
		Losses:        480,
		WinRate:       52.0,
		MVPs:          156,
		MatchesPlayed: 1000,
		TimePlayed:    120000,
	}

	return scout.PlayerProfile{
		Platform:  "steam",
		PlayerID:  playerID,
		Handle:    "MockPlayer_" + suffix,
		AvatarURL: "https://via.placeholder.com/128",
		Source:    scout.SourceSynthetic,
		Stats:     stats,
		Rating: scout.Rating{
			Value:      1850,
			RankName:   "DMG",
			Percentile: 72,
		},
		Analysis: scout.Analyze(stats),
		RecentMatches: []scout.RecentMatch{
			{
				Map:    "de_mirage",
				Result: "win",
				Score:  "16-12",
				Kills:  24,
				Deaths: 18,
				KD:     1.33,
				Rating: 1.22,
			},
		},
		RecentForm: scout.FormHot,
	}
}
