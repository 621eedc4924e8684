package usecase

import (
	"sort"
	"time"

	"github.com/riwahl/match-scout/internal/domain/scout"
)

// NormalizeProfile folds a provider-shaped profile and its recent matches
// into the internal schema. Missing stats resolve to zero; a handful of
// derived fields are filled in when the provider exposes only the raw
// components.
func NormalizeProfile(ext ExternalProfile, matches []ExternalMatch) scout.PlayerProfile {
	stats := scout.Stats{
		Kills:         ext.Stat("kills"),
		Deaths:        ext.Stat("deaths"),
		KD:            ext.Stat("kd", "kdRatio"),
		Damage:        ext.Stat("damage"),
		ADR:           ext.Stat("adr", "damagePerRound"),
		Headshots:     ext.Stat("headshots"),
		HeadshotPct:   ext.Stat("headshotPct", "headshotPercentage"),
		Accuracy:      ext.Stat("shotsAccuracy", "accuracy"),
		Wins:          ext.Stat("wins"),
		Losses:        ext.Stat("losses"),
		WinRate:       ext.Stat("wlPercentage", "winRate"),
		MVPs:          ext.Stat("mvp", "mvps"),
		MatchesPlayed: ext.Stat("matchesPlayed"),
		RoundsPlayed:  ext.Stat("roundsPlayed"),
		RoundsWon:     ext.Stat("roundsWon"),
		Score:         ext.Stat("score"),
		TimePlayed:    ext.Stat("timePlayed"),
	}

	if stats.KD == 0 && stats.Deaths > 0 {
		stats.KD = stats.Kills / stats.Deaths
	}
	if stats.WinRate == 0 && stats.Wins+stats.Losses > 0 {
		stats.WinRate = stats.Wins / (stats.Wins + stats.Losses) * 100
	}
	if stats.HeadshotPct == 0 && stats.Kills > 0 {
		stats.HeadshotPct = stats.Headshots / stats.Kills * 100
	}
	if stats.ADR == 0 && stats.RoundsPlayed > 0 {
		stats.ADR = stats.Damage / stats.RoundsPlayed
	}

	recent := make([]scout.RecentMatch, 0, len(matches))
	for _, m := range matches {
		recent = append(recent, scout.RecentMatch{
			MatchID:     m.MatchID,
			Map:         m.Map,
			Result:      m.Result,
			Score:       m.Score,
			Kills:       m.Kills,
			Deaths:      m.Deaths,
			Assists:     m.Assists,
			KD:          m.KD,
			HeadshotPct: m.HeadshotPct,
			ADR:         m.ADR,
			Rating:      m.Rating,
			PlayedAt:    parseMatchTimestamp(m.PlayedAtRaw),
		})
	}

	mapPool := make([]scout.MapStat, 0, len(ext.Maps))
	for _, m := range ext.Maps {
		mapPool = append(mapPool, scout.MapStat{
			Name:    m.Name,
			Matches: m.Matches,
			WinRate: m.WinRate,
			KD:      m.KD,
			Rating:  m.Rating,
		})
	}
	// Strongest maps first so callers can slice off the top of the pool.
	sort.SliceStable(mapPool, func(i, j int) bool {
		return mapPool[i].WinRate*mapPool[i].KD > mapPool[j].WinRate*mapPool[j].KD
	})

	return scout.PlayerProfile{
		Platform:  ext.Platform,
		PlayerID:  ext.PlayerID,
		Handle:    ext.Handle,
		AvatarURL: ext.AvatarURL,
		Source:    scout.SourceProvider,
		Stats:     stats,
		Rating: scout.Rating{
			Value:       ext.Rating,
			RankName:    ext.RankName,
			RankIconURL: ext.RankIconURL,
			Percentile:  ext.Percentile,
		},
		Analysis:      scout.Analyze(stats),
		RecentMatches: recent,
		RecentForm:    scout.RecentFormOf(recent),
		MapPool:       mapPool,
	}
}

func parseMatchTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Time{}
}
