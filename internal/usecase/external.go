package usecase

import "context"

// ExternalProfile is the provider-shaped view of one player before
// normalization. Stat names vary between provider payload versions, so the
// stat block stays keyed by the provider's own names until the normalizer
// resolves aliases.
type ExternalProfile struct {
	Platform  string
	PlayerID  string
	Handle    string
	AvatarURL string

	Stats map[string]float64

	RankName    string
	RankIconURL string
	Rating      float64
	Percentile  float64

	Maps []ExternalMapStat
}

// Stat returns the first stat present under any of the given aliases.
func (p ExternalProfile) Stat(aliases ...string) float64 {
	for _, alias := range aliases {
		if v, ok := p.Stats[alias]; ok {
			return v
		}
	}
	return 0
}

type ExternalMatch struct {
	MatchID     string
	Map         string
	Result      string
	Score       string
	Kills       float64
	Deaths      float64
	Assists     float64
	KD          float64
	HeadshotPct float64
	ADR         float64
	Rating      float64
	PlayedAtRaw string
}

type ExternalMapStat struct {
	Name    string
	Matches float64
	WinRate float64
	KD      float64
	Rating  float64
}

// ProfileFetcher is the outbound port to the stats provider. Implementations
// own pacing, timeouts, and circuit breaking; a failed call returns a typed
// *FetchError or *ParseError.
type ProfileFetcher interface {
	Provider() string
	FetchProfile(ctx context.Context, playerID string) (ExternalProfile, error)
	FetchRecentMatches(ctx context.Context, playerID string, limit int) ([]ExternalMatch, error)
}
