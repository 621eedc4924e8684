package scout

import "time"

// Role is the in-game function inferred from a player's lifetime statistics.
type Role string

const (
	RoleAWPer        Role = "awper"
	RoleEntryFragger Role = "entry_fragger"
	RolePlaymaker    Role = "playmaker"
	RoleSupport      Role = "support"
	RoleRifler       Role = "rifler"
)

type PlayStyle string

const (
	StyleAggressive PlayStyle = "aggressive"
	StyleBalanced   PlayStyle = "balanced"
	StyleSupportive PlayStyle = "supportive"
	StylePassive    PlayStyle = "passive"
)

type TeamStyle string

const (
	TeamStyleAggressive TeamStyle = "aggressive"
	TeamStyleTactical   TeamStyle = "tactical"
	TeamStyleDefensive  TeamStyle = "defensive"
	TeamStyleBalanced   TeamStyle = "balanced"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// severityRank orders severities and priorities for descending sorts.
func severityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Source records where a profile came from. Synthetic profiles are stand-ins
// generated when the provider could not be reached; downstream analysis
// treats them the same as live data, but callers can tell them apart.
type Source string

const (
	SourceProvider  Source = "provider"
	SourceSynthetic Source = "synthetic"
)

type Form string

const (
	FormHot     Form = "hot"
	FormCold    Form = "cold"
	FormAverage Form = "average"
	FormUnknown Form = "unknown"
)

// Stats is the flattened lifetime stat block for one player. Every field
// defaults to zero when the provider omits it.
type Stats struct {
	Kills         float64 `json:"kills"`
	Deaths        float64 `json:"deaths"`
	KD            float64 `json:"kd"`
	Damage        float64 `json:"damage"`
	ADR           float64 `json:"adr"`
	Headshots     float64 `json:"headshots"`
	HeadshotPct   float64 `json:"headshotPct"`
	Accuracy      float64 `json:"accuracy"`
	Wins          float64 `json:"wins"`
	Losses        float64 `json:"losses"`
	WinRate       float64 `json:"winRate"`
	MVPs          float64 `json:"mvpCount"`
	MatchesPlayed float64 `json:"matchesPlayed"`
	RoundsPlayed  float64 `json:"roundsPlayed"`
	RoundsWon     float64 `json:"roundsWon"`
	Score         float64 `json:"score"`
	TimePlayed    float64 `json:"timePlayed"`
}

type Rating struct {
	Value       float64 `json:"value"`
	RankName    string  `json:"rankName"`
	RankIconURL string  `json:"rankIconUrl"`
	Percentile  float64 `json:"percentile"`
}

// Analysis holds the categorical labels derived from Stats. Role and
// PlayStyle are pure functions of the stat block.
type Analysis struct {
	Role       Role      `json:"role"`
	PlayStyle  PlayStyle `json:"playStyle"`
	Strengths  []string  `json:"strengths"`
	Weaknesses []string  `json:"weaknesses"`
}

type RecentMatch struct {
	MatchID     string    `json:"matchId"`
	Map         string    `json:"map"`
	Result      string    `json:"result"`
	Score       string    `json:"score"`
	Kills       float64   `json:"kills"`
	Deaths      float64   `json:"deaths"`
	Assists     float64   `json:"assists"`
	KD          float64   `json:"kd"`
	HeadshotPct float64   `json:"headshotPct"`
	ADR         float64   `json:"adr"`
	Rating      float64   `json:"rating"`
	PlayedAt    time.Time `json:"playedAt"`
}

type MapStat struct {
	Name    string  `json:"name"`
	Matches float64 `json:"matches"`
	WinRate float64 `json:"winRate"`
	KD      float64 `json:"kd"`
	Rating  float64 `json:"rating"`
}

// PlayerProfile is the normalized per-player record the rest of the engine
// works with.
type PlayerProfile struct {
	Platform      string        `json:"platform"`
	PlayerID      string        `json:"platformUserId"`
	Handle        string        `json:"handle"`
	AvatarURL     string        `json:"avatarUrl"`
	Source        Source        `json:"source"`
	Stats         Stats         `json:"stats"`
	Rating        Rating        `json:"rating"`
	Analysis      Analysis      `json:"analysis"`
	RecentMatches []RecentMatch `json:"recentMatches"`
	RecentForm    Form          `json:"recentForm"`
	MapPool       []MapStat     `json:"mapPool"`
}

type TeamPlayerRef struct {
	Handle string  `json:"handle"`
	KD     float64 `json:"kd"`
	Role   Role    `json:"role"`
}

type WeakPlayerRef struct {
	Handle        string   `json:"handle"`
	KD            float64  `json:"kd"`
	Vulnerability Severity `json:"vulnerability"`
}

type TeamComposition struct {
	Roles         map[Role]int `json:"roles"`
	HasAWPer      bool         `json:"hasAwper"`
	EntryFraggers int          `json:"entryFraggers"`
	Supports      int          `json:"supports"`
}

// TeamAnalysis aggregates one roster. HasData is false when the analysis was
// produced from an empty profile list; all numeric fields are zero in that
// case, never NaN.
type TeamAnalysis struct {
	HasData           bool            `json:"hasData"`
	PlayerCount       int             `json:"playerCount"`
	AverageKD         float64         `json:"averageKD"`
	AverageWinRate    float64         `json:"averageWinRate"`
	AverageRating     float64         `json:"averageRating"`
	TopPlayer         TeamPlayerRef   `json:"topPlayer"`
	WeakestPlayer     WeakPlayerRef   `json:"weakestPlayer"`
	Composition       TeamComposition `json:"teamComposition"`
	Style             TeamStyle       `json:"teamStyle"`
	PredictedStrategy string          `json:"predictedStrategy"`
}

type Threat struct {
	Type            string   `json:"type"`
	Player          string   `json:"player"`
	Role            Role     `json:"role,omitempty"`
	KD              float64  `json:"kd,omitempty"`
	HeadshotPct     float64  `json:"headshotPct,omitempty"`
	Severity        Severity `json:"severity"`
	CounterStrategy string   `json:"counterStrategy"`
}

type Opportunity struct {
	Type         string   `json:"type"`
	Targets      []string `json:"targets,omitempty"`
	WinRate      float64  `json:"winRate,omitempty"`
	Exploitation string   `json:"exploitation"`
}

type Recommendation struct {
	Type        string   `json:"type"`
	Priority    Severity `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

// PreMatchBriefing is the aggregate scouting output for one upcoming match.
type PreMatchBriefing struct {
	GeneratedAt     time.Time        `json:"generatedAt"`
	Map             string           `json:"map"`
	Team            TeamAnalysis     `json:"teamAnalysis"`
	Opponents       TeamAnalysis     `json:"enemyAnalysis"`
	Threats         []Threat         `json:"threats"`
	Opportunities   []Opportunity    `json:"opportunities"`
	Recommendations []Recommendation `json:"strategicRecommendations"`
	Confidence      int              `json:"confidence"`
}
