package trackergg

import "github.com/riwahl/match-scout/internal/usecase"

// statValue is the provider's per-stat wrapper. Only the numeric value and a
// couple of display fields matter downstream.
type statValue struct {
	Value        float64 `json:"value"`
	DisplayValue string  `json:"displayValue"`
	Percentile   float64 `json:"percentile"`
	Metadata     struct {
		IconURL string `json:"iconUrl"`
	} `json:"metadata"`
}

type profileEnvelope struct {
	Data struct {
		PlatformInfo struct {
			PlatformSlug       string `json:"platformSlug"`
			PlatformUserID     string `json:"platformUserId"`
			PlatformUserHandle string `json:"platformUserHandle"`
			AvatarURL          string `json:"avatarUrl"`
		} `json:"platformInfo"`
		Segments []profileSegment `json:"segments"`
	} `json:"data"`
}

type profileSegment struct {
	Type     string `json:"type"`
	Metadata struct {
		Name string `json:"name"`
	} `json:"metadata"`
	Stats map[string]statValue `json:"stats"`
}

type matchesEnvelope struct {
	Data []struct {
		Attributes struct {
			ID string `json:"id"`
		} `json:"attributes"`
		Metadata struct {
			MapName   string `json:"mapName"`
			Result    string `json:"result"`
			Score     string `json:"score"`
			Timestamp string `json:"timestamp"`
		} `json:"metadata"`
		Stats map[string]statValue `json:"stats"`
	} `json:"data"`
}

func statOf(stats map[string]statValue, name string) float64 {
	return stats[name].Value
}

// flattenProfile lifts the segment/statValue envelope into the neutral
// provider-agnostic shape. The overview segment carries lifetime stats; map
// segments become the player's map pool.
func flattenProfile(envelope profileEnvelope, platform, playerID string) usecase.ExternalProfile {
	out := usecase.ExternalProfile{
		Platform:  envelope.Data.PlatformInfo.PlatformSlug,
		PlayerID:  envelope.Data.PlatformInfo.PlatformUserID,
		Handle:    envelope.Data.PlatformInfo.PlatformUserHandle,
		AvatarURL: envelope.Data.PlatformInfo.AvatarURL,
		Stats:     make(map[string]float64),
	}
	if out.Platform == "" {
		out.Platform = platform
	}
	if out.PlayerID == "" {
		out.PlayerID = playerID
	}
	if out.Handle == "" {
		out.Handle = "Unknown"
	}

	for _, segment := range envelope.Data.Segments {
		switch segment.Type {
		case "overview":
			for name, stat := range segment.Stats {
				switch name {
				case "rank":
					out.RankName = stat.DisplayValue
					out.RankIconURL = stat.Metadata.IconURL
				case "rating":
					out.Rating = stat.Value
				case "rankScore":
					out.Percentile = stat.Percentile
				default:
					out.Stats[name] = stat.Value
				}
			}
		case "map":
			out.Maps = append(out.Maps, usecase.ExternalMapStat{
				Name:    segment.Metadata.Name,
				Matches: statOf(segment.Stats, "matchesPlayed"),
				WinRate: statOf(segment.Stats, "wlPercentage"),
				KD:      statOf(segment.Stats, "kd"),
				Rating:  statOf(segment.Stats, "rating"),
			})
		}
	}

	return out
}
