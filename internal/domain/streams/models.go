package streams

// Stream is one live-stream listing from a third-party provider, tagged with
// the provider it came from. Entries from different providers describing the
// same real match are never merged; both are surfaced.
type Stream struct {
	Source     string `json:"source"`
	HomeTeam   string `json:"home_team,omitempty"`
	AwayTeam   string `json:"away_team,omitempty"`
	Label      string `json:"label,omitempty"`
	CleanLabel string `json:"cleanLabel"`
	URL        string `json:"url"`
	// UniqueID is a synthetic list-identity value with no upstream meaning.
	UniqueID string `json:"uniqueId"`
}
