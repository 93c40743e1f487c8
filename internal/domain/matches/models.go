package matches

import (
	"time"

	"github.com/gowrapavan/goal4u-data-service/internal/domain/standings"
)

// Status mirrors the upstream match lifecycle states. Feeds only ever emit
// these five values; anything unrecognized is carried through verbatim.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusLive      Status = "Live"
	StatusHalfTime  Status = "HT"
	StatusFinal     Status = "Final"
	StatusFullTime  Status = "FT"
)

// IsFinished reports whether a status represents a concluded match.
func (s Status) IsFinished() bool {
	return s == StatusFinal || s == StatusFullTime
}

// Match is the canonical fixture shape exposed by the service. ID is unique
// within one competition feed; ID plus CompetitionCode identifies a fixture
// across a fetch cycle.
type Match struct {
	ID              string    `json:"id"`
	CompetitionCode string    `json:"competitionCode"`
	CompetitionName string    `json:"competitionName"`
	HomeTeam        string    `json:"homeTeam"`
	AwayTeam        string    `json:"awayTeam"`
	HomeScore       *int      `json:"homeScore"`
	AwayScore       *int      `json:"awayScore"`
	Kickoff         time.Time `json:"dateTime"`
	Status          Status    `json:"status"`
	HomeLogo        string    `json:"homeLogo,omitempty"`
	AwayLogo        string    `json:"awayLogo,omitempty"`
}

// Involves reports whether the given team plays in this match, on either side.
func (m Match) Involves(team string) bool {
	return m.HomeTeam == team || m.AwayTeam == team
}

// Detail bundles everything the match page needs. Form slices hold at most
// five finished matches each, most recent first, all kicked off strictly
// before the target match.
type Detail struct {
	Match     Match           `json:"match"`
	Standings []standings.Row `json:"standings"`
	HomeForm  []Match         `json:"homeForm"`
	AwayForm  []Match         `json:"awayForm"`
}

// DayResponse is the payload returned by /matches?date=YYYY-MM-DD.
type DayResponse struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}
