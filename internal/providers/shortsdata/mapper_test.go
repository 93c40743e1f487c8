package shortsdata

import (
	"testing"

	"github.com/gowrapavan/goal4u-data-service/internal/domain/matches"
)

func TestNormalizeMatchSynonymFieldsFirstPresentWins(t *testing.T) {
	score := 3
	r := rawMatch{
		GameID:       "7",
		DateTime:     "2025-03-10T20:00:00Z",
		Date:         "2025-03-09T00:00:00Z",
		HomeTeamName: "Arsenal FC",
		HomeTeam:     "Arsenal",
		AwayTeam:     "Fulham",
		HomeScore:    &score,
		Status:       "Live",
	}

	m := normalizeMatch(r, "EPL", "Premier League")

	if m.HomeTeam != "Arsenal FC" {
		t.Fatalf("expected HomeTeamName to win, got %s", m.HomeTeam)
	}
	if m.AwayTeam != "Fulham" {
		t.Fatalf("expected AwayTeam fallback, got %s", m.AwayTeam)
	}
	if m.Kickoff.Day() != 10 {
		t.Fatalf("expected DateTime to win over Date, got %v", m.Kickoff)
	}
	if m.Status != matches.StatusLive {
		t.Fatalf("expected Live, got %s", m.Status)
	}
	if m.HomeScore == nil || *m.HomeScore != 3 || m.AwayScore != nil {
		t.Fatalf("unexpected scores: %+v", m)
	}
}

func TestNormalizeMatchDefaults(t *testing.T) {
	m := normalizeMatch(rawMatch{GameID: "9"}, "ESP", "La Liga")

	if m.Status != matches.StatusScheduled {
		t.Fatalf("expected default Scheduled, got %s", m.Status)
	}
	if !m.Kickoff.IsZero() {
		t.Fatalf("expected zero kickoff for missing timestamp, got %v", m.Kickoff)
	}
	if m.HomeLogo != "" || m.AwayLogo != "" {
		t.Fatalf("expected empty logos, got %+v", m)
	}
}

func TestFlattenStandingsEmptyGroup(t *testing.T) {
	if rows := flattenStandings(rawStandings{}); len(rows) != 0 {
		t.Fatalf("expected empty rows, got %d", len(rows))
	}
	if rows := flattenStandings(rawStandings{Standings: []rawStandingsGroup{{}}}); len(rows) != 0 {
		t.Fatalf("expected empty rows for empty table, got %d", len(rows))
	}
}

func TestFlexibleIDDecoding(t *testing.T) {
	cases := map[string]string{
		`123`:     "123",
		`"123"`:   "123",
		`null`:    "",
		` 45 `:    "45",
		`"EPL-9"`: "EPL-9",
	}
	for input, want := range cases {
		var id flexibleID
		if err := id.UnmarshalJSON([]byte(input)); err != nil {
			t.Fatalf("%s: unexpected error %v", input, err)
		}
		if string(id) != want {
			t.Fatalf("%s: expected %q, got %q", input, want, id)
		}
	}
}
