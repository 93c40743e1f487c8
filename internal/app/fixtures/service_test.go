package fixtures

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gowrapavan/goal4u-data-service/internal/domain/matches"
	"github.com/gowrapavan/goal4u-data-service/internal/domain/standings"
	"github.com/gowrapavan/goal4u-data-service/internal/metrics"
	"github.com/gowrapavan/goal4u-data-service/internal/providers"
)

type stubSource struct {
	mu         sync.Mutex
	leagues    map[string][]matches.Match
	failing    map[string]error
	tables     map[string][]standings.Row
	tableErr   map[string]error
	matchCalls []string
}

func (s *stubSource) FetchCompetitionMatches(ctx context.Context, code, name string) ([]matches.Match, error) {
	s.mu.Lock()
	s.matchCalls = append(s.matchCalls, code)
	s.mu.Unlock()
	if err, ok := s.failing[code]; ok {
		return nil, err
	}
	return s.leagues[code], nil
}

func (s *stubSource) FetchStandings(ctx context.Context, code string) ([]standings.Row, error) {
	if err, ok := s.tableErr[code]; ok {
		return nil, err
	}
	return s.tables[code], nil
}

func day(dayOfMonth, hour int) time.Time {
	return time.Date(2025, 3, dayOfMonth, hour, 0, 0, 0, time.UTC)
}

func league(code string, ms ...matches.Match) map[string][]matches.Match {
	return map[string][]matches.Match{code: ms}
}

func testCompetitions(codes ...string) []providers.Competition {
	comps := make([]providers.Competition, 0, len(codes))
	for _, code := range codes {
		comps = append(comps, providers.Competition{Code: code, Name: code + " League"})
	}
	return comps
}

func newTestService(src *stubSource, comps []providers.Competition) *Service {
	return NewService(Config{
		MatchSource:     src,
		StandingsSource: src,
		Competitions:    comps,
		Metrics:         metrics.NewRecorder(),
		Location:        time.UTC,
	})
}

func TestMatchesForDateFiltersAndConcatenates(t *testing.T) {
	src := &stubSource{
		leagues: map[string][]matches.Match{
			"EPL": {
				{ID: "1", Kickoff: day(10, 15), Status: matches.StatusScheduled},
				{ID: "2", Kickoff: day(11, 15), Status: matches.StatusScheduled},
			},
			"ESP": {
				{ID: "3", Kickoff: day(10, 20), Status: matches.StatusScheduled},
			},
		},
	}
	svc := newTestService(src, testCompetitions("EPL", "ESP"))

	got := svc.MatchesForDate(context.Background(), "2025-03-10")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for the day, got %d", len(got))
	}
	for _, m := range got {
		if m.ID == "2" {
			t.Fatal("match from another day leaked through")
		}
	}
}

func TestMatchesForDateSurvivesOneDeadFeed(t *testing.T) {
	src := &stubSource{
		leagues: map[string][]matches.Match{
			"ESP": {{ID: "3", Kickoff: day(10, 20), Status: matches.StatusScheduled}},
		},
		failing: map[string]error{
			"EPL": &providers.SourceUnavailableError{Source: "shortsdata", StatusCode: 500},
		},
	}
	svc := newTestService(src, testCompetitions("EPL", "ESP"))

	got := svc.MatchesForDate(context.Background(), "2025-03-10")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected surviving feed's match, got %+v", got)
	}
}

func TestMatchesForDateAppliesFeedOrder(t *testing.T) {
	src := &stubSource{
		leagues: league("EPL",
			matches.Match{ID: "finished", Kickoff: day(10, 12), Status: matches.StatusFullTime},
			matches.Match{ID: "live", Kickoff: day(10, 18), Status: matches.StatusLive},
			matches.Match{ID: "upcoming", Kickoff: day(10, 21), Status: matches.StatusScheduled},
		),
	}
	svc := newTestService(src, testCompetitions("EPL"))

	got := svc.MatchesForDate(context.Background(), "2025-03-10")
	want := []string{"live", "upcoming", "finished"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestMatchesForDateSkipsUnparsedKickoffs(t *testing.T) {
	src := &stubSource{
		leagues: league("EPL", matches.Match{ID: "nodate", Status: matches.StatusScheduled}),
	}
	svc := newTestService(src, testCompetitions("EPL"))

	if got := svc.MatchesForDate(context.Background(), "2025-03-10"); len(got) != 0 {
		t.Fatalf("expected zero-kickoff match to be dropped, got %+v", got)
	}
}

func TestMatchDetailStopsAtFirstCompetitionContainingID(t *testing.T) {
	src := &stubSource{
		leagues: map[string][]matches.Match{
			"EPL": {{ID: "42", HomeTeam: "Arsenal", AwayTeam: "Leeds", Kickoff: day(10, 20)}},
			"ESP": {{ID: "42", HomeTeam: "Real Madrid", AwayTeam: "Barcelona", Kickoff: day(10, 21)}},
		},
		tables: map[string][]standings.Row{
			"EPL": {{Position: 1, TeamName: "Arsenal"}},
		},
	}
	svc := newTestService(src, testCompetitions("EPL", "ESP"))

	detail, err := svc.MatchDetail(context.Background(), "42")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if detail.Match.HomeTeam != "Arsenal" {
		t.Fatalf("expected EPL match to win, got %+v", detail.Match)
	}
	if len(detail.Standings) != 1 {
		t.Fatalf("expected standings from the found competition, got %+v", detail.Standings)
	}
	for _, code := range src.matchCalls {
		if code == "ESP" {
			t.Fatal("expected scan to stop after first hit")
		}
	}
}

func TestMatchDetailNotFound(t *testing.T) {
	src := &stubSource{leagues: map[string][]matches.Match{}}
	svc := newTestService(src, testCompetitions("EPL", "ESP"))

	_, err := svc.MatchDetail(context.Background(), "missing")
	nf, ok := AsNotFound(err)
	if !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.MatchID != "missing" {
		t.Fatalf("expected id in error, got %s", nf.MatchID)
	}
}

func TestMatchDetailSkipsFailingFeedDuringLookup(t *testing.T) {
	src := &stubSource{
		leagues: map[string][]matches.Match{
			"ESP": {{ID: "42", HomeTeam: "Real Madrid", AwayTeam: "Barcelona", Kickoff: day(10, 21)}},
		},
		failing: map[string]error{
			"EPL": &providers.SourceUnavailableError{Source: "shortsdata", StatusCode: 500},
		},
	}
	svc := newTestService(src, testCompetitions("EPL", "ESP"))

	detail, err := svc.MatchDetail(context.Background(), "42")
	if err != nil {
		t.Fatalf("expected lookup to continue past dead feed, got %v", err)
	}
	if detail.Match.HomeTeam != "Real Madrid" {
		t.Fatalf("unexpected match: %+v", detail.Match)
	}
}

func TestMatchDetailStandingsFailureIsNonFatal(t *testing.T) {
	src := &stubSource{
		leagues: league("EPL", matches.Match{ID: "42", HomeTeam: "Arsenal", AwayTeam: "Leeds", Kickoff: day(10, 20)}),
		tableErr: map[string]error{
			"EPL": &providers.SourceUnavailableError{Source: "shortsdata", StatusCode: 404},
		},
	}
	svc := newTestService(src, testCompetitions("EPL"))

	detail, err := svc.MatchDetail(context.Background(), "42")
	if err != nil {
		t.Fatalf("expected detail despite standings failure, got %v", err)
	}
	if detail.Standings == nil || len(detail.Standings) != 0 {
		t.Fatalf("expected empty standings, got %+v", detail.Standings)
	}
}

func TestMatchDetailFormRules(t *testing.T) {
	target := matches.Match{ID: "t", HomeTeam: "Arsenal", AwayTeam: "Leeds", Kickoff: day(20, 20), Status: matches.StatusScheduled}
	win := func(id string, dayOfMonth int, home, away string) matches.Match {
		return matches.Match{ID: id, HomeTeam: home, AwayTeam: away, Kickoff: day(dayOfMonth, 15), Status: matches.StatusFullTime}
	}

	src := &stubSource{
		leagues: league("EPL",
			target,
			win("f1", 1, "Arsenal", "Chelsea"),
			win("f2", 3, "Fulham", "Arsenal"),
			win("f3", 5, "Arsenal", "Spurs"),
			win("f4", 7, "Everton", "Arsenal"),
			win("f5", 9, "Arsenal", "Brighton"),
			win("f6", 11, "Wolves", "Arsenal"),
			// Finished but after the target kickoff: excluded.
			win("future", 25, "Arsenal", "Newcastle"),
			// Scheduled: excluded from form regardless of date.
			matches.Match{ID: "sched", HomeTeam: "Arsenal", AwayTeam: "Villa", Kickoff: day(12, 15), Status: matches.StatusScheduled},
			win("leeds1", 8, "Leeds", "Chelsea"),
		),
	}
	svc := newTestService(src, testCompetitions("EPL"))

	detail, err := svc.MatchDetail(context.Background(), "t")
	if err != nil {
		t.Fatalf("expected detail, got %v", err)
	}

	if len(detail.HomeForm) != 5 {
		t.Fatalf("expected 5 home form entries, got %d", len(detail.HomeForm))
	}
	// Most recent first: f6 (day 11) leads, f1 (day 1) dropped.
	if detail.HomeForm[0].ID != "f6" {
		t.Fatalf("expected most recent first, got %s", detail.HomeForm[0].ID)
	}
	for _, m := range detail.HomeForm {
		if m.ID == "f1" {
			t.Fatal("expected oldest entry to be cut by the 5-match limit")
		}
		if m.ID == "future" || m.ID == "sched" {
			t.Fatalf("ineligible match %s in form", m.ID)
		}
		if !m.Kickoff.Before(target.Kickoff) {
			t.Fatalf("form entry %s not strictly before target", m.ID)
		}
	}

	if len(detail.AwayForm) != 1 || detail.AwayForm[0].ID != "leeds1" {
		t.Fatalf("unexpected away form: %+v", detail.AwayForm)
	}
}
