package fixtures

import (
	"context"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/iter"

	"github.com/gowrapavan/goal4u-data-service/internal/domain/matches"
	"github.com/gowrapavan/goal4u-data-service/internal/domain/standings"
	"github.com/gowrapavan/goal4u-data-service/internal/logging"
	"github.com/gowrapavan/goal4u-data-service/internal/metrics"
	"github.com/gowrapavan/goal4u-data-service/internal/providers"
	"github.com/gowrapavan/goal4u-data-service/internal/timeutil"
)

const formLength = 5

// Config wires the aggregator's collaborators and tuning.
type Config struct {
	MatchSource     providers.MatchSource
	StandingsSource providers.StandingsSource
	Competitions    []providers.Competition
	Logger          *slog.Logger
	Metrics         *metrics.Recorder
	Location        *time.Location
	FetchTimeout    time.Duration
}

// Service aggregates competition fixture files into day lists and match
// detail bundles. Nothing is cached between calls; every invocation is a
// clean re-derivation from upstream.
type Service struct {
	matchSource     providers.MatchSource
	standingsSource providers.StandingsSource
	competitions    []providers.Competition
	logger          *slog.Logger
	metrics         *metrics.Recorder
	loc             *time.Location
	fetchTimeout    time.Duration
}

// NewService constructs a fixtures Service.
func NewService(cfg Config) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		matchSource:     cfg.MatchSource,
		standingsSource: cfg.StandingsSource,
		competitions:    cfg.Competitions,
		logger:          cfg.Logger,
		metrics:         cfg.Metrics,
		loc:             loc,
		fetchTimeout:    cfg.FetchTimeout,
	}
}

// MatchesForDate fetches every competition's fixture file concurrently,
// keeps the entries falling on the given day in the configured location, and
// returns the concatenation in feed order (Live, Scheduled, finished; ties
// by kickoff). One dead feed never blocks the rest: per-competition failures
// degrade to an empty contribution.
func (s *Service) MatchesForDate(ctx context.Context, dateKey string) []matches.Match {
	perCompetition := iter.Map(s.competitions, func(comp *providers.Competition) []matches.Match {
		ms, err := s.fetchCompetition(ctx, *comp)
		if err != nil {
			s.logSourceFailure(ctx, "fixture feed failed", comp.Code, err)
			return nil
		}

		kept := make([]matches.Match, 0, len(ms))
		for _, m := range ms {
			if timeutil.DateKey(m.Kickoff, s.loc) == dateKey {
				kept = append(kept, m)
			}
		}
		return kept
	})

	all := make([]matches.Match, 0)
	for _, ms := range perCompetition {
		all = append(all, ms...)
	}
	matches.SortByFeedOrder(all)
	return all
}

// MatchDetail resolves one fixture's full detail bundle. Competitions are
// scanned in registry order and the first feed containing the id wins;
// scanning stops there. A standings failure degrades to an empty table; only
// a completely absent id is terminal.
func (s *Service) MatchDetail(ctx context.Context, matchID string) (matches.Detail, error) {
	for _, comp := range s.competitions {
		league, err := s.fetchCompetition(ctx, comp)
		if err != nil {
			s.logSourceFailure(ctx, "fixture feed failed during lookup", comp.Code, err)
			continue
		}

		target, ok := findByID(league, matchID)
		if !ok {
			continue
		}

		return matches.Detail{
			Match:     target,
			Standings: s.fetchStandings(ctx, comp.Code),
			HomeForm:  recentForm(league, target, target.HomeTeam),
			AwayForm:  recentForm(league, target, target.AwayTeam),
		}, nil
	}

	return matches.Detail{}, &NotFoundError{MatchID: matchID}
}

func (s *Service) fetchCompetition(ctx context.Context, comp providers.Competition) ([]matches.Match, error) {
	fetchCtx, cancel := s.withFetchTimeout(ctx)
	defer cancel()

	start := time.Now()
	ms, err := s.matchSource.FetchCompetitionMatches(fetchCtx, comp.Code, comp.Name)
	s.metrics.RecordSourceAttempt("matches/"+comp.Code, time.Since(start), err)
	return ms, err
}

func (s *Service) fetchStandings(ctx context.Context, code string) []standings.Row {
	fetchCtx, cancel := s.withFetchTimeout(ctx)
	defer cancel()

	start := time.Now()
	rows, err := s.standingsSource.FetchStandings(fetchCtx, code)
	s.metrics.RecordSourceAttempt("standings/"+code, time.Since(start), err)
	if err != nil {
		s.logSourceFailure(ctx, "standings feed failed", code, err)
		return []standings.Row{}
	}
	return rows
}

func (s *Service) withFetchTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.fetchTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.fetchTimeout)
}

func (s *Service) logSourceFailure(ctx context.Context, msg, code string, err error) {
	logging.Warn(logging.FromContext(ctx, s.logger), msg,
		slog.String(logging.FieldCompetition, code),
		"error", err,
	)
}

func findByID(league []matches.Match, id string) (matches.Match, bool) {
	for _, m := range league {
		if m.ID == id {
			return m, true
		}
	}
	return matches.Match{}, false
}
