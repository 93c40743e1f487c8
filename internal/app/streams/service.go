package streams

import (
	"context"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/iter"

	domainstreams "github.com/gowrapavan/goal4u-data-service/internal/domain/streams"
	"github.com/gowrapavan/goal4u-data-service/internal/logging"
	"github.com/gowrapavan/goal4u-data-service/internal/metrics"
	"github.com/gowrapavan/goal4u-data-service/internal/providers"
)

// Config wires the stream aggregator's collaborators.
type Config struct {
	Source       providers.StreamSource
	Providers    []providers.StreamProvider
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
	FetchTimeout time.Duration
}

// Service aggregates stream listings across every configured provider.
type Service struct {
	source       providers.StreamSource
	providers    []providers.StreamProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	fetchTimeout time.Duration
}

// NewService constructs a streams Service.
func NewService(cfg Config) *Service {
	return &Service{
		source:       cfg.Source,
		providers:    cfg.Providers,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
		fetchTimeout: cfg.FetchTimeout,
	}
}

// AllStreams queries every provider concurrently and flattens the results
// into one list. A provider's failure or malformed payload costs only that
// provider's entries; siblings are unaffected.
func (s *Service) AllStreams(ctx context.Context) []domainstreams.Stream {
	perProvider := iter.Map(s.providers, func(p *providers.StreamProvider) []domainstreams.Stream {
		fetchCtx := ctx
		cancel := context.CancelFunc(func() {})
		if s.fetchTimeout > 0 {
			fetchCtx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		}
		defer cancel()

		start := time.Now()
		ss, err := s.source.FetchStreams(fetchCtx, *p)
		s.metrics.RecordSourceAttempt("streams/"+p.Key, time.Since(start), err)
		if err != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "stream provider failed",
				slog.String(logging.FieldProvider, p.Key),
				"error", err,
			)
			return nil
		}
		return ss
	})

	all := make([]domainstreams.Stream, 0)
	for _, ss := range perProvider {
		all = append(all, ss...)
	}
	return all
}

// StreamsForFixture filters a stream list down to entries plausibly covering
// the fixture with the given team names.
func (s *Service) StreamsForFixture(all []domainstreams.Stream, homeTeam, awayTeam string) []domainstreams.Stream {
	return domainstreams.FilterForFixture(all, homeTeam, awayTeam)
}
