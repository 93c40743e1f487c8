package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gowrapavan/goal4u-data-service/internal/domain/matches"
	"github.com/gowrapavan/goal4u-data-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultRetryInterval = 200 * time.Millisecond
)

// retryingMatchSource wraps a MatchSource with bounded exponential backoff.
// The baseline behavior is no automatic retries; this decorator is wired only
// when explicitly enabled in config.
type retryingMatchSource struct {
	inner       MatchSource
	logger      *slog.Logger
	maxAttempts uint64
	interval    time.Duration
}

// NewRetryingMatchSource wraps the given source with retries. Non-positive
// maxAttempts/interval fall back to defaults.
func NewRetryingMatchSource(inner MatchSource, logger *slog.Logger, maxAttempts int, interval time.Duration) MatchSource {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	return &retryingMatchSource{
		inner:       inner,
		logger:      logger,
		maxAttempts: uint64(maxAttempts),
		interval:    interval,
	}
}

func (r *retryingMatchSource) FetchCompetitionMatches(ctx context.Context, code, name string) ([]matches.Match, error) {
	var result []matches.Match
	attempt := 0

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.interval),
	), r.maxAttempts-1), ctx)

	err := backoff.Retry(func() error {
		attempt++
		ms, fetchErr := r.inner.FetchCompetitionMatches(ctx, code, name)
		if fetchErr != nil {
			// Malformed payloads will not improve on retry.
			if _, malformed := AsMalformedPayload(fetchErr); malformed {
				return backoff.Permanent(fetchErr)
			}
			logging.Warn(logging.FromContext(ctx, r.logger), "match source fetch retry",
				slog.String(logging.FieldCompetition, code),
				slog.Int("attempt", attempt),
				"error", fetchErr,
			)
			return fetchErr
		}
		result = ms
		return nil
	}, policy)
	if err != nil {
		return nil, err
	}
	return result, nil
}
