package providers

import (
	"context"
	"testing"
	"time"

	"github.com/gowrapavan/goal4u-data-service/internal/domain/matches"
)

type scriptedSource struct {
	calls   int
	results []error
	payload []matches.Match
}

func (s *scriptedSource) FetchCompetitionMatches(ctx context.Context, code, name string) ([]matches.Match, error) {
	idx := s.calls
	s.calls++
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	if err := s.results[idx]; err != nil {
		return nil, err
	}
	return s.payload, nil
}

func TestRetryingMatchSourceRecoversAfterTransientFailure(t *testing.T) {
	inner := &scriptedSource{
		results: []error{
			&SourceUnavailableError{Source: "shortsdata", StatusCode: 500},
			nil,
		},
		payload: []matches.Match{{ID: "1"}},
	}

	src := NewRetryingMatchSource(inner, nil, 3, time.Millisecond)
	got, err := src.FetchCompetitionMatches(context.Background(), "EPL", "Premier League")
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if len(got) != 1 || inner.calls != 2 {
		t.Fatalf("expected 2 attempts and payload, got %d attempts, %d matches", inner.calls, len(got))
	}
}

func TestRetryingMatchSourceGivesUpAfterMaxAttempts(t *testing.T) {
	inner := &scriptedSource{
		results: []error{&SourceUnavailableError{Source: "shortsdata", StatusCode: 500}},
	}

	src := NewRetryingMatchSource(inner, nil, 2, time.Millisecond)
	_, err := src.FetchCompetitionMatches(context.Background(), "EPL", "Premier League")
	if err == nil {
		t.Fatal("expected terminal error")
	}
	if inner.calls != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", inner.calls)
	}
}

func TestRetryingMatchSourceDoesNotRetryMalformedPayload(t *testing.T) {
	inner := &scriptedSource{
		results: []error{&MalformedPayloadError{Source: "shortsdata", Reason: "not an array"}},
	}

	src := NewRetryingMatchSource(inner, nil, 3, time.Millisecond)
	_, err := src.FetchCompetitionMatches(context.Background(), "EPL", "Premier League")
	if _, ok := AsMalformedPayload(err); !ok {
		t.Fatalf("expected malformed payload error, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", inner.calls)
	}
}
