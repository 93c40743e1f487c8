package streams

import (
	"context"
	"testing"

	domainstreams "github.com/gowrapavan/goal4u-data-service/internal/domain/streams"
	"github.com/gowrapavan/goal4u-data-service/internal/metrics"
	"github.com/gowrapavan/goal4u-data-service/internal/providers"
)

type stubStreamSource struct {
	listings map[string][]domainstreams.Stream
	failing  map[string]error
}

func (s *stubStreamSource) FetchStreams(ctx context.Context, p providers.StreamProvider) ([]domainstreams.Stream, error) {
	if err, ok := s.failing[p.Key]; ok {
		return nil, err
	}
	return s.listings[p.Key], nil
}

func testProviders(keys ...string) []providers.StreamProvider {
	out := make([]providers.StreamProvider, 0, len(keys))
	for _, key := range keys {
		out = append(out, providers.StreamProvider{Key: key, Label: key})
	}
	return out
}

func TestAllStreamsFlattensEveryProvider(t *testing.T) {
	src := &stubStreamSource{
		listings: map[string][]domainstreams.Stream{
			"ovogoals":     {{UniqueID: "a"}, {UniqueID: "b"}},
			"sportzonline": {{UniqueID: "c"}},
			"hesgoal":      {},
		},
	}
	svc := NewService(Config{
		Source:    src,
		Providers: testProviders("ovogoals", "sportzonline", "hesgoal"),
		Metrics:   metrics.NewRecorder(),
	})

	got := svc.AllStreams(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected 3 streams, got %d", len(got))
	}
}

func TestAllStreamsIsolatesProviderFailure(t *testing.T) {
	src := &stubStreamSource{
		listings: map[string][]domainstreams.Stream{
			"sportzonline": {{UniqueID: "c"}},
		},
		failing: map[string]error{
			"ovogoals": &providers.SourceUnavailableError{Source: "ovogoals", StatusCode: 502},
			"hesgoal":  &providers.MalformedPayloadError{Source: "hesgoal", Reason: "not an array"},
		},
	}
	svc := NewService(Config{
		Source:    src,
		Providers: testProviders("ovogoals", "sportzonline", "hesgoal"),
		Metrics:   metrics.NewRecorder(),
	})

	got := svc.AllStreams(context.Background())
	if len(got) != 1 || got[0].UniqueID != "c" {
		t.Fatalf("expected the healthy provider's stream only, got %+v", got)
	}
}

func TestStreamsForFixtureDelegatesToMatcher(t *testing.T) {
	svc := NewService(Config{Metrics: metrics.NewRecorder()})
	all := []domainstreams.Stream{
		{UniqueID: "hit", HomeTeam: "Arsenal", AwayTeam: "Leeds"},
		{UniqueID: "miss", HomeTeam: "Chelsea", AwayTeam: "Fulham"},
	}

	got := svc.StreamsForFixture(all, "Arsenal FC", "Leeds United")
	if len(got) != 1 || got[0].UniqueID != "hit" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}
