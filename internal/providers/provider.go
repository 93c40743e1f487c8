package providers

import (
	"context"

	"github.com/gowrapavan/goal4u-data-service/internal/domain/matches"
	"github.com/gowrapavan/goal4u-data-service/internal/domain/standings"
	"github.com/gowrapavan/goal4u-data-service/internal/domain/streams"
)

// MatchSource fetches and normalizes one competition's full fixture list.
// The code parameter is a competition registry code (EPL, ESP, ...).
type MatchSource interface {
	FetchCompetitionMatches(ctx context.Context, code, name string) ([]matches.Match, error)
}

// StandingsSource fetches and flattens one competition's standings table.
type StandingsSource interface {
	FetchStandings(ctx context.Context, code string) ([]standings.Row, error)
}

// StreamSource fetches one provider's stream listing, tagged with its label.
type StreamSource interface {
	FetchStreams(ctx context.Context, provider StreamProvider) ([]streams.Stream, error)
}

// StreamProvider identifies one configured stream listing source.
type StreamProvider struct {
	Label string `koanf:"label" json:"label"`
	Key   string `koanf:"key" json:"key"`
	URL   string `koanf:"url" json:"url"`
}

// Competition identifies one configured competition feed.
type Competition struct {
	Code string `koanf:"code" json:"code"`
	Name string `koanf:"name" json:"name"`
}
