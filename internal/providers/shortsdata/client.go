package shortsdata

import (
	"context"
	"io"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/gowrapavan/goal4u-data-service/internal/domain/matches"
	"github.com/gowrapavan/goal4u-data-service/internal/domain/standings"
	"github.com/gowrapavan/goal4u-data-service/internal/providers"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how the client reaches the static JSON host.
type Config struct {
	MatchesBaseURL   string
	StandingsBaseURL string
	HTTPClient       *http.Client
}

// Client fetches competition fixture and standings files from the static
// JSON host and maps them to domain models. One file per competition code;
// read-only, no auth.
type Client struct {
	matchesBaseURL   string
	standingsBaseURL string
	httpClient       *http.Client
}

// NewClient constructs a shortsdata client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		matchesBaseURL:   normalizeBaseURL(cfg.MatchesBaseURL, defaultMatchesBaseURL),
		standingsBaseURL: normalizeBaseURL(cfg.StandingsBaseURL, defaultStandingsBaseURL),
		httpClient:       httpClient,
	}
}

// FetchCompetitionMatches retrieves one competition's full fixture file and
// normalizes every entry. The competition code and display name are stamped
// onto each match at fetch time.
func (c *Client) FetchCompetitionMatches(ctx context.Context, code, name string) ([]matches.Match, error) {
	body, err := c.get(ctx, c.matchesBaseURL+"/"+code+".json")
	if err != nil {
		return nil, err
	}

	var raw []rawMatch
	if decodeErr := json.Unmarshal(body, &raw); decodeErr != nil {
		return nil, &providers.MalformedPayloadError{
			Source: sourceName,
			Reason: crerr.Wrapf(decodeErr, "competition %s: expected fixture array", code).Error(),
		}
	}

	out := make([]matches.Match, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalizeMatch(r, code, name))
	}
	return out, nil
}

// FetchStandings retrieves one competition's standings file and flattens the
// nested table. Shape violations yield an empty table, not an error; only
// transport failures and non-JSON bodies are reported.
func (c *Client) FetchStandings(ctx context.Context, code string) ([]standings.Row, error) {
	body, err := c.get(ctx, c.standingsBaseURL+"/"+code+".json")
	if err != nil {
		return nil, err
	}

	var raw rawStandings
	if decodeErr := json.Unmarshal(body, &raw); decodeErr != nil {
		return nil, &providers.MalformedPayloadError{
			Source: sourceName,
			Reason: crerr.Wrapf(decodeErr, "competition %s: standings not an object", code).Error(),
		}
	}
	return flattenStandings(raw), nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.SourceUnavailableError{Source: sourceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &providers.SourceUnavailableError{Source: sourceName, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.SourceUnavailableError{Source: sourceName, Err: err}
	}
	return body, nil
}

func normalizeBaseURL(raw, fallback string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return fallback
	}
	return raw
}

var (
	_ providers.MatchSource     = (*Client)(nil)
	_ providers.StandingsSource = (*Client)(nil)
)
