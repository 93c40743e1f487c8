package streamfeeds

import (
	"context"
	"fmt"
	"io"
	"net/http"

	crerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/gowrapavan/goal4u-data-service/internal/domain/streams"
	"github.com/gowrapavan/goal4u-data-service/internal/providers"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rawStream is one listing entry as the providers publish it. Field presence
// varies per provider; only url is reliably there.
type rawStream struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Label    string `json:"label"`
	URL      string `json:"url"`
}

// Config controls the stream listing client.
type Config struct {
	HTTPClient *http.Client
}

// Client fetches one provider's stream listing file and tags every entry
// with the provider label.
type Client struct {
	httpClient *http.Client
	newID      func() string
}

// NewClient constructs a streamfeeds client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		httpClient: httpClient,
		newID:      uuid.NewString,
	}
}

// FetchStreams retrieves and flattens one provider's listing. A non-array
// payload is malformed; the caller decides whether that is fatal.
func (c *Client) FetchStreams(ctx context.Context, provider providers.StreamProvider) ([]streams.Stream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, provider.URL, nil)
	if err != nil {
		return nil, crerr.Wrapf(err, "provider %s: build request", provider.Key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.SourceUnavailableError{Source: provider.Key, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &providers.SourceUnavailableError{Source: provider.Key, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.SourceUnavailableError{Source: provider.Key, Err: err}
	}

	var raw []rawStream
	if decodeErr := json.Unmarshal(body, &raw); decodeErr != nil {
		return nil, &providers.MalformedPayloadError{
			Source: provider.Key,
			Reason: crerr.Wrap(decodeErr, "expected listing array").Error(),
		}
	}

	out := make([]streams.Stream, 0, len(raw))
	for i, r := range raw {
		out = append(out, streams.Stream{
			Source:     provider.Label,
			HomeTeam:   r.HomeTeam,
			AwayTeam:   r.AwayTeam,
			Label:      r.Label,
			CleanLabel: cleanLabel(r),
			URL:        r.URL,
			UniqueID:   fmt.Sprintf("%s-%d-%s", provider.Key, i, c.newID()),
		})
	}
	return out, nil
}

// cleanLabel is the display string: the provider label when present, else a
// "{home} vs {away}" fallback.
func cleanLabel(r rawStream) string {
	if r.Label != "" {
		return r.Label
	}
	return fmt.Sprintf("%s vs %s", r.HomeTeam, r.AwayTeam)
}

var _ providers.StreamSource = (*Client)(nil)
