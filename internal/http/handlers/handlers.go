package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gowrapavan/goal4u-data-service/internal/app/fixtures"
	appstreams "github.com/gowrapavan/goal4u-data-service/internal/app/streams"
	"github.com/gowrapavan/goal4u-data-service/internal/domain/matches"
	domainstreams "github.com/gowrapavan/goal4u-data-service/internal/domain/streams"
	"github.com/gowrapavan/goal4u-data-service/internal/logging"
	"github.com/gowrapavan/goal4u-data-service/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the aggregation services.
type Handler struct {
	fixtures      *fixtures.Service
	streams       *appstreams.Service
	logger        *slog.Logger
	loc           *time.Location
	fullTimeAfter time.Duration
	now           nowFunc
}

// Config collects Handler dependencies.
type Config struct {
	Fixtures      *fixtures.Service
	Streams       *appstreams.Service
	Logger        *slog.Logger
	Location      *time.Location
	FullTimeAfter time.Duration
}

// NewHandler constructs a Handler with defaults.
func NewHandler(cfg Config) *Handler {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		fixtures:      cfg.Fixtures,
		streams:       cfg.Streams,
		logger:        cfg.Logger,
		loc:           loc,
		fullTimeAfter: cfg.FullTimeAfter,
		now:           time.Now,
	}
}

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/matches", h.MatchesByDate)
	mux.HandleFunc("/matches/", h.MatchByID)
	mux.HandleFunc("/streams", h.Streams)
	return mux
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service holds no warm state, so
// readiness equals liveness.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// MatchesByDate returns the day's fixture list, status-corrected against the
// wall clock and in display order.
func (h *Handler) MatchesByDate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	now := h.now()
	dateKey := r.URL.Query().Get("date")
	if dateKey == "" {
		dateKey = timeutil.DateKey(now, h.loc)
	} else if _, err := timeutil.ParseDateKey(dateKey); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
		return
	}

	ms := h.fixtures.MatchesForDate(r.Context(), dateKey)
	matches.OverrideStatuses(ms, now, h.fullTimeAfter)
	matches.SortForDisplay(ms)

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served matches",
		slog.String(logging.FieldDate, dateKey),
		slog.Int(logging.FieldCount, len(ms)),
	)
	writeJSON(w, http.StatusOK, matches.DayResponse{Date: dateKey, Matches: ms}, h.logger)
}

// MatchByID returns one fixture's detail bundle.
func (h *Handler) MatchByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/matches"), "/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusBadRequest, "invalid match id", h.logger)
		return
	}

	detail, err := h.fixtures.MatchDetail(r.Context(), id)
	if err != nil {
		if _, ok := fixtures.AsNotFound(err); ok {
			writeError(w, r, http.StatusNotFound, "match not found", h.logger)
			return
		}
		writeError(w, r, http.StatusBadGateway, "upstream failure", h.logger)
		return
	}

	logging.Info(loggerFromContext(r, h.logger), "served match detail",
		slog.String(logging.FieldMatchID, id),
		slog.String(logging.FieldCompetition, detail.Match.CompetitionCode),
	)
	writeJSON(w, http.StatusOK, detail, h.logger)
}

// Streams returns every provider's stream listing; when home and away query
// parameters are present the list is filtered to that fixture.
func (h *Handler) Streams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	home := r.URL.Query().Get("home")
	away := r.URL.Query().Get("away")
	if (home == "") != (away == "") {
		writeError(w, r, http.StatusBadRequest, "home and away must be supplied together", h.logger)
		return
	}

	all := h.streams.AllStreams(r.Context())
	result := all
	if home != "" {
		result = h.streams.StreamsForFixture(all, home, away)
	}

	logging.Info(loggerFromContext(r, h.logger), "served streams",
		slog.Int(logging.FieldCount, len(result)),
	)
	writeJSON(w, http.StatusOK, streamsResponse{Streams: result}, h.logger)
}

type streamsResponse struct {
	Streams []domainstreams.Stream `json:"streams"`
}
