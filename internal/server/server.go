package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gowrapavan/goal4u-data-service/internal/app/fixtures"
	appstreams "github.com/gowrapavan/goal4u-data-service/internal/app/streams"
	"github.com/gowrapavan/goal4u-data-service/internal/config"
	"github.com/gowrapavan/goal4u-data-service/internal/http/handlers"
	"github.com/gowrapavan/goal4u-data-service/internal/http/middleware"
	"github.com/gowrapavan/goal4u-data-service/internal/logging"
	"github.com/gowrapavan/goal4u-data-service/internal/metrics"
	"github.com/gowrapavan/goal4u-data-service/internal/providers"
	"github.com/gowrapavan/goal4u-data-service/internal/providers/shortsdata"
	"github.com/gowrapavan/goal4u-data-service/internal/providers/streamfeeds"
)

var metricsSetup = metrics.Setup

// httpServer narrows *http.Server to what Run needs, so tests can substitute
// a stub and exercise the lifecycle without binding ports.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type stdHTTPServer struct {
	srv *http.Server
}

func (s stdHTTPServer) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s stdHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s stdHTTPServer) Addr() string                       { return s.srv.Addr }
func (s stdHTTPServer) Handler() http.Handler              { return s.srv.Handler }

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	fixturesSvc   *fixtures.Service
	streamsSvc    *appstreams.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default upstream wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithSources(cfg, logger, nil, nil, nil)
}

// newServerWithSources is the injectable constructor backing New; tests pass
// stub sources, production passes nils and gets the shortsdata and
// streamfeeds clients.
func newServerWithSources(cfg config.Config, logger *slog.Logger, matchSource providers.MatchSource, standingsSource providers.StandingsSource, streamSource providers.StreamSource) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if matchSource == nil || standingsSource == nil {
		client := shortsdata.NewClient(shortsdata.Config{
			MatchesBaseURL:   cfg.MatchesBaseURL,
			StandingsBaseURL: cfg.StandingsBaseURL,
		})
		if matchSource == nil {
			matchSource = client
		}
		if standingsSource == nil {
			standingsSource = client
		}
	}
	if cfg.RetryEnabled {
		matchSource = providers.NewRetryingMatchSource(matchSource, logger, cfg.RetryAttempts, 0)
	}
	if streamSource == nil {
		streamSource = streamfeeds.NewClient(streamfeeds.Config{})
	}

	loc := cfg.Location()
	fixturesSvc := fixtures.NewService(fixtures.Config{
		MatchSource:     matchSource,
		StandingsSource: standingsSource,
		Competitions:    cfg.Registry.Competitions,
		Logger:          logger,
		Metrics:         recorder,
		Location:        loc,
		FetchTimeout:    cfg.FetchTimeout,
	})
	streamsSvc := appstreams.NewService(appstreams.Config{
		Source:       streamSource,
		Providers:    cfg.Registry.StreamProviders,
		Logger:       logger,
		Metrics:      recorder,
		FetchTimeout: cfg.FetchTimeout,
	})

	httpSrv := buildHTTPServer(cfg, fixturesSvc, streamsSvc, logger, recorder, loc)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		fixturesSvc:   fixturesSvc,
		streamsSvc:    streamsSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, fixturesSvc *fixtures.Service, streamsSvc *appstreams.Service, logger *slog.Logger, recorder *metrics.Recorder, loc *time.Location) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	handler := handlers.NewHandler(handlers.Config{
		Fixtures:      fixturesSvc,
		Streams:       streamsSvc,
		Logger:        logger,
		Location:      loc,
		FullTimeAfter: cfg.FullTimeAfter,
	})
	router := handlers.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return stdHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut
// down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = stdHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
