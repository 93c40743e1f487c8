package config

import "time"

const (
	envPort          = "PORT"
	envTimezone      = "TIMEZONE"
	envFetchTimeout  = "FETCH_TIMEOUT"
	envFullTimeAfter = "FULL_TIME_AFTER"
	envRetryEnabled  = "SOURCE_RETRY_ENABLED"
	envRetryAttempts = "SOURCE_RETRY_ATTEMPTS"
	envRegistryFile  = "REGISTRY_FILE"
	envMatchesBase   = "MATCHES_BASE_URL"
	envStandingsBase = "STANDINGS_BASE_URL"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "4000"
	defaultTimezone = "UTC"
	// Per-source fetch budget; the upstream host is a static file server, so
	// anything slower than this is effectively down.
	defaultFetchTimeout = 10 * time.Second
	// A football match runs about two hours including half-time and stoppage.
	defaultFullTimeAfter = 2 * time.Hour
	defaultRetryEnabled  = false
	defaultRetryAttempts = 3
	defaultMetricsPort   = "9090"
)
