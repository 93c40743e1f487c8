package config

import (
	"time"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port string
	// Timezone is the calendar used to group fixtures into days.
	Timezone         string
	MatchesBaseURL   string
	StandingsBaseURL string
	FetchTimeout     time.Duration
	FullTimeAfter    time.Duration
	RetryEnabled     bool
	RetryAttempts    int
	Registry         Registry
	Metrics          MetricsConfig
}

// MetricsConfig controls the telemetry endpoint.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
// Registry loading errors surface to the caller; every scalar falls back to
// its default on bad input.
func Load() (Config, error) {
	registry, err := loadRegistry(envOrDefault(envRegistryFile, ""))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:             envOrDefault(envPort, defaultPort),
		Timezone:         envOrDefault(envTimezone, defaultTimezone),
		MatchesBaseURL:   envOrDefault(envMatchesBase, ""),
		StandingsBaseURL: envOrDefault(envStandingsBase, ""),
		FetchTimeout:     durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		FullTimeAfter:    durationEnvOrDefault(envFullTimeAfter, defaultFullTimeAfter),
		RetryEnabled:     boolEnvOrDefault(envRetryEnabled, defaultRetryEnabled),
		RetryAttempts:    intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		Registry:         registry,
		Metrics:          loadMetrics(),
	}, nil
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, "goal4u-data-service"),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}

// Location resolves the configured timezone, falling back to UTC on a bad
// name so date grouping stays deterministic.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil || loc == nil {
		return time.UTC
	}
	return loc
}
