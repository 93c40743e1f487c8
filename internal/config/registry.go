package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gowrapavan/goal4u-data-service/internal/providers"
)

// Registry lists the data sources the aggregators fan out over. The built-in
// defaults cover the eight competitions and three stream providers the site
// launched with; a YAML file (REGISTRY_FILE) or GOAL4U_-prefixed env vars can
// replace either list without touching code.
type Registry struct {
	Competitions    []providers.Competition    `koanf:"competitions"`
	StreamProviders []providers.StreamProvider `koanf:"stream_providers"`
}

// defaultRegistry returns the built-in source lists.
func defaultRegistry() Registry {
	return Registry{
		Competitions: []providers.Competition{
			{Code: "EPL", Name: "Premier League"},
			{Code: "ESP", Name: "La Liga"},
			{Code: "ITSA", Name: "Serie A"},
			{Code: "DEB", Name: "Bundesliga"},
			{Code: "MLS", Name: "Major League Soccer"},
			{Code: "FRL1", Name: "Ligue 1"},
			{Code: "UCL", Name: "Champions League"},
			{Code: "CWC", Name: "FIFA Club World Cup"},
		},
		StreamProviders: []providers.StreamProvider{
			{Label: "OvoGoals", Key: "ovogoals", URL: "https://raw.githubusercontent.com/gowrapavan/shortsdata/main/json/ovogoal.json"},
			{Label: "Sportz", Key: "sportzonline", URL: "https://raw.githubusercontent.com/gowrapavan/shortsdata/main/json/sportsonline.json"},
			{Label: "HesGoal", Key: "hesgoal", URL: "https://raw.githubusercontent.com/gowrapavan/shortsdata/main/json/hesgoal.json"},
		},
	}
}

// loadRegistry merges the optional registry file and environment overrides on
// top of the defaults. When no file is configured only env overrides apply;
// a configured-but-unreadable file returns the error so misconfiguration is
// not masked.
func loadRegistry(path string) (Registry, error) {
	reg := defaultRegistry()

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return reg, err
		}
	}
	if err := k.Load(env.Provider("GOAL4U_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "GOAL4U_")), "__", ".")
	}), nil); err != nil {
		return reg, err
	}

	if k.Exists("competitions") {
		var comps []providers.Competition
		if err := k.Unmarshal("competitions", &comps); err != nil {
			return reg, err
		}
		if len(comps) > 0 {
			reg.Competitions = comps
		}
	}
	if k.Exists("stream_providers") {
		var provs []providers.StreamProvider
		if err := k.Unmarshal("stream_providers", &provs); err != nil {
			return reg, err
		}
		if len(provs) > 0 {
			reg.StreamProviders = provs
		}
	}
	return reg, nil
}
