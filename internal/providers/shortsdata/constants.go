package shortsdata

import "time"

const (
	defaultMatchesBaseURL   = "https://raw.githubusercontent.com/gowrapavan/shortsdata/main/matches"
	defaultStandingsBaseURL = "https://raw.githubusercontent.com/gowrapavan/shortsdata/main/standing"
	defaultHTTPTimeout      = 10 * time.Second

	sourceName = "shortsdata"
)
