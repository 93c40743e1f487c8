package server

import "time"

const (
	// Requests are bodiless GETs; header read is all that matters.
	readTimeout = 5 * time.Second
	// A day-list response waits on the slowest competition fetch, which is
	// itself capped by FETCH_TIMEOUT (10s default), so the write budget must
	// sit comfortably above that.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
