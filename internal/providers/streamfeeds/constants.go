package streamfeeds

import "time"

const defaultHTTPTimeout = 10 * time.Second
