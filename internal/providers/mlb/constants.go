package mlb

import "time"

const (
	providerName       = "mlb"
	defaultBaseURL     = "http://gd2.mlb.com"
	defaultHTTPTimeout = 10 * time.Second
	// maxErrorBody caps how much of a non-2xx body is drained before closing.
	maxErrorBody = 512
)
