package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout bounds graceful shutdown; tests shorten it.
var shutdownTimeout = 10 * time.Second
