package metrics

import (
	"sync"
	"time"
)

type feedStats struct {
	calls            int
	errors           int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches and replies,
// mirroring them into OpenTelemetry instruments when configured.
type Recorder struct {
	mu       sync.Mutex
	feeds    map[string]*feedStats
	outcomes map[string]int
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		feeds:    make(map[string]*feedStats),
		outcomes: make(map[string]int),
		otel:     otel,
	}
}

// RecordUpstreamFetch increments counters for a scoreboard fetch and stores the last observed latency.
func (r *Recorder) RecordUpstreamFetch(feed string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.feeds[feed]
	if !ok {
		stats = &feedStats{}
		r.feeds[feed] = stats
	}
	stats.calls++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamFetch(feed, duration, err)
	}
}

// RecordScoreResponse counts replies by outcome (games, no_games, no_match, ...).
func (r *Recorder) RecordScoreResponse(outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.outcomes[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordScoreResponse(outcome)
	}
}

// UpstreamCalls returns the total fetches recorded for a feed.
func (r *Recorder) UpstreamCalls(feed string) int {
	return r.Snapshot(feed).Calls
}

// UpstreamErrors returns the failed fetches recorded for a feed.
func (r *Recorder) UpstreamErrors(feed string) int {
	return r.Snapshot(feed).Errors
}

// Outcomes returns how many replies were recorded with the given outcome.
func (r *Recorder) Outcomes(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[outcome]
}

// Snapshot is a copy of the current stats for a feed.
type Snapshot struct {
	Calls            int
	Errors           int
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(feed string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.feeds[feed]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:            stats.calls,
		Errors:           stats.errors,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
