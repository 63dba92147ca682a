package mlb

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"mlb-scores-service/internal/timeutil"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// ScoreboardPath returns the feed path for the master scoreboard of a given date.
func ScoreboardPath(date timeutil.TargetDate) string {
	return fmt.Sprintf("/components/game/mlb/year_%s/month_%s/day_%s/master_scoreboard.json",
		date.YearString(), date.MonthString(), date.DayString())
}
