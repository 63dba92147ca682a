package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/timeutil"
)

// StubProvider is a test double for providers.ScoreboardProvider.
type StubProvider struct {
	Games []games.Game
	Err   error
	Calls atomic.Int32

	mu    sync.Mutex
	dates []timeutil.TargetDate
}

// FetchScoreboard returns configured games and error while tracking calls and requested dates.
func (s *StubProvider) FetchScoreboard(ctx context.Context, date timeutil.TargetDate) (games.Scoreboard, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.dates = append(s.dates, date)
	s.mu.Unlock()
	if s.Err != nil {
		return games.Scoreboard{}, s.Err
	}
	return games.Scoreboard{Date: date.String(), Games: s.Games}, nil
}

// Dates returns the dates requested so far, in call order.
func (s *StubProvider) Dates() []timeutil.TargetDate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]timeutil.TargetDate, len(s.dates))
	copy(out, s.dates)
	return out
}
