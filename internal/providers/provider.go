package providers

import (
	"context"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/timeutil"
)

// ScoreboardProvider fetches one day's scoreboard and normalizes it into domain games.
// Implementations return *UnreachableError for transport failures and *PayloadError
// for bodies that cannot be decoded.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, date timeutil.TargetDate) (games.Scoreboard, error)
}
