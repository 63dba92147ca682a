package providers

import (
	"context"
	"log/slog"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/timeutil"
)

// instrumentedProvider wraps a ScoreboardProvider with fetch logging and metrics.
// It makes exactly one call to the wrapped provider per fetch.
type instrumentedProvider struct {
	inner   ScoreboardProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider wraps inner so every fetch is timed, counted and logged under name.
func NewInstrumentedProvider(inner ScoreboardProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) ScoreboardProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchScoreboard(ctx context.Context, date timeutil.TargetDate) (games.Scoreboard, error) {
	start := p.now()
	board, err := p.inner.FetchScoreboard(ctx, date)
	elapsed := p.now().Sub(start)
	p.metrics.RecordUpstreamFetch(p.name, elapsed, err)

	attrs := []any{
		slog.String(logging.FieldDate, date.String()),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}
	switch {
	case err == nil:
		attrs = append(attrs, slog.Int(logging.FieldCount, len(board.Games)))
		logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "scoreboard fetched", attrs...)
	case isUnreachable(err):
		attrs = append(attrs, slog.Any("err", err))
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "scoreboard unreachable", attrs...)
	default:
		attrs = append(attrs, slog.Any("err", err))
		logWithProvider(ctx, p.logger, slog.LevelError, p.name, "scoreboard fetch failed", attrs...)
	}
	return board, err
}

func isUnreachable(err error) bool {
	_, ok := AsUnreachable(err)
	return ok
}
