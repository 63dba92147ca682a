package providers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/teststubs"
	"mlb-scores-service/internal/testutil"
	"mlb-scores-service/internal/timeutil"
)

var testDate = timeutil.TargetDate{Year: 2024, Month: 6, Day: 15}

func TestInstrumentedProviderRecordsSuccess(t *testing.T) {
	inner := &teststubs.StubProvider{Games: []games.Game{{ID: "g1"}}}
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	p := NewInstrumentedProvider(inner, "mlb", logger, rec)

	board, err := p.FetchScoreboard(context.Background(), testDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(board.Games) != 1 {
		t.Fatalf("expected passthrough games, got %+v", board)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected a single inner call, got %d", inner.Calls.Load())
	}
	if rec.UpstreamCalls("mlb") != 1 || rec.UpstreamErrors("mlb") != 0 {
		t.Fatalf("unexpected metrics snapshot %+v", rec.Snapshot("mlb"))
	}
	out := buf.String()
	if !strings.Contains(out, "scoreboard fetched") || !strings.Contains(out, "provider=mlb") || !strings.Contains(out, "date=2024-06-15") {
		t.Fatalf("expected fetch log with provider and date, got %q", out)
	}
}

func TestInstrumentedProviderLogsUnreachableAsWarn(t *testing.T) {
	inner := &teststubs.StubProvider{Err: &UnreachableError{Provider: "mlb", StatusCode: 500}}
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	p := NewInstrumentedProvider(inner, "mlb", logger, rec)

	if _, err := p.FetchScoreboard(context.Background(), testDate); err == nil {
		t.Fatalf("expected error passthrough")
	}
	if rec.UpstreamErrors("mlb") != 1 {
		t.Fatalf("expected error counted")
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("expected warn level log, got %q", buf.String())
	}
}

func TestInstrumentedProviderLogsOtherErrorsAsError(t *testing.T) {
	boom := errors.New("boom")
	inner := &teststubs.StubProvider{Err: boom}
	logger, buf := testutil.NewBufferLogger()
	p := NewInstrumentedProvider(inner, "fixture", logger, nil)

	if _, err := p.FetchScoreboard(context.Background(), testDate); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Fatalf("expected error level log, got %q", buf.String())
	}
}

func TestInstrumentedProviderMeasuresLatency(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(inner, "mlb", nil, rec).(*instrumentedProvider)
	ticks := []time.Time{
		time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 12, 0, 0, int(250*time.Millisecond), time.UTC),
	}
	p.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}
	_, _ = p.FetchScoreboard(context.Background(), testDate)
	if got := rec.Snapshot("mlb").LastFetchLatency; got != 250*time.Millisecond {
		t.Fatalf("expected 250ms latency, got %v", got)
	}
}

func TestInstrumentedProviderPrefersContextLogger(t *testing.T) {
	inner := &teststubs.StubProvider{}
	ctxLogger, buf := testutil.NewBufferLogger()
	ctx := logging.WithLogger(context.Background(), ctxLogger)
	p := NewInstrumentedProvider(inner, "mlb", nil, nil)

	_, _ = p.FetchScoreboard(ctx, testDate)
	if !strings.Contains(buf.String(), "scoreboard fetched") {
		t.Fatalf("expected context logger to be used, got %q", buf.String())
	}
}
