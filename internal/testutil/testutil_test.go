package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"mlb-scores-service/internal/domain/games"
)

func TestNowAt(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if got := NowAt(at)(); !got.Equal(at) {
		t.Fatalf("expected %v, got %v", at, got)
	}
}

func TestFixtures(t *testing.T) {
	final := FinalGame("NYY", "BOS")
	if final.Phase() != games.PhaseFinal || final.Home.Code != "nyy" {
		t.Fatalf("unexpected final game %+v", final)
	}
	preview := PreviewGame("KC", "CWS")
	if preview.Phase() != games.PhasePreview || preview.Away.Code != "cws" {
		t.Fatalf("unexpected preview game %+v", preview)
	}
}

func TestServeHelpers(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	rr := Serve(h, http.MethodGet, "/", nil)
	AssertStatus(t, rr, http.StatusOK)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok body, got %+v", body)
	}
}

func TestRequestBuilders(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		_, _ = w.Write([]byte(r.Header.Get("Content-Type") + "|" + r.FormValue("command")))
	})
	rr := ServeRequest(echo, FormRequest("/", url.Values{"command": {"/scores"}}))
	AssertBody(t, rr, "application/x-www-form-urlencoded|/scores")

	rr = ServeRequest(echo, JSONRequest("/", `{}`))
	if !strings.HasPrefix(rr.Body.String(), "application/json") {
		t.Fatalf("expected json content type, got %q", rr.Body.String())
	}
}

func TestStubHTTPServer(t *testing.T) {
	srv := &StubHTTPServer{ListenErr: errors.New("listen")}
	if err := srv.ListenAndServe(); err == nil {
		t.Fatalf("expected listen error")
	}
	_ = srv.Shutdown(context.Background())
	if srv.ListenCalls.Load() != 1 || srv.ShutdownCalls.Load() != 1 {
		t.Fatalf("unexpected call counts")
	}
	if srv.Addr() != ":0" || srv.Handler() == nil {
		t.Fatalf("expected defaults for addr and handler")
	}
}

func TestBlockingHTTPServerHonoursContext(t *testing.T) {
	srv := &BlockingHTTPServer{Unblock: make(chan struct{})}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Shutdown(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	close(srv.Unblock)
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil after unblock, got %v", err)
	}
}

func TestNewBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected buffered log output, got %q", buf.String())
	}
}
