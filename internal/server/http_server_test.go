package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNetHTTPServerListenAndShutdown(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	s := netHTTPServer{srv: srv}
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)
	_ = s.Shutdown(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("listen did not return after shutdown")
	}
}

func TestNetHTTPServerAccessors(t *testing.T) {
	handler := http.NewServeMux()
	s := netHTTPServer{srv: &http.Server{Addr: ":1234", Handler: handler}}

	if s.Addr() != ":1234" {
		t.Fatalf("expected addr passthrough")
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
}

func TestNewNetHTTPServerAppliesTimeouts(t *testing.T) {
	s := newNetHTTPServer("8081", http.NewServeMux())
	if s.Addr() != ":8081" {
		t.Fatalf("expected :8081, got %s", s.Addr())
	}
	if s.srv.ReadTimeout != readTimeout || s.srv.IdleTimeout != idleTimeout {
		t.Fatalf("expected standard timeouts applied")
	}
}
