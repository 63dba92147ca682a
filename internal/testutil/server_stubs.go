package testutil

import (
	"context"
	"net/http"
	"sync/atomic"
)

// StubHTTPServer satisfies the server package's httpServer interface without binding a port.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error

	ListenCalls   atomic.Int32
	ShutdownCalls atomic.Int32
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.ShutdownCalls.Add(1)
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// BlockingHTTPServer holds Shutdown open until Unblock is closed or the context ends.
type BlockingHTTPServer struct {
	StubHTTPServer
	Unblock chan struct{}
}

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls.Add(1)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}
