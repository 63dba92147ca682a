package providers

import (
	"errors"
	"fmt"
)

// UnreachableError means the scoreboard host could not be reached or refused the request.
// Callers treat it as recoverable.
type UnreachableError struct {
	Provider   string
	URL        string
	StatusCode int
	Err        error
}

func (e *UnreachableError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: scoreboard unreachable (status=%d)", e.Provider, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: scoreboard unreachable: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s: scoreboard unreachable", e.Provider)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// PayloadError means the scoreboard body was fetched but could not be decoded.
type PayloadError struct {
	Provider string
	Reason   string
	Err      error
}

func (e *PayloadError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "malformed scoreboard payload"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// AsUnreachable attempts to unwrap an error into an UnreachableError.
func AsUnreachable(err error) (*UnreachableError, bool) {
	var target *UnreachableError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// AsPayloadError attempts to unwrap an error into a PayloadError.
func AsPayloadError(err error) (*PayloadError, bool) {
	var target *PayloadError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
