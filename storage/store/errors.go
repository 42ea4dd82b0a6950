package store

import (
	"net/http"

	"github.com/pkg/errors"
)

// The client classifies every failure into exactly one of three kinds:
// TimeoutError (the bounded wait elapsed), TransportError (network failure
// before a response) or ApplicationError (the store answered non-2xx).
// All three are recoverable at the caller level; none crash the process.

type TimeoutError struct{}

func (TimeoutError) Error() string { return "Request timed out." }

type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ApplicationError carries the store's non-2xx status; Detail is the
// response body when present, the status text otherwise, and becomes the
// user-facing notification message.
type ApplicationError struct {
	StatusCode int
	Detail     string
}

func (e *ApplicationError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return http.StatusText(e.StatusCode)
}

func IsTimeout(err error) bool {
	_, ok := errors.Cause(err).(TimeoutError)
	return ok
}

func IsTransport(err error) bool {
	_, ok := errors.Cause(err).(*TransportError)
	return ok
}

func IsApplication(err error) bool {
	_, ok := errors.Cause(err).(*ApplicationError)
	return ok
}
