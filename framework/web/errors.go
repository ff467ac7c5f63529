package web

import (
	"errors"
)

// ErrBadRequest is the generic malformed-request sentinel handlers return
// when nothing more specific applies.
var ErrBadRequest = errors.New("bad request")

// ErrorResponse is the JSON body every failed request carries.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error carries an error through the middleware chain together with the
// status code the response should use.
type Error struct {
	Err    error
	Status int
}

// NewRequestError wraps an expected handler error with its HTTP status.
func NewRequestError(err error, status int) error {
	return &Error{err, status}
}

// Error returns the wrapped error's message. This is what ends up in the
// request log.
func (err *Error) Error() string {
	return err.Err.Error()
}

// Unwrap exposes the wrapped error to errors.Is/As.
func (err *Error) Unwrap() error {
	return err.Err
}

// shutdown marks errors that must terminate the process rather than the
// request.
type shutdown struct {
	Message string
}

// NewShutdownError returns an error that makes the framework signal a
// graceful shutdown.
func NewShutdownError(message string) error {
	return &shutdown{message}
}

func (s *shutdown) Error() string {
	return s.Message
}

// IsShutdown reports whether err is a shutdown error.
func IsShutdown(err error) bool {
	var s *shutdown
	return errors.As(err, &s)
}
