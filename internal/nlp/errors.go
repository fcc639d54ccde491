package nlp

import "net/http"

// invalidInputError signals malformed or absent input (400).
type invalidInputError struct{ msg string }

func (e invalidInputError) Error() string   { return "invalid input: " + e.msg }
func (e invalidInputError) StatusCode() int { return http.StatusBadRequest }

// ErrInvalidInput constructs an invalid input error.
func ErrInvalidInput(msg string) error { return invalidInputError{msg: msg} }

// IsInvalidInput reports whether err indicates malformed or absent input.
func IsInvalidInput(err error) bool {
	_, ok := err.(invalidInputError)
	return ok
}

// internalError wraps an unexpected fault raised during analysis (500).
type internalError struct{ err error }

func (e internalError) Error() string   { return "analysis failed: " + e.err.Error() }
func (e internalError) Unwrap() error   { return e.err }
func (e internalError) StatusCode() int { return http.StatusInternalServerError }

// IsInternal reports whether err is an analysis fault.
func IsInternal(err error) bool {
	_, ok := err.(internalError)
	return ok
}

// tooBusyError signals admission timeout/overflow for 429 mapping.
type tooBusyError struct{ reason string }

func (e tooBusyError) Error() string   { return "too busy: " + e.reason }
func (e tooBusyError) StatusCode() int { return http.StatusTooManyRequests }

// IsTooBusy reports whether err indicates backpressure (return 429).
func IsTooBusy(err error) bool {
	_, ok := err.(tooBusyError)
	return ok
}

// TooBusyReason returns the backpressure reason ("queue_full", "wait_timeout",
// "draining")
// or "" when err is not a too busy error.
func TooBusyReason(err error) string {
	if e, ok := err.(tooBusyError); ok {
		return e.reason
	}
	return ""
}

// startupError is returned by New when the model cannot be loaded. The process
// must not start serving after seeing it.
type startupError struct {
	model string
	err   error
}

func (e startupError) Error() string {
	return "load model " + e.model + ": " + e.err.Error()
}
func (e startupError) Unwrap() error { return e.err }

// IsStartupFailure reports whether err came from a failed model load.
func IsStartupFailure(err error) bool {
	_, ok := err.(startupError)
	return ok
}
