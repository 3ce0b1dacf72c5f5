// Package errs provides structured, user-friendly errors with machine-parseable codes.
package errs

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-parseable error identifier.
type ErrorCode string

const (
	// General
	ErrUnknown    ErrorCode = "ERR-000"
	ErrInternal   ErrorCode = "ERR-001"
	ErrConfig     ErrorCode = "ERR-002"
	ErrValidation ErrorCode = "ERR-003"

	// Output errors
	ErrOutputWrite ErrorCode = "ERR-OUT-001"
)

// Error is the structured error type used across preflight packages.
type Error struct {
	Code   ErrorCode // Machine-parseable error code
	Op     string    // Operation chain, e.g. "report.render"
	Cause  error     // Wrapped upstream error
	Advice string    // Human-readable remediation hint
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Op, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns the user-facing message with remediation advice.
func (e *Error) UserMessage() string {
	msg := fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Cause)
	if e.Advice != "" {
		msg += fmt.Sprintf("\n  → %s", e.Advice)
	}
	return msg
}

// New creates a new Error.
func New(code ErrorCode, op string, cause error) *Error {
	return &Error{Code: code, Op: op, Cause: cause}
}

// Newf creates a new Error with a formatted message as the cause.
func Newf(code ErrorCode, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Cause: fmt.Errorf(format, args...)}
}

// WithAdvice sets the remediation hint.
func (e *Error) WithAdvice(advice string) *Error {
	e.Advice = advice
	return e
}

// Wrap wraps err at a new operation boundary. Returns nil for a nil err.
func Wrap(err error, code ErrorCode, op string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Op: op, Cause: err}
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// As extracts the outermost *Error from err, or returns nil.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
