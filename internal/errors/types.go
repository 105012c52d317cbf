// Package errors provides error classification for the client SDK.
// This enables different retry policies based on error recoverability.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors should be retried with exponential backoff.
	// Examples: 500 Internal Server Error, network timeouts.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors should fail immediately without retry.
	// Examples: 401 Unauthorized, 403 Forbidden, 400 Bad Request.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "recoverable"
	case Irrecoverable:
		return "irrecoverable"
	default:
		return "unknown"
	}
}

// ClassifiedError carries an error category alongside the HTTP context the
// classification was derived from.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int
	Body       string
	Underlying error
}

func (e *ClassifiedError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s (%s)", e.Underlying.Error(), e.Category)
	}
	return fmt.Sprintf("http %d (%s)", e.StatusCode, e.Category)
}

func (e *ClassifiedError) Unwrap() error { return e.Underlying }

// IsIrrecoverable reports whether err (or anything it wraps) is classified
// as not worth retrying. Unclassified errors are treated as recoverable.
func IsIrrecoverable(err error) bool {
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Category == Irrecoverable
	}
	return false
}
