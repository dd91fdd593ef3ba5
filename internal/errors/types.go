// Package errors defines the closed error taxonomy for the Traceix SDK.
// Every failure a caller can see is an *Error tagged with exactly one Kind.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies the root cause of an SDK failure.
type Kind int

const (
	// NoAPIKey means no credential was resolvable at construction.
	NoAPIKey Kind = iota

	// InvalidSearchType means a search type outside the known set was passed.
	InvalidSearchType

	// NoUUIDProvided means an empty identifier was passed to a status check.
	NoUUIDProvided

	// HTTP covers transport failures, non-2xx responses, and malformed
	// JSON response bodies.
	HTTP

	// IO means a local file could not be opened for upload.
	IO
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case NoAPIKey:
		return "NoAPIKey"
	case InvalidSearchType:
		return "InvalidSearchType"
	case NoUUIDProvided:
		return "NoUUIDProvided"
	case HTTP:
		return "HTTP"
	case IO:
		return "IO"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the single error type returned by the SDK.
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status code (0 when no status was received)
	Body       string // response body for debugging, possibly truncated
	Underlying error  // the original error, nil for precondition failures
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("[%s] HTTP %d: %s", e.Kind, e.StatusCode, e.Message)
	case e.Underlying != nil:
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Underlying)
	default:
		return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// KindOf extracts the taxonomy kind from err. ok is false when err is not
// an SDK error (for example a context cancellation).
func KindOf(err error) (Kind, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err is an SDK error of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
