package traceix

import (
	stderrors "errors"

	"github.com/perkinsfund/traceix-go/internal/errors"
)

// Error is the single error type returned by SDK operations. Inspect its
// Kind, or use the Is* helpers below.
type Error = errors.Error

// ErrorKind tags an Error with its root cause.
type ErrorKind = errors.Kind

const (
	// KindNoAPIKey: no credential was resolvable at construction.
	KindNoAPIKey = errors.NoAPIKey
	// KindInvalidSearchType: a search type outside the known set.
	KindInvalidSearchType = errors.InvalidSearchType
	// KindNoUUIDProvided: an empty identifier passed to CheckStatus.
	KindNoUUIDProvided = errors.NoUUIDProvided
	// KindHTTP: transport failure, non-2xx status, or malformed JSON.
	KindHTTP = errors.HTTP
	// KindIO: a local file could not be opened for upload.
	KindIO = errors.IO
)

// ErrorKindOf extracts the kind from err; ok is false for non-SDK errors
// such as context cancellation.
func ErrorKindOf(err error) (ErrorKind, bool) { return errors.KindOf(err) }

// IsNoAPIKey reports whether err is a missing-credential failure.
func IsNoAPIKey(err error) bool { return errors.Is(err, errors.NoAPIKey) }

// IsInvalidSearchType reports whether err is an unknown-search-type failure.
func IsInvalidSearchType(err error) bool { return errors.Is(err, errors.InvalidSearchType) }

// IsNoUUIDProvided reports whether err is an empty-identifier failure.
func IsNoUUIDProvided(err error) bool { return errors.Is(err, errors.NoUUIDProvided) }

// IsHTTPError reports whether err is a transport, status, or decode failure.
func IsHTTPError(err error) bool { return errors.Is(err, errors.HTTP) }

// IsIOError reports whether err is a local file failure.
func IsIOError(err error) bool { return errors.Is(err, errors.IO) }

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// a non-2xx response failure.
func StatusCode(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
