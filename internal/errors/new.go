package errors

import "fmt"

// NewNoAPIKey reports a missing credential at construction time.
func NewNoAPIKey() *Error {
	return &Error{Kind: NoAPIKey, Message: "no API key provided and TRACEIX_API_KEY is not set"}
}

// NewInvalidSearchType reports a search type outside the known set.
func NewInvalidSearchType(got int) *Error {
	return &Error{Kind: InvalidSearchType, Message: fmt.Sprintf("search must be of type capa or exif, got %d", got)}
}

// NewNoUUIDProvided reports an empty identifier passed to a status check.
func NewNoUUIDProvided() *Error {
	return &Error{Kind: NoUUIDProvided, Message: "no UUID provided for the status endpoint"}
}

// NewStatusError reports a non-2xx response. The body is kept for debugging.
func NewStatusError(op string, statusCode int, body string) *Error {
	return &Error{
		Kind:       HTTP,
		StatusCode: statusCode,
		Body:       body,
		Message:    fmt.Sprintf("%s failed", op),
	}
}

// NewNetworkError reports a transport-level failure before any status
// was received.
func NewNetworkError(op string, err error) *Error {
	return &Error{Kind: HTTP, Underlying: err, Message: op + " request failed"}
}

// NewDecodeError reports a response body that was not valid JSON.
func NewDecodeError(op string, err error) *Error {
	return &Error{Kind: HTTP, Underlying: err, Message: op + " returned malformed JSON"}
}

// NewIOError reports a local file that could not be opened for upload.
func NewIOError(op string, err error) *Error {
	return &Error{Kind: IO, Underlying: err, Message: op + " could not open file"}
}
