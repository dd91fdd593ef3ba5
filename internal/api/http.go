// Package api implements one function per Traceix endpoint. Callers pass
// the shared *http.Client and base URL; authentication and User-Agent
// headers are injected by the transport wrapper installed in the root
// package.
package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/perkinsfund/traceix-go/internal/errors"
)

// maxErrorBody bounds how much of an error response is retained for
// debugging.
const maxErrorBody = 8 << 10

// send performs the exchange and decodes the JSON response. Any non-2xx
// status is a failure; the body is kept on the error instead of being
// decoded.
func send(httpClient *http.Client, req *http.Request, op string) (any, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.NewStatusError(op, resp.StatusCode, string(body))
	}

	var v any
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, errors.NewDecodeError(op, err)
	}
	return v, nil
}
