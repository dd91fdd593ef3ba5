package traceix

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the header transport wrapper is installed, so
// transport-related options (like debug logging) end up underneath it and
// observe the final headers. Options must be deterministic and side-effect
// free.
type Option func(*Client) error

// WithBaseURL points the client at a different service origin, typically a
// local test server. The value must be non-empty; a trailing slash is
// trimmed because endpoint paths begin with one.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client wholesale. The header
// wrapper is still installed on top of whatever transport the client
// carries.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request, including connection setup and reading the response. The value
// must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Logs include full request and response dumps with headers and bodies,
// which may contain the API key and file contents. Do not enable in
// production environments.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if c.http.Transport == nil {
				c.http.Transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
