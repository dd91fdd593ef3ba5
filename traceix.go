// Package traceix is a Go SDK for the Traceix file-analysis service. It
// uploads files for AI-based prediction and capability/metadata extraction,
// checks asynchronous job status, searches prior results by hash, and
// queries the public IPFS dataset index.
//
// Every operation is a single synchronous request/response round trip.
// Response schemas are owned by the service, so payloads are returned as
// decoded JSON values for the caller to interpret.
package traceix

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"

	"github.com/perkinsfund/traceix-go/internal/api"
	"github.com/perkinsfund/traceix-go/internal/errors"
	"github.com/perkinsfund/traceix-go/internal/types"
)

// DefaultBaseURL is the production service origin. Override it with
// WithBaseURL, typically to point tests at a local server.
const DefaultBaseURL = "https://ai.perkinsfund.org"

// envPrefix scopes all environment variables read by the SDK.
const envPrefix = "traceix"

// envConfig holds the environment read once at construction. The telemetry
// opt-out is deliberately absent: it is re-read on every request so it can
// be toggled mid-process.
type envConfig struct {
	APIKey string `envconfig:"API_KEY"`
}

// Client talks to the Traceix service. It is immutable after construction
// and safe for concurrent use; the underlying http.Client pools
// connections across calls.
type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string
}

// New constructs a Client. A non-empty apiKey wins; otherwise the key is
// read from TRACEIX_API_KEY. With neither, New fails with a NoAPIKey error.
func New(apiKey string, opts ...Option) (*Client, error) {
	key := apiKey
	if key == "" {
		var env envConfig
		if err := envconfig.Process(envPrefix, &env); err != nil {
			return nil, err
		}
		key = env.APIKey
	}
	if key == "" {
		return nil, errors.NewNoAPIKey()
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  key,
		http:    &http.Client{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransportWithHeaders()

	return c, nil
}

// wrapTransportWithHeaders wraps the HTTP client's transport so every
// request carries the x-api-key, User-Agent, and x-request-id headers.
func (c *Client) wrapTransportWithHeaders() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &headerTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// headerTransport wraps an http.RoundTripper to inject the auth and
// User-Agent headers. The User-Agent is rebuilt per request so the
// telemetry opt-out takes effect on the next call.
type headerTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("x-api-key", t.apiKey)
	cloned.Header.Set("User-Agent", buildUserAgent())
	// Correlates client debug logs with server-side traces.
	cloned.Header.Set("x-request-id", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// Close releases idle connections held by the transport. Safe to call
// multiple times.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// --------------------------------------------------------------------
// Upload operations - delegated to internal/api
// --------------------------------------------------------------------

// AIPrediction uploads the file at filename to the prediction endpoint and
// returns the decoded response.
func (c *Client) AIPrediction(ctx context.Context, filename string) (any, error) {
	v, err := api.AIPrediction(ctx, c.http, c.baseURL, filename)
	observeRequest("ai_prediction", err)
	return v, err
}

// CapaExtraction uploads the file for capability extraction.
func (c *Client) CapaExtraction(ctx context.Context, filename string) (any, error) {
	v, err := api.CapaExtraction(ctx, c.http, c.baseURL, filename)
	observeRequest("capa_extraction", err)
	return v, err
}

// ExifExtraction uploads the file for embedded-metadata extraction.
func (c *Client) ExifExtraction(ctx context.Context, filename string) (any, error) {
	v, err := api.ExifExtraction(ctx, c.http, c.baseURL, filename)
	observeRequest("exif_extraction", err)
	return v, err
}

// FullUploadResult holds the payloads produced by FullUpload, in call
// order.
type FullUploadResult struct {
	Prediction any
	Capa       any
	Exif       any
}

// FullUpload runs prediction, capability extraction, and metadata
// extraction against the same file in that order. It is not transactional:
// the first failure aborts the sequence and earlier results are discarded.
// Callers needing partial results should call the sub-operations directly.
func (c *Client) FullUpload(ctx context.Context, filename string) (*FullUploadResult, error) {
	prediction, err := c.AIPrediction(ctx, filename)
	if err != nil {
		return nil, err
	}
	capa, err := c.CapaExtraction(ctx, filename)
	if err != nil {
		return nil, err
	}
	exif, err := c.ExifExtraction(ctx, filename)
	if err != nil {
		return nil, err
	}
	return &FullUploadResult{Prediction: prediction, Capa: capa, Exif: exif}, nil
}

// --------------------------------------------------------------------
// Status and search operations
// --------------------------------------------------------------------

// CheckStatus looks up the state of an asynchronous analysis job by its
// identifier. An empty uuid fails with NoUUIDProvided before any network
// call.
func (c *Client) CheckStatus(ctx context.Context, uuid string) (any, error) {
	v, err := api.CheckStatus(ctx, c.http, c.baseURL, uuid)
	observeRequest("check_status", err)
	return v, err
}

// HashSearch looks up prior analysis results by SHA-256 hash. searchType
// picks the capa or exif endpoint variant.
func (c *Client) HashSearch(ctx context.Context, fileHash string, searchType SearchType) (any, error) {
	v, err := api.HashSearch(ctx, c.http, c.baseURL, fileHash, searchType)
	observeRequest("hash_search", err)
	return v, err
}

// --------------------------------------------------------------------
// Public IPFS dataset operations
// --------------------------------------------------------------------

// ListAllIPFSDatasets returns the index of public IPFS datasets.
func (c *Client) ListAllIPFSDatasets(ctx context.Context) (any, error) {
	v, err := api.ListAllDatasets(ctx, c.http, c.baseURL)
	observeRequest("list_ipfs_datasets", err)
	return v, err
}

// GetPublicIPFSDataset fetches a public dataset by content identifier.
func (c *Client) GetPublicIPFSDataset(ctx context.Context, cid string) (any, error) {
	v, err := api.GetPublicDataset(ctx, c.http, c.baseURL, cid)
	observeRequest("get_ipfs_dataset", err)
	return v, err
}

// SearchIPFSDatasetByHash checks whether a file hash appears in any public
// dataset.
func (c *Client) SearchIPFSDatasetByHash(ctx context.Context, fileHash string) (any, error) {
	v, err := api.FindDatasetByHash(ctx, c.http, c.baseURL, fileHash)
	observeRequest("find_ipfs_dataset", err)
	return v, err
}

// --------------------------------------------------------------------
// Public type aliases
// --------------------------------------------------------------------

// SearchType selects which hash-search endpoint variant HashSearch calls.
type SearchType = types.SearchType

const (
	// SearchCapa searches prior capability-extraction results.
	SearchCapa = types.SearchCapa
	// SearchExif searches prior metadata-extraction results.
	SearchExif = types.SearchExif
)
