// Package types holds the request payloads and enumerations shared by the
// endpoint layer and the public SDK surface.
package types

// ------------------------------
// Request Types
// ------------------------------

// StatusRequest asks for the state of an asynchronous analysis job.
type StatusRequest struct {
	UUID string `json:"uuid"`
}

// HashSearchRequest looks up prior analysis results by file hash.
type HashSearchRequest struct {
	SHA256 string `json:"sha256"`
}

// DatasetRequest fetches a public IPFS dataset by content identifier.
type DatasetRequest struct {
	CID string `json:"cid"`
}

// DatasetHashRequest checks whether a file hash appears in any public
// IPFS dataset.
type DatasetHashRequest struct {
	SHAHash string `json:"sha_hash"`
}
