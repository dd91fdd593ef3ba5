package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/perkinsfund/traceix-go/internal/types"
)

const (
	ipfsListAllPath = "/api/traceix/v1/ipfs/listall"
	ipfsSearchPath  = "/api/traceix/v1/ipfs/search"
	ipfsFindPath    = "/api/traceix/v1/ipfs/find"
)

// ListAllDatasets returns the index of public IPFS datasets.
func ListAllDatasets(ctx context.Context, httpClient *http.Client, baseURL string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+ipfsListAllPath, nil)
	if err != nil {
		return nil, err
	}
	return send(httpClient, httpReq, "list ipfs datasets")
}

// GetPublicDataset fetches a public dataset by content identifier. An empty
// CID is forwarded as-is; the service owns validation.
func GetPublicDataset(ctx context.Context, httpClient *http.Client, baseURL, cid string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(types.DatasetRequest{CID: cid})
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+ipfsSearchPath, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return send(httpClient, httpReq, "get ipfs dataset")
}

// FindDatasetByHash checks whether a file hash appears in any public
// dataset.
func FindDatasetByHash(ctx context.Context, httpClient *http.Client, baseURL, fileHash string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(types.DatasetHashRequest{SHAHash: fileHash})
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+ipfsFindPath, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return send(httpClient, httpReq, "find ipfs dataset")
}
