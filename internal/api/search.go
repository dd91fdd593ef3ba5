package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/perkinsfund/traceix-go/internal/types"
)

// HashSearch looks up prior analysis results by SHA-256 hash. The search
// type selects between the capa and exif endpoint variants.
func HashSearch(ctx context.Context, httpClient *http.Client, baseURL, fileHash string, searchType types.SearchType) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := searchType.SearchPath()
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(types.HashSearchRequest{SHA256: fileHash})
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return send(httpClient, httpReq, searchType.String()+" hash search")
}
