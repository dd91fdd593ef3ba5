package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/perkinsfund/traceix-go/internal/types"
)

const statusPath = "/api/v1/traceix/status"

// CheckStatus looks up the state of an asynchronous analysis job. The
// identifier must be non-empty; it is rejected before any network call.
func CheckStatus(ctx context.Context, httpClient *http.Client, baseURL, uuid string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUUIDPresent(uuid); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(types.StatusRequest{UUID: uuid})
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+statusPath, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return send(httpClient, httpReq, "check status")
}
