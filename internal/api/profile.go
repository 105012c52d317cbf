package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kaamsetu/kaamsetu-client/internal/types"
)

// ViewWorker asks the server to unlock a worker's full profile. The server
// alone decides whether this view spends a credit: it knows about grants
// from prior sessions the client may hold no record of.
func ViewWorker(ctx context.Context, httpClient HTTPClient, baseURL, workerID string) (*types.ViewWorkerResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(workerID, "workerId"); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/v0/workers/%s/view", baseURL, workerID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("view worker %s: %w", workerID, types.ErrNotFound)
	case http.StatusPaymentRequired, http.StatusForbidden:
		return nil, fmt.Errorf("view worker %s: %w", workerID, types.ErrInsufficientCredits)
	default:
		return nil, fmt.Errorf("view worker: status %d", resp.StatusCode)
	}

	var vr types.ViewWorkerResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, err
	}
	return &vr, nil
}
