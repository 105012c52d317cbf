package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kaamsetu/kaamsetu-client/internal/types"
)

// ListWorkers queries the worker directory. Server-side filters in q are
// additive to the client ranking pipeline.
func ListWorkers(ctx context.Context, httpClient HTTPClient, baseURL string, q types.DirectoryQuery) ([]types.WorkerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/v0/workers", baseURL)
	if params := q.Values().Encode(); params != "" {
		url += "?" + params
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list workers: status %d", resp.StatusCode)
	}

	var lr types.ListWorkersResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, err
	}
	return lr.Workers, nil
}
