package client

import (
	"context"

	"github.com/kaamsetu/kaamsetu-client/internal/api"
	"github.com/kaamsetu/kaamsetu-client/internal/rank"
)

// SearchWorkers fetches the worker directory with the given server-side
// filters. Calls are throttled by the directory rate limiter; pair with a
// Debouncer for keystroke-driven refreshes.
func (c *Client) SearchWorkers(ctx context.Context, q DirectoryQuery) ([]WorkerRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return api.ListWorkers(ctx, c.http, c.baseURL, q)
}

// RankWorkers filters and orders a fetched worker pool for display. Pure:
// the input slice is never mutated, and server-side filtering is refined
// rather than replaced (the pipeline adds fuzzy matching the server may not
// perform).
func (c *Client) RankWorkers(workers []WorkerRecord, state SearchState) []WorkerRecord {
	return rank.Rank(workers, state)
}
