package client

import "github.com/kaamsetu/kaamsetu-client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	WorkerRecord  = types.WorkerRecord
	WorkerProfile = types.WorkerProfile
	CreditBalance = types.CreditBalance
	SearchState   = types.SearchState
	SortKey       = types.SortKey
	AccessResult  = types.AccessResult
	AccessOutcome = types.AccessOutcome

	// Requests
	DirectoryQuery = types.DirectoryQuery

	// Responses
	ViewWorkerResponse  = types.ViewWorkerResponse
	ListWorkersResponse = types.ListWorkersResponse
)

// Sort keys accepted by SearchState.Sort.
const (
	SortNewest     = types.SortNewest
	SortDistance   = types.SortDistance
	SortPosts      = types.SortPosts
	SortExperience = types.SortExperience
)

// WorkTypeAll disables the category filter in SearchState.
const WorkTypeAll = types.WorkTypeAll

// Access outcomes reported in AccessResult.
const (
	AccessFreeReview  = types.AccessFreeReview
	AccessFreshUnlock = types.AccessFreshUnlock
	AccessRestored    = types.AccessRestored
)

// ParseSortKey maps a raw string to a SortKey, defaulting to SortNewest.
func ParseSortKey(s string) SortKey { return types.ParseSortKey(s) }

// Errors re-exported in errors.go
