package types

import (
	"strings"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// WorkerRecord is a directory listing for a service worker. The record is
// read-only from the client's perspective; contact details are withheld
// until the profile is unlocked.
type WorkerRecord struct {
	ID         string    `json:"workerId"`
	Name       string    `json:"name"`
	WorkType   string    `json:"workType"`
	Location   string    `json:"location"`
	Skills     string    `json:"skills,omitempty"`
	Experience string    `json:"experience,omitempty"`
	DistanceKm *float64  `json:"distanceKm,omitempty"`
	PostCount  *int      `json:"postCount,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// WorkerProfile is the full profile returned once a worker is unlocked,
// including the contact fields the directory listing withholds.
type WorkerProfile struct {
	WorkerRecord
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// CreditBalance mirrors the ledger service's subscription status payload.
// Both counters are cumulative; the server never sends deltas.
type CreditBalance struct {
	ViewsAllowed int `json:"viewsAllowed"`
	ViewsUsed    int `json:"viewsUsed"`
}

// Remaining returns the spendable credit count, floored at zero so a
// provisional optimistic update can never render a negative balance.
func (b CreditBalance) Remaining() int {
	if r := b.ViewsAllowed - b.ViewsUsed; r > 0 {
		return r
	}
	return 0
}

// SortKey selects the total ordering applied by the ranking pipeline.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortDistance   SortKey = "distance"
	SortPosts      SortKey = "posts"
	SortExperience SortKey = "experience"
)

// ParseSortKey maps a raw string to a SortKey, defaulting to newest.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortDistance:
		return SortDistance
	case SortPosts:
		return SortPosts
	case SortExperience:
		return SortExperience
	default:
		return SortNewest
	}
}

// WorkTypeAll disables the category filter.
const WorkTypeAll = "all"

// SearchState captures the UI's current filter and sort controls. It is
// recomputed per render and never persisted.
type SearchState struct {
	Query    string
	WorkType string
	Location string
	Sort     SortKey
}

// AccessOutcome describes how a profile view attempt was granted.
type AccessOutcome string

const (
	// AccessFreeReview: a still-valid local unlock grant; no network call,
	// no credit spent.
	AccessFreeReview AccessOutcome = "free_review"
	// AccessFreshUnlock: the server spent one credit for a first-time view.
	AccessFreshUnlock AccessOutcome = "fresh_unlock"
	// AccessRestored: the server recognized a prior grant the client had no
	// local record of; no credit spent, local window restarted.
	AccessRestored AccessOutcome = "restored"
)

// AccessResult is the outcome of a single profile view attempt.
//
// Profile is nil for AccessFreeReview: the grant is served entirely from
// the local unlock cache and the caller keeps whatever profile data it
// already rendered.
type AccessResult struct {
	Outcome       AccessOutcome
	Profile       *WorkerProfile
	FreeRemaining time.Duration
}
