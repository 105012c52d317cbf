// Package unlock tracks which worker profiles the session has paid to view
// and for how much longer each re-view stays free. The in-memory map is
// mirrored to a durable Store on every mutation so unlock state survives a
// restart.
package unlock

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Grant records when a worker's profile was unlocked.
//
// On the wire a grant is a two-element [workerId, unixMillis] pair; the
// whole cache serializes as an association list of such pairs.
type Grant struct {
	WorkerID   string
	UnlockedAt time.Time
}

// MarshalJSON encodes the grant as a [workerId, unixMillis] pair.
func (g Grant) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{g.WorkerID, g.UnlockedAt.UnixMilli()})
}

// UnmarshalJSON decodes a [workerId, unixMillis] pair.
func (g *Grant) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("unlock grant: %w", err)
	}
	if err := json.Unmarshal(pair[0], &g.WorkerID); err != nil {
		return fmt.Errorf("unlock grant worker id: %w", err)
	}
	var millis int64
	if err := json.Unmarshal(pair[1], &millis); err != nil {
		return fmt.Errorf("unlock grant timestamp: %w", err)
	}
	g.UnlockedAt = time.UnixMilli(millis)
	return nil
}

// Store abstracts the durable mirror of the unlock cache. Implementations
// must tolerate Save being called with an empty slice (logout clears the
// cache).
type Store interface {
	Load(ctx context.Context) ([]Grant, error)
	Save(ctx context.Context, grants []Grant) error
}

// MemStore is an in-memory Store for tests and for degraded sessions where
// durable storage is unavailable.
type MemStore struct {
	mu     sync.Mutex
	grants []Grant
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore { return &MemStore{} }

// Load returns a copy of the stored grants.
func (m *MemStore) Load(ctx context.Context) ([]Grant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Grant, len(m.grants))
	copy(out, m.grants)
	return out, nil
}

// Save replaces the stored grants.
func (m *MemStore) Save(ctx context.Context, grants []Grant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grants = make([]Grant, len(grants))
	copy(m.grants, grants)
	return nil
}
