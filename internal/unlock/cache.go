package unlock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultTTL is the free re-view window granted per unlocked worker.
const DefaultTTL = 24 * time.Hour

const persistTimeout = 3 * time.Second

// Cache maps worker ids to their unlock time. A grant is valid for TTL from
// the moment it was set; expired grants are logically absent even before the
// sweep physically removes them.
//
// Every mutation is mirrored to the Store. If the store fails, the cache
// degrades to memory-only for the rest of the session rather than failing
// the caller.
type Cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	grants   map[string]time.Time
	store    Store
	now      func() time.Time
	degraded bool
}

// NewCache builds a cache backed by store. A nil store means memory-only; a
// non-positive ttl selects DefaultTTL; a nil clock selects time.Now.
func NewCache(store Store, ttl time.Duration, now func() time.Time) *Cache {
	if store == nil {
		store = NewMemStore()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		ttl:    ttl,
		grants: make(map[string]time.Time),
		store:  store,
		now:    now,
	}
}

// Load replaces the in-memory map with the store's contents. Expired grants
// are loaded as-is; the eager startup sweep evicts them.
func (c *Cache) Load(ctx context.Context) error {
	grants, err := c.store.Load(ctx)
	if err != nil {
		c.mu.Lock()
		c.degraded = true
		c.mu.Unlock()
		return fmt.Errorf("unlock cache load: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grants = make(map[string]time.Time, len(grants))
	for _, g := range grants {
		c.grants[g.WorkerID] = g.UnlockedAt
	}
	return nil
}

// IsValid reports whether workerID holds a grant younger than the TTL.
func (c *Cache) IsValid(workerID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	at, ok := c.grants[workerID]
	return ok && c.now().Sub(at) < c.ttl
}

// Remaining returns how much of the free re-view window is left, or false
// when the grant is absent or expired.
func (c *Cache) Remaining(workerID string) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	at, ok := c.grants[workerID]
	if !ok {
		return 0, false
	}
	left := c.ttl - c.now().Sub(at)
	if left <= 0 {
		return 0, false
	}
	return left, true
}

// Set records a grant for workerID starting now, overwriting any prior one.
func (c *Cache) Set(workerID string) {
	c.SetAt(workerID, c.now())
}

// SetAt records a grant with an explicit unlock time.
func (c *Cache) SetAt(workerID string, at time.Time) {
	c.mu.Lock()
	c.grants[workerID] = at
	c.mu.Unlock()
	c.persist()
}

// Evict drops a single grant regardless of validity. Used by the access
// path to clear an expired record before re-consulting the server.
func (c *Cache) Evict(workerID string) {
	c.mu.Lock()
	_, ok := c.grants[workerID]
	delete(c.grants, workerID)
	c.mu.Unlock()
	if ok {
		c.persist()
	}
}

// Sweep evicts every grant whose TTL has elapsed and reports whether
// anything was evicted, so dependent UI knows to re-render.
func (c *Cache) Sweep() bool {
	c.mu.Lock()
	now := c.now()
	evicted := 0
	for id, at := range c.grants {
		if now.Sub(at) >= c.ttl {
			delete(c.grants, id)
			evicted++
		}
	}
	c.mu.Unlock()

	sweepsTotal.Inc()
	if evicted == 0 {
		return false
	}
	evictionsTotal.Add(float64(evicted))
	c.persist()
	return true
}

// Clear empties the cache and its durable mirror (logout).
func (c *Cache) Clear() {
	c.mu.Lock()
	c.grants = make(map[string]time.Time)
	c.mu.Unlock()
	c.persist()
}

// Len returns the number of physically stored grants, valid or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.grants)
}

// Degraded reports whether the durable store has failed this session.
func (c *Cache) Degraded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.degraded
}

func (c *Cache) persist() {
	c.mu.Lock()
	if c.degraded {
		c.mu.Unlock()
		return
	}
	grants := make([]Grant, 0, len(c.grants))
	for id, at := range c.grants {
		grants = append(grants, Grant{WorkerID: id, UnlockedAt: at})
	}
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := c.store.Save(ctx, grants); err != nil {
		c.mu.Lock()
		c.degraded = true
		c.mu.Unlock()
		log.Warn().Err(err).Msg("unlock cache: store unavailable, continuing in memory only")
	}
}

// FormatRemaining renders a remaining window as minutes under one hour and
// whole hours otherwise.
func FormatRemaining(d time.Duration) string {
	if d < time.Hour {
		m := int(d.Minutes())
		if m < 1 {
			m = 1
		}
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh", int(d.Hours()))
}
