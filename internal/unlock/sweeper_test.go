package unlock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSweeper_EagerSweepAtStart(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	c := NewCache(NewMemStore(), DefaultTTL, clock.Now)
	c.Set("w1")
	clock.Advance(25 * time.Hour)

	var evictions int32
	s := NewSweeper(c, time.Hour, func() { atomic.AddInt32(&evictions, 1) })
	s.Start()
	defer s.Stop()

	assert.False(t, c.IsValid("w1"))
	assert.Equal(t, 0, c.Len(), "startup sweep must evict the stale grant")
	assert.Equal(t, int32(1), atomic.LoadInt32(&evictions))
}

func TestSweeper_PeriodicEviction(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	c := NewCache(NewMemStore(), DefaultTTL, clock.Now)

	evicted := make(chan struct{}, 1)
	s := NewSweeper(c, 10*time.Millisecond, func() {
		select {
		case evicted <- struct{}{}:
		default:
		}
	})
	s.Start()
	defer s.Stop()

	c.Set("w1")
	clock.Advance(25 * time.Hour)

	select {
	case <-evicted:
	case <-time.After(2 * time.Second):
		t.Fatal("periodic sweep never fired")
	}
	assert.Equal(t, 0, c.Len())
}

func TestSweeper_StopIdempotent(t *testing.T) {
	t.Parallel()
	c := NewCache(NewMemStore(), DefaultTTL, nil)
	s := NewSweeper(c, time.Minute, nil)
	s.Start()
	s.Stop()
	s.Stop()
}
