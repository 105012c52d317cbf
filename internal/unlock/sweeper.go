package unlock

import (
	"sync"
	"time"
)

// DefaultSweepInterval is how often the background sweeper runs.
const DefaultSweepInterval = 60 * time.Second

// Sweeper runs Cache.Sweep once eagerly at Start and then on a fixed
// interval until Stop. OnEvict, when set, fires after any sweep that
// evicted at least one grant.
type Sweeper struct {
	cache    *Cache
	interval time.Duration
	onEvict  func()

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSweeper builds a sweeper for cache. A non-positive interval selects
// DefaultSweepInterval.
func NewSweeper(cache *Cache, interval time.Duration, onEvict func()) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		cache:    cache,
		interval: interval,
		onEvict:  onEvict,
		done:     make(chan struct{}),
	}
}

// Start performs the eager sweep and launches the background loop. It must
// be called at most once.
func (s *Sweeper) Start() {
	s.sweep()
	s.wg.Add(1)
	go s.run()
}

func (s *Sweeper) run() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.done:
			return
		}
	}
}

func (s *Sweeper) sweep() {
	if s.cache.Sweep() && s.onEvict != nil {
		s.onEvict()
	}
}

// Stop terminates the background loop and waits for it to exit. Idempotent.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
	s.wg.Wait()
}
