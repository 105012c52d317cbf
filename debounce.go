package client

import (
	"sync"
	"time"
)

// DefaultSearchDebounce is the quiet period applied to typed search input
// before a directory re-fetch.
const DefaultSearchDebounce = 500 * time.Millisecond

// Debouncer coalesces a burst of Trigger calls into a single invocation of
// the most recent fn after a quiet period. Use it between search input
// events and SearchWorkers so every keystroke does not hit the directory.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given quiet period. A
// non-positive delay selects DefaultSearchDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, cancelling any previously
// scheduled call. fn runs on a timer goroutine.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
