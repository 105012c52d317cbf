// Package ledger holds the locally-known credit balance. Consume and TopUp
// mutate it optimistically so the UI reflects a spend before the network
// round trip completes; every mutation schedules a reconciling fetch whose
// authoritative value silently overwrites the local guess.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kaamsetu/kaamsetu-client/internal/job"
	"github.com/kaamsetu/kaamsetu-client/internal/types"
)

// DefaultReconcileDelay is how long after an optimistic mutation the
// reconciling fetch fires.
const DefaultReconcileDelay = 500 * time.Millisecond

// reconcileKey serializes session-wide reconciles (top-ups) that are not
// tied to a specific worker.
const reconcileKey = "ledger"

// Fetcher retrieves the authoritative balance from the ledger service.
type Fetcher func(ctx context.Context) (types.CreditBalance, error)

// Ledger is the session-scoped credit balance. All methods are safe for
// concurrent use.
type Ledger struct {
	mu      sync.Mutex
	bal     types.CreditBalance
	loaded  bool
	cleared bool

	fetch Fetcher
	exec  types.Executor
	delay time.Duration
}

// New builds a ledger. A non-positive delay selects DefaultReconcileDelay.
func New(fetch Fetcher, exec types.Executor, delay time.Duration) *Ledger {
	if delay <= 0 {
		delay = DefaultReconcileDelay
	}
	return &Ledger{fetch: fetch, exec: exec, delay: delay}
}

// Fetch refreshes the balance from the server and overwrites local state
// unconditionally (last authoritative write wins). Completions after Clear
// are dropped so a logged-out session is never resurrected.
func (l *Ledger) Fetch(ctx context.Context) (types.CreditBalance, error) {
	bal, err := l.fetch(ctx)
	if err != nil {
		return types.CreditBalance{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cleared {
		return types.CreditBalance{}, nil
	}
	l.bal = bal
	l.loaded = true
	return l.bal, nil
}

// Balance returns the locally-known balance, which may be an optimistic
// guess awaiting reconciliation.
func (l *Ledger) Balance() types.CreditBalance {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.bal
}

// Remaining returns the locally-known spendable credit count.
func (l *Ledger) Remaining() int {
	return l.Balance().Remaining()
}

// Loaded reports whether at least one authoritative fetch has landed.
func (l *Ledger) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Consume registers a profile view. When alreadyOwned is false the used
// counter is bumped immediately (never past the allowance); when true the
// view was covered by a prior grant and nothing changes locally. Either way
// a reconciling fetch is scheduled on the worker's queue.
func (l *Ledger) Consume(ctx context.Context, workerID string, alreadyOwned bool) error {
	if !alreadyOwned {
		l.mu.Lock()
		if l.bal.Remaining() > 0 {
			l.bal.ViewsUsed++
		}
		l.mu.Unlock()
	}
	return l.scheduleReconcile(ctx, workerID)
}

// TopUp registers a completed credit purchase optimistically and schedules
// the reconciling fetch.
func (l *Ledger) TopUp(ctx context.Context, amount int) error {
	if amount <= 0 {
		return fmt.Errorf("top up amount must be > 0, got %d", amount)
	}
	l.mu.Lock()
	l.bal.ViewsAllowed += amount
	l.mu.Unlock()
	return l.scheduleReconcile(ctx, reconcileKey)
}

// SetAuthoritative applies counters the server returned inline with another
// response (e.g. an unlock decision). Dropped after Clear.
func (l *Ledger) SetAuthoritative(bal types.CreditBalance) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cleared {
		return
	}
	l.bal = bal
	l.loaded = true
}

// Clear wipes the balance at logout. Subsequent fetch completions are
// ignored.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bal = types.CreditBalance{}
	l.loaded = false
	l.cleared = true
}

// scheduleReconcile enqueues a delayed authoritative fetch. The submit
// context is detached from the caller's so a short-lived UI request cannot
// cancel the reconcile.
func (l *Ledger) scheduleReconcile(ctx context.Context, key string) error {
	detached := context.WithoutCancel(ctx)
	j := job.New(func(jobCtx context.Context) error {
		timer := time.NewTimer(l.delay)
		defer timer.Stop()
		select {
		case <-jobCtx.Done():
			return jobCtx.Err()
		case <-timer.C:
		}
		l.mu.Lock()
		cleared := l.cleared
		l.mu.Unlock()
		if cleared {
			return nil
		}
		_, err := l.Fetch(jobCtx)
		return err
	})
	return l.exec.Submit(detached, key, j)
}
