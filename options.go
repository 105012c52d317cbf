package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/kaamsetu/kaamsetu-client/internal/unlock"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization transport wrapper is installed,
// so transport-related options (like debug logging) will be placed underneath
// the API-key wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the API-key wrapper. Do not
// enable this option in production environments: it logs full payloads.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithUnlockTTL overrides the free re-view window (default 24h).
func WithUnlockTTL(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("unlock TTL must be > 0")
		}
		c.unlockTTL = d
		return nil
	}
}

// WithSweepInterval overrides the background sweep cadence (default 60s).
func WithSweepInterval(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("sweep interval must be > 0")
		}
		c.sweepInterval = d
		return nil
	}
}

// WithReconcileDelay overrides how long after an optimistic credit mutation
// the reconciling ledger fetch fires (default 500ms).
func WithReconcileDelay(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("reconcile delay must be > 0")
		}
		c.reconcileDelay = d
		return nil
	}
}

// WithFileUnlockStore persists the unlock cache to the given file path
// instead of the default location under the user cache directory.
func WithFileUnlockStore(path string) Option {
	return func(c *Client) error {
		if path == "" {
			return fmt.Errorf("unlock store path cannot be empty")
		}
		c.store = unlock.NewFileStore(path)
		return nil
	}
}

// WithRedisUnlockStore persists the unlock cache in Redis, for sessions
// that roam across hosts. The connection is verified during New.
func WithRedisUnlockStore(addr string) Option {
	return func(c *Client) error {
		store, err := unlock.NewRedisStore(addr)
		if err != nil {
			return err
		}
		c.store = store
		return nil
	}
}

// WithMemoryUnlockStore keeps the unlock cache in memory only. Unlock state
// will not survive a restart; every worker then needs server confirmation
// again.
func WithMemoryUnlockStore() Option {
	return func(c *Client) error {
		c.store = unlock.NewMemStore()
		return nil
	}
}

// WithDirectoryRateLimit overrides the directory query limiter (default one
// fetch per 500ms with a burst of 2).
func WithDirectoryRateLimit(interval time.Duration, burst int) Option {
	return func(c *Client) error {
		if interval <= 0 || burst <= 0 {
			return fmt.Errorf("directory rate limit requires interval and burst > 0")
		}
		c.limiter = rate.NewLimiter(rate.Every(interval), burst)
		return nil
	}
}

// WithClock injects the time source used for unlock TTL decisions. Intended
// for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		c.now = now
		return nil
	}
}

// WithUnlockExpiryHook registers a callback fired whenever a background
// sweep evicts at least one grant, so dependent UI can re-render.
func WithUnlockExpiryHook(fn func()) Option {
	return func(c *Client) error {
		c.onEvict = fn
		return nil
	}
}
