package client

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/kaamsetu/kaamsetu-client/internal/api"
	"github.com/kaamsetu/kaamsetu-client/internal/ledger"
	"github.com/kaamsetu/kaamsetu-client/internal/shardqueue"
	"github.com/kaamsetu/kaamsetu-client/internal/types"
	"github.com/kaamsetu/kaamsetu-client/internal/unlock"
)

// Errors moved to errors.go

// --------------------------------------------------------------------
// (Functional options moved to options.go)
// --------------------------------------------------------------------

// Executor abstraction lives in executor.go

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the session-scoped entry point for worker discovery and
// profile entitlements. It owns the credit ledger, the unlock cache with
// its background sweeper, and the per-worker job queue; all of them are
// torn down by Close and cleared by Logout.
type Client struct {
	baseURL string
	http    *http.Client
	exec    executor
	apiKey  string // API key for session authentication (must be explicitly configured)

	unlocks *unlock.Cache
	sweeper *unlock.Sweeper
	ledger  *ledger.Ledger
	limiter *rate.Limiter

	// construction knobs, fixed once New returns
	unlockTTL      time.Duration
	sweepInterval  time.Duration
	reconcileDelay time.Duration
	store          unlock.Store
	now            func() time.Time
	onEvict        func()

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client with the specified baseURL and apiKey.
// Additional options can be provided via functional arguments.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}
	if c.limiter == nil {
		// Complements the UI-side input debounce: directory fetches are
		// capped even if a caller skips debouncing.
		c.limiter = rate.NewLimiter(rate.Every(500*time.Millisecond), 2)
	}
	if c.store == nil {
		c.store = unlock.NewFileStore(defaultStorePath())
	}

	// Wrap HTTP transport to automatically add Authorization header
	c.wrapTransportWithAPIKey()

	c.unlocks = unlock.NewCache(c.store, c.unlockTTL, c.now)
	loadCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.unlocks.Load(loadCtx); err != nil {
		log.Warn().Err(err).Msg("unlock store unavailable, starting with an empty in-memory cache")
	}
	c.sweeper = unlock.NewSweeper(c.unlocks, c.sweepInterval, c.onEvict)
	c.sweeper.Start()

	c.ledger = ledger.New(func(ctx context.Context) (types.CreditBalance, error) {
		return api.GetSubscriptionStatus(ctx, c.http, c.baseURL)
	}, c.exec, c.reconcileDelay)

	return c, nil
}

// wrapTransportWithAPIKey wraps the HTTP client's transport to automatically
// add the Authorization header to all requests using the configured API key.
func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport wraps an http.RoundTripper to automatically add Authorization header
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	return t.base.RoundTrip(cloned)
}

// Close stops the background sweeper and executor. Safe to call multiple
// times. In-memory session state survives Close; use Logout to clear it.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.sweeper != nil {
		c.sweeper.Stop()
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// Logout clears the credit ledger and the unlock cache (including its
// durable mirror), then tears the client down. Responses from calls still
// in flight are dropped rather than resurrecting cleared state.
func (c *Client) Logout() error {
	if c.ledger != nil {
		c.ledger.Clear()
	}
	if c.unlocks != nil {
		c.unlocks.Clear()
	}
	return c.Close()
}

// AwaitReconciled blocks until all previously submitted jobs for the given
// workerID — unlock attempts and their reconciling ledger fetches — have
// been executed. It works by submitting a no-op job and waiting for it to
// run, thereby guaranteeing FIFO ordering has flushed.
func (c *Client) AwaitReconciled(ctx context.Context, workerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	j := shardqueue.JobFunc(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, workerID, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// newDefaultExecutor constructs the shardqueue executor with sane defaults.
func newDefaultExecutor() *shardqueue.ShardExecutor {
	cfg := shardqueue.Config{Shards: 4, QueueSize: 1000}
	return shardqueue.NewShardExecutor(cfg)
}

// defaultStorePath places the unlock store in the user cache directory.
func defaultStorePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".kaamsetu-unlocks.json"
	}
	return filepath.Join(dir, "kaamsetu", "unlocks.json")
}
