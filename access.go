package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kaamsetu/kaamsetu-client/internal/api"
	"github.com/kaamsetu/kaamsetu-client/internal/job"
	"github.com/kaamsetu/kaamsetu-client/internal/types"
	"github.com/kaamsetu/kaamsetu-client/internal/unlock"
)

// ViewWorker mediates a profile view attempt for workerID.
//
// A still-valid local unlock grant is served with no network call and no
// credit spend (AccessFreeReview, Profile nil). A known-zero balance is
// rejected locally with ErrInsufficientCredits before any network call.
// Otherwise the server makes the authoritative decision: it alone knows
// whether this worker is covered by a grant from a prior session, and it
// alone decrements the server-side balance. The unlock cache and credit
// ledger are updated together in the same response handler, so the UI can
// never observe "unlocked but still charged" or the reverse within one
// attempt.
//
// Attempts for the same worker are serialized through the internal shard
// queue; their optimistic updates and reconciling fetches cannot interleave.
func (c *Client) ViewWorker(ctx context.Context, workerID string) (*AccessResult, error) {
	if err := types.ValidateIDPresent(workerID, "workerId"); err != nil {
		return nil, err
	}
	logger := log.With().Str("attempt", uuid.NewString()).Str("worker", workerID).Logger()

	// Lazy sweep first: an expired record must be removed before any consume
	// attempt so the server is re-invoked instead of trusting a stale grant.
	c.unlocks.Sweep()
	if left, ok := c.unlocks.Remaining(workerID); ok {
		logger.Debug().Dur("free_remaining", left).Msg("profile view served from unlock cache")
		unlocksTotal.WithLabelValues("free").Inc()
		return &AccessResult{Outcome: AccessFreeReview, FreeRemaining: left}, nil
	}

	// Fast-fail on a known-zero balance. A balance that was never fetched is
	// not known-zero: fetch it first, and on failure defer to the server.
	if !c.ledger.Loaded() {
		if _, err := c.ledger.Fetch(ctx); err != nil {
			logger.Debug().Err(err).Msg("balance unknown, deferring to server")
		}
	}
	if c.ledger.Loaded() && c.ledger.Remaining() == 0 {
		rejectionsTotal.WithLabelValues("local").Inc()
		return nil, fmt.Errorf("view worker %s: %w", workerID, ErrInsufficientCredits)
	}

	var (
		res  *AccessResult
		vErr error
	)
	done := make(chan struct{})
	j := job.New(func(jobCtx context.Context) error {
		defer close(done)
		res, vErr = c.unlockWorker(jobCtx, workerID, logger)
		return nil
	})
	if err := c.exec.Submit(ctx, workerID, j); err != nil {
		return nil, err
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}
	return res, vErr
}

// unlockWorker runs on the worker's shard: server call, then the joint
// cache + ledger update.
func (c *Client) unlockWorker(ctx context.Context, workerID string, logger zerolog.Logger) (*AccessResult, error) {
	vr, err := api.ViewWorker(ctx, c.http, c.baseURL, workerID)
	if err != nil {
		if errors.Is(err, ErrInsufficientCredits) {
			rejectionsTotal.WithLabelValues("server").Inc()
		}
		return nil, err
	}

	// The local window always restarts at now. On the "already viewed"
	// recovery path the server does not transmit its original grant time,
	// so a worker unlocked 23h ago gets a fresh 24h local window.
	c.unlocks.Set(workerID)
	if err := c.ledger.Consume(ctx, workerID, vr.AlreadyViewed); err != nil {
		logger.Warn().Err(err).Msg("reconciling fetch not scheduled")
	}
	if vr.ViewsAllowed > 0 || vr.ViewsUsed > 0 {
		c.ledger.SetAuthoritative(CreditBalance{ViewsAllowed: vr.ViewsAllowed, ViewsUsed: vr.ViewsUsed})
	}

	outcome := AccessFreshUnlock
	label := "fresh"
	if vr.AlreadyViewed {
		outcome = AccessRestored
		label = "restored"
	}
	unlocksTotal.WithLabelValues(label).Inc()
	left, _ := c.unlocks.Remaining(workerID)
	logger.Debug().Str("outcome", string(outcome)).Msg("profile unlocked")

	return &AccessResult{Outcome: outcome, Profile: &vr.Worker, FreeRemaining: left}, nil
}

// UnlockRemaining reports the formatted free re-view window for workerID
// ("42m" under an hour, "23h" otherwise), or false when no valid grant
// exists.
func (c *Client) UnlockRemaining(workerID string) (string, bool) {
	left, ok := c.unlocks.Remaining(workerID)
	if !ok {
		return "", false
	}
	return unlock.FormatRemaining(left), true
}
