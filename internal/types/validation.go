package types

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaamsetu/kaamsetu-client/internal/shardqueue"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Executor is the async job queue seam used by the ledger to schedule
// reconciling fetches without importing the executor implementation.
type Executor interface {
	Submit(context.Context, string, shardqueue.Job) error
}

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when the requested worker does not exist.
var ErrNotFound = errors.New("worker not found")

// ErrInsufficientCredits is returned when an unlock is rejected for lack of
// credits, either locally (fast-fail on a zero balance) or by the server.
var ErrInsufficientCredits = errors.New("insufficient credits")

// ValidateIDPresent rejects an empty identifier.
func ValidateIDPresent(id, field string) error {
	if id == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}
