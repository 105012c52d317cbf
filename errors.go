package client

import (
	"errors"

	"github.com/kaamsetu/kaamsetu-client/internal/shardqueue"
	"github.com/kaamsetu/kaamsetu-client/internal/types"
)

// ErrBackPressure is returned when the client's internal shard queue is full.
var ErrBackPressure = shardqueue.ErrQueueFull

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// ErrClosed is returned when an operation is attempted after Close.
var ErrClosed = shardqueue.ErrExecutorClosed

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	// ErrNotFound is returned when the requested worker does not exist.
	ErrNotFound = types.ErrNotFound

	// ErrInsufficientCredits is returned when an unlock is rejected for
	// lack of credits, locally or by the server. Callers should route the
	// user to the purchase flow; the SDK never retries this.
	ErrInsufficientCredits = types.ErrInsufficientCredits
)

// IsInsufficientCredits reports whether err is a credit rejection.
func IsInsufficientCredits(err error) bool { return errors.Is(err, ErrInsufficientCredits) }
