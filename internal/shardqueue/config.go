package shardqueue

import "time"

// Config tunes a ShardExecutor. Zero values are replaced with defaults in
// NewShardExecutor.
type Config struct {
	// Shards is the number of worker goroutines (and queues).
	Shards int
	// QueueSize is the buffered capacity of each shard queue.
	QueueSize int
	// EnqueueTimeout bounds how long Submit blocks on a full shard before
	// returning a QueueFullError.
	EnqueueTimeout time.Duration
	// MaxAttempts caps retries of a failing job, first attempt included.
	MaxAttempts int
	// BaseBackoff is the initial retry interval.
	BaseBackoff time.Duration
	// MaxInterval caps the exponential retry interval.
	MaxInterval time.Duration
	// ErrorHandler, if set, receives job errors that exhausted retries or
	// were classified irrecoverable. It must not block.
	ErrorHandler func(error)
}
