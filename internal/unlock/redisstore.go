package unlock

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey holds the serialized grant list when no key is configured.
const DefaultRedisKey = "kaamsetu:client:unlocks"

// RedisStore keeps the grant list under a single Redis key, for deployments
// where the client session roams across hosts.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to addr and verifies the connection.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisStore{client: client, key: DefaultRedisKey}, nil
}

// NewRedisStoreWithClient wraps an existing client. An empty key selects
// DefaultRedisKey.
func NewRedisStoreWithClient(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// Load reads the grant list. A missing key is an empty cache.
func (r *RedisStore) Load(ctx context.Context) ([]Grant, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read unlock store: %w", err)
	}
	var grants []Grant
	if err := json.Unmarshal(data, &grants); err != nil {
		return nil, fmt.Errorf("decode unlock store: %w", err)
	}
	return grants, nil
}

// Save replaces the stored grant list.
func (r *RedisStore) Save(ctx context.Context, grants []Grant) error {
	if grants == nil {
		grants = []Grant{}
	}
	data, err := json.Marshal(grants)
	if err != nil {
		return fmt.Errorf("encode unlock store: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write unlock store: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (r *RedisStore) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
