package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config mirrors the environment variables the SDK understands, all under
// the KAAMSETU_ prefix (e.g. KAAMSETU_BASE_URL).
type Config struct {
	BaseURL         string        `envconfig:"BASE_URL" required:"true"`
	APIKey          string        `envconfig:"API_KEY" required:"true"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	UnlockTTL       time.Duration `envconfig:"UNLOCK_TTL" default:"24h"`
	SweepInterval   time.Duration `envconfig:"SWEEP_INTERVAL" default:"60s"`
	ReconcileDelay  time.Duration `envconfig:"RECONCILE_DELAY" default:"500ms"`
	UnlockStorePath string        `envconfig:"UNLOCK_STORE_PATH"`
	RedisAddr       string        `envconfig:"REDIS_ADDR"`
}

// FromEnv reads the SDK configuration from the environment.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("KAAMSETU", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	return &cfg, nil
}

// NewFromEnv constructs a Client from environment configuration. Explicit
// options are applied after the env-derived ones and win on conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithUnlockTTL(cfg.UnlockTTL),
		WithSweepInterval(cfg.SweepInterval),
		WithReconcileDelay(cfg.ReconcileDelay),
	}
	switch {
	case cfg.RedisAddr != "":
		base = append(base, WithRedisUnlockStore(cfg.RedisAddr))
	case cfg.UnlockStorePath != "":
		base = append(base, WithFileUnlockStore(cfg.UnlockStorePath))
	}

	return New(cfg.BaseURL, cfg.APIKey, append(base, opts...)...)
}
