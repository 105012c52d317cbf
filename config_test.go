package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("KAAMSETU_BASE_URL", "http://localhost:8080")
	t.Setenv("KAAMSETU_API_KEY", "sk-env")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	require.Equal(t, 24*time.Hour, cfg.UnlockTTL)
	require.Equal(t, 60*time.Second, cfg.SweepInterval)
	require.Equal(t, 500*time.Millisecond, cfg.ReconcileDelay)
}

func TestFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("KAAMSETU_BASE_URL", "")
	t.Setenv("KAAMSETU_API_KEY", "")

	_, err := FromEnv()
	require.Error(t, err)
}

func TestNewFromEnv_Overrides(t *testing.T) {
	t.Setenv("KAAMSETU_BASE_URL", "http://localhost:8080")
	t.Setenv("KAAMSETU_API_KEY", "sk-env")
	t.Setenv("KAAMSETU_UNLOCK_TTL", "1h")

	c, err := NewFromEnv(WithMemoryUnlockStore())
	require.NoError(t, err)
	defer c.Close()
	require.Equal(t, time.Hour, c.unlockTTL)
}
