package unlock

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "unlocks.json")
	fs := NewFileStore(path)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []Grant{
		{WorkerID: "w1", UnlockedAt: at},
		{WorkerID: "w2", UnlockedAt: at.Add(time.Hour)},
	}
	require.NoError(t, fs.Save(context.Background(), in))

	out, err := fs.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "w1", out[0].WorkerID)
	assert.True(t, out[0].UnlockedAt.Equal(at))
	assert.Equal(t, "w2", out[1].WorkerID)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()
	fs := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	out, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFileStore_PairEncoding(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "unlocks.json")
	fs := NewFileStore(path)

	at := time.UnixMilli(1772452800000)
	require.NoError(t, fs.Save(context.Background(), []Grant{{WorkerID: "w1", UnlockedAt: at}}))

	// On disk the cache is an association list of [workerId, unixMillis]
	// pairs.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw [][2]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.JSONEq(t, `"w1"`, string(raw[0][0]))
	assert.JSONEq(t, `1772452800000`, string(raw[0][1]))
}

func TestFileStore_CreatesParentDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "unlocks.json")
	fs := NewFileStore(path)
	require.NoError(t, fs.Save(context.Background(), nil))

	out, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}
