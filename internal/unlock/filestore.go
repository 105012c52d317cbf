package unlock

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the grant list as a single JSON file, the desktop
// analog of the browser's localStorage key.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path. The parent directory is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the grant list. A missing file is an empty cache, not an error.
func (f *FileStore) Load(ctx context.Context) ([]Grant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
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

// Save atomically replaces the stored grant list via a temp-file rename.
func (f *FileStore) Save(ctx context.Context, grants []Grant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if grants == nil {
		grants = []Grant{}
	}
	data, err := json.Marshal(grants)
	if err != nil {
		return fmt.Errorf("encode unlock store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create unlock store dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write unlock store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace unlock store: %w", err)
	}
	return nil
}
