package dimcache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore implements a file-based probe cache for CLI usage.
// Entries are stored as JSON files in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Lookup retrieves cached dimensions for key.
func (s *FileStore) Lookup(ctx context.Context, key string) (Dimensions, bool, error) {
	path := s.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Dimensions{}, false, nil
	}
	if err != nil {
		return Dimensions{}, false, err
	}

	var d Dimensions
	if err := json.Unmarshal(data, &d); err != nil {
		// Invalid cache entry - treat as miss
		_ = os.Remove(path)
		return Dimensions{}, false, nil
	}

	// A probe can never legitimately report a non-positive dimension
	if d.Width <= 0 || d.Height <= 0 {
		_ = os.Remove(path)
		return Dimensions{}, false, nil
	}

	return d, true, nil
}

// Save stores dimensions under key.
func (s *FileStore) Save(ctx context.Context, key string, d Dimensions) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}

	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Delete removes an entry.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for a file store.
func (s *FileStore) Close() error {
	return nil
}

// path converts a cache key to a file path.
// Uses a simple hash-based directory structure to avoid too many files in one dir.
func (s *FileStore) path(key string) string {
	hash := Hash([]byte(key))
	// Use first 2 chars as subdirectory for distribution
	subdir := hash[:2]
	filename := hash[2:] + ".json"
	return filepath.Join(s.dir, subdir, filename)
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
