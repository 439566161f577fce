// Package dimcache caches image pixel dimensions between runs.
//
// Classifying a folder only needs each image's width and height, but reading
// thousands of headers on every invocation adds up. The cache stores probe
// results keyed by path, file size, and modification time, so a re-scan of an
// unchanged folder never touches the image files. A changed file produces a
// new key, which makes stale entries unreachable; the CLI's cache command
// prunes them.
package dimcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Dimensions is a cached probe result.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Store persists probe results.
type Store interface {
	// Lookup retrieves cached dimensions. The second return reports a hit.
	Lookup(ctx context.Context, key string) (Dimensions, bool, error)

	// Save stores dimensions under key.
	Save(ctx context.Context, key string, d Dimensions) error

	// Delete removes an entry.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Key builds the cache key identifying one file state.
// Size and modification time are part of the key, so editing a file
// invalidates its entry without any explicit eviction.
func Key(path string, size int64, modTime time.Time) string {
	return fmt.Sprintf("%s|%d|%d", path, size, modTime.UnixNano())
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
