package dimcache

import "context"

// NullStore is a no-op store that never caches anything.
// Useful for testing or when caching should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return &NullStore{}
}

// Lookup always returns a miss.
func (s *NullStore) Lookup(ctx context.Context, key string) (Dimensions, bool, error) {
	return Dimensions{}, false, nil
}

// Save does nothing.
func (s *NullStore) Save(ctx context.Context, key string, d Dimensions) error {
	return nil
}

// Delete does nothing.
func (s *NullStore) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (s *NullStore) Close() error {
	return nil
}

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
