package storage

import "context"

// Repository stores opaque values by key.
type Repository interface {
	// Get returns the stored value, or (nil, nil) if key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// SeedIfAbsent writes every key in values that is not stored yet and
	// leaves existing keys untouched. It reports how many keys were written.
	SeedIfAbsent(ctx context.Context, values map[string][]byte) (int, error)
}
