package storage

import (
	"bytes"
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryRepository keeps values in process memory. Nothing survives a
// restart; it backs in-memory sessions and tests.
type MemoryRepository struct {
	cache *cache.Cache
}

func NewMemoryRepository() *MemoryRepository {
	// no expiration, no janitor goroutine
	return &MemoryRepository{cache: cache.New(cache.NoExpiration, 0)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	if x, found := r.cache.Get(key); found {
		return bytes.Clone(x.([]byte)), nil
	}
	return nil, nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.cache.Set(key, bytes.Clone(value), cache.NoExpiration)
	return nil
}

func (r *MemoryRepository) SeedIfAbsent(_ context.Context, values map[string][]byte) (int, error) {
	written := 0
	for key, value := range values {
		// Add fails when the key already exists.
		if err := r.cache.Add(key, bytes.Clone(value), cache.NoExpiration); err == nil {
			written++
		}
	}
	return written, nil
}
