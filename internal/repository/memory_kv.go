package repository

import (
	"context"
	"fmt"
	"maps"
	"sync"
)

// MemoryKVStore is an in-process KVStore, used in tests.
type MemoryKVStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKVStore creates an empty MemoryKVStore.
func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{values: make(map[string]string)}
}

func (s *MemoryKVStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	return v, nil
}

func (s *MemoryKVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryKVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// Atomically runs fn against a copy of the store and swaps the copy in
// when fn succeeds.
func (s *MemoryKVStore) Atomically(ctx context.Context, fn func(ctx context.Context, kv KVStore) error) error {
	s.mu.RLock()
	staged := &MemoryKVStore{values: maps.Clone(s.values)}
	s.mu.RUnlock()

	if err := fn(ctx, staged); err != nil {
		return err
	}

	s.mu.Lock()
	s.values = staged.values
	s.mu.Unlock()
	return nil
}

// Has reports whether key is present.
func (s *MemoryKVStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

var (
	_ KVStore = (*MemoryKVStore)(nil)
	_ KVStore = (*SQLiteKVStore)(nil)
)
