package repository

import "context"

// KVStore is a string-keyed store of opaque string values.
// Get returns ErrNotFound for a key that was never set or has been deleted.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error

	// Atomically runs fn against a view of the store whose writes are kept
	// only if fn returns nil.
	Atomically(ctx context.Context, fn func(ctx context.Context, kv KVStore) error) error
}
