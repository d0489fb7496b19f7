package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/idlewage/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kvStores returns each KVStore implementation, freshly initialised.
func kvStores(t *testing.T) map[string]KVStore {
	t.Helper()
	return map[string]KVStore{
		"sqlite": NewSQLiteKVStore(testutil.NewTestDB(t)),
		"memory": NewMemoryKVStore(),
	}
}

func TestKVStore_GetMissingKey(t *testing.T) {
	for name, store := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(context.Background(), "setup")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestKVStore_SetThenGet(t *testing.T) {
	for name, store := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "setup", `{"salary":2600}`))

			got, err := store.Get(ctx, "setup")
			require.NoError(t, err)
			assert.Equal(t, `{"salary":2600}`, got)
		})
	}
}

func TestKVStore_SetReplacesValue(t *testing.T) {
	for name, store := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "activities", `[]`))
			require.NoError(t, store.Set(ctx, "activities", `[{"description":"Idle","seconds":60}]`))

			got, err := store.Get(ctx, "activities")
			require.NoError(t, err)
			assert.Equal(t, `[{"description":"Idle","seconds":60}]`, got)
		})
	}
}

func TestKVStore_DeleteRemovesKey(t *testing.T) {
	for name, store := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "activities", `[]`))
			require.NoError(t, store.Delete(ctx, "activities"))

			_, err := store.Get(ctx, "activities")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestKVStore_DeleteMissingKeyIsNoop(t *testing.T) {
	for name, store := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, store.Delete(context.Background(), "nope"))
		})
	}
}

func TestKVStore_KeysAreIndependent(t *testing.T) {
	for name, store := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "setup", "a"))
			require.NoError(t, store.Set(ctx, "activities", "b"))
			require.NoError(t, store.Delete(ctx, "activities"))

			got, err := store.Get(ctx, "setup")
			require.NoError(t, err)
			assert.Equal(t, "a", got)
		})
	}
}

func TestMemoryKVStore_Has(t *testing.T) {
	store := NewMemoryKVStore()
	assert.False(t, store.Has("setup"))
	require.NoError(t, store.Set(context.Background(), "setup", "{}"))
	assert.True(t, store.Has("setup"))
}

func TestSQLiteKVStore_StampsUpdatedAt(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewSQLiteKVStore(database)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "setup", "{}"))

	var updatedAt string
	err := database.QueryRowContext(ctx, `SELECT updated_at FROM kv_entries WHERE key = 'setup'`).Scan(&updatedAt)
	require.NoError(t, err)
	assert.NotEmpty(t, updatedAt)
}

func TestKVStore_AtomicallyCommits(t *testing.T) {
	for name, store := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "setup", `{"salary":1}`))

			err := store.Atomically(ctx, func(ctx context.Context, kv KVStore) error {
				if err := kv.Delete(ctx, "setup"); err != nil {
					return err
				}
				return kv.Set(ctx, "activities", "[]")
			})
			require.NoError(t, err)

			_, err = store.Get(ctx, "setup")
			assert.ErrorIs(t, err, ErrNotFound)
			got, err := store.Get(ctx, "activities")
			require.NoError(t, err)
			assert.Equal(t, "[]", got)
		})
	}
}

func TestKVStore_AtomicallyDiscardsOnError(t *testing.T) {
	boom := errors.New("boom")
	for name, store := range kvStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, "setup", `{"salary":1}`))

			err := store.Atomically(ctx, func(ctx context.Context, kv KVStore) error {
				require.NoError(t, kv.Delete(ctx, "setup"))
				require.NoError(t, kv.Set(ctx, "activities", "[]"))
				return boom
			})
			assert.ErrorIs(t, err, boom)

			got, err := store.Get(ctx, "setup")
			require.NoError(t, err)
			assert.Equal(t, `{"salary":1}`, got)
			_, err = store.Get(ctx, "activities")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSQLiteKVStore_AtomicallyRollsBackFailedWrite(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteKVStore(database).Set(ctx, "setup", `{"salary":1}`))
	require.NoError(t, NewSQLiteKVStore(database).Set(ctx, "activities", "[]"))

	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	store := NewSQLiteKVStoreWith(database, uow)

	err := store.Atomically(ctx, func(ctx context.Context, kv KVStore) error {
		if err := kv.Delete(ctx, "setup"); err != nil {
			return err
		}
		return kv.Delete(ctx, "activities")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	got, err := store.Get(ctx, "setup")
	require.NoError(t, err)
	assert.Equal(t, `{"salary":1}`, got)
}

func TestSQLiteKVStore_NestedAtomicallyUndoesInnerOnly(t *testing.T) {
	store := NewSQLiteKVStore(testutil.NewTestDB(t))
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Atomically(ctx, func(ctx context.Context, kv KVStore) error {
		require.NoError(t, kv.Set(ctx, "setup", "{}"))
		innerErr := kv.Atomically(ctx, func(ctx context.Context, inner KVStore) error {
			require.NoError(t, inner.Set(ctx, "activities", "[]"))
			return boom
		})
		assert.ErrorIs(t, innerErr, boom)
		return nil
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, "setup")
	assert.NoError(t, err)
	_, err = store.Get(ctx, "activities")
	assert.ErrorIs(t, err, ErrNotFound)
}
