package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/idlewage/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUOW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func putEntry(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, '2026-01-01T00:00:00Z')`, key, value)
	return err
}

func entryExists(t *testing.T, database *sql.DB, key string) bool {
	t.Helper()
	var n int
	err := database.QueryRow(`SELECT COUNT(*) FROM kv_entries WHERE key = ?`, key).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUOW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return putEntry(ctx, tx, "setup", "{}")
	})
	require.NoError(t, err)

	assert.True(t, entryExists(t, database, "setup"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUOW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putEntry(ctx, tx, "activities", "[]"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.False(t, entryExists(t, database, "activities"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUOW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putEntry(ctx, tx, "setup", "{}")
			panic("boom")
		})
	})

	assert.False(t, entryExists(t, database, "setup"))
}

func TestSavepoint_RollbackKeepsOuterWrites(t *testing.T) {
	database, uow := openUOW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putEntry(ctx, tx, "setup", "{}"); err != nil {
			return err
		}
		inner := db.NewSavepointUnitOfWork(tx)
		innerErr := inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			if err := putEntry(ctx, tx, "activities", "[]"); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, innerErr, boom)
		return nil
	})
	require.NoError(t, err)

	assert.True(t, entryExists(t, database, "setup"))
	assert.False(t, entryExists(t, database, "activities"))
}

func TestSavepoint_ReleaseKeepsInnerWrites(t *testing.T) {
	database, uow := openUOW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return db.NewSavepointUnitOfWork(tx).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return putEntry(ctx, tx, "activities", "[]")
		})
	})
	require.NoError(t, err)

	assert.True(t, entryExists(t, database, "activities"))
}
