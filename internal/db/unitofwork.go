package db

import (
	"context"
	"database/sql"
	"fmt"
)

// UnitOfWork runs a group of statements so that they all land or none do.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

// SQLiteUnitOfWork opens a database/sql transaction per call.
type SQLiteUnitOfWork struct {
	db *sql.DB
}

// NewSQLiteUnitOfWork creates a UnitOfWork over conn.
func NewSQLiteUnitOfWork(conn *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: conn}
}

// WithinTx commits when fn returns nil and rolls back on an error or panic.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	return run(ctx, tx, fn, tx.Rollback, tx.Commit)
}

// savepointName is reused for every level; SQLite resolves a name to the
// innermost open savepoint.
const savepointName = "kv_atomic"

// SavepointUnitOfWork nests units of work inside an already open
// transaction using SQLite savepoints. A failed inner unit undoes only its
// own writes.
type SavepointUnitOfWork struct {
	tx DBTX
}

// NewSavepointUnitOfWork creates a UnitOfWork bound to the open transaction tx.
func NewSavepointUnitOfWork(tx DBTX) *SavepointUnitOfWork {
	return &SavepointUnitOfWork{tx: tx}
}

func (u *SavepointUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	if _, err := u.tx.ExecContext(ctx, "SAVEPOINT "+savepointName); err != nil {
		return fmt.Errorf("opening savepoint: %w", err)
	}
	release := func() error {
		_, err := u.tx.ExecContext(ctx, "RELEASE "+savepointName)
		return err
	}
	rollback := func() error {
		if _, err := u.tx.ExecContext(ctx, "ROLLBACK TO "+savepointName); err != nil {
			return err
		}
		return release()
	}
	return run(ctx, u.tx, fn, rollback, release)
}

// run calls fn on tx, then commits on success and rolls back on an error
// or panic. The panic is re-raised after the rollback.
func run(ctx context.Context, tx DBTX, fn func(ctx context.Context, tx DBTX) error, rollback, commit func() error) error {
	defer func() {
		if p := recover(); p != nil {
			_ = rollback()
			panic(p)
		}
	}()

	if fnErr := fn(ctx, tx); fnErr != nil {
		if rbErr := rollback(); rbErr != nil {
			return fmt.Errorf("rolling back: %v (after: %w)", rbErr, fnErr)
		}
		return fnErr
	}
	if err := commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
