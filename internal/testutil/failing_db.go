package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/idlewage/internal/db"
)

// FailOnNthExec wraps a DBTX and injects Err on the Nth ExecContext call,
// counting from 1. Reads pass through untouched, so a store built on it
// hydrates normally and fails at a chosen write.
type FailOnNthExec struct {
	db.DBTX
	FailOn int32
	Err    error

	count atomic.Int32
}

func (f *FailOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if n == f.FailOn {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// Execs returns how many ExecContext calls have been made.
func (f *FailOnNthExec) Execs() int32 {
	return f.count.Load()
}

// FailOnNthExecUoW is a UnitOfWork whose transactions inject Err on the Nth
// ExecContext call made inside them. Each WithinTx counts from 1 again.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &FailOnNthExec{DBTX: tx, FailOn: u.FailOn, Err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}
