package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	txcontext "github.com/MindOfAhmed/DigitalSociety/pkg/platform/tx"
)

// PostgresTx runs fn inside one sql.Tx threaded through the context so every
// store call joins it.
type PostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresTx(db *sql.DB, timeout time.Duration) *PostgresTx {
	return &PostgresTx{db: db, timeout: timeout}
}

func (t *PostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, nested := txcontext.From(ctx); nested {
		return fn(ctx)
	}

	ctx, cancel, err := withTxDeadline(ctx, t.timeout)
	defer cancel()
	if err != nil {
		return err
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
