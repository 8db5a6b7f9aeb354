// Package storage provides the transactional boundary wrapped around every
// workflow Submit/Approve/Reject: a snapshotting runner for the in-memory
// stores and a database/sql runner for Postgres.
package storage

import (
	"context"
	"time"

	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
)

// defaultTxTimeout is the maximum duration of one workflow transaction.
const defaultTxTimeout = 5 * time.Second

// withTxDeadline rejects cancelled contexts and applies timeout when ctx has
// no deadline yet.
func withTxDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc, error) {
	if err := ctx.Err(); err != nil {
		return ctx, func() {}, dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if timeout == 0 {
		timeout = defaultTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, cancel, nil
}
