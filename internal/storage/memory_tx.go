package storage

import (
	"context"
	"sync"
	"time"

	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
)

// Snapshotter is an in-memory store that can roll back to a saved copy.
type Snapshotter interface {
	Snapshot() (restore func())
}

// MemoryTx serializes transactions with one lock and restores every
// participating store when fn fails or panics.
type MemoryTx struct {
	mu      sync.Mutex
	stores  []Snapshotter
	timeout time.Duration
}

func NewMemoryTx(stores ...Snapshotter) *MemoryTx {
	return &MemoryTx{stores: stores}
}

// WithTimeout overrides the default transaction timeout.
func (t *MemoryTx) WithTimeout(d time.Duration) *MemoryTx {
	t.timeout = d
	return t
}

func (t *MemoryTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel, err := withTxDeadline(ctx, t.timeout)
	defer cancel()
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Check again after acquiring lock
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	restores := make([]func(), 0, len(t.stores))
	for _, s := range t.stores {
		restores = append(restores, s.Snapshot())
	}
	rollback := func() {
		for _, restore := range restores {
			restore()
		}
	}

	defer func() {
		if r := recover(); r != nil {
			rollback()
			panic(r)
		}
	}()

	if err := fn(ctx); err != nil {
		rollback()
		return err
	}
	return nil
}
