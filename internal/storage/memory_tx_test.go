package storage

import (
	"context"
	"errors"
	"maps"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/MindOfAhmed/DigitalSociety/pkg/domain-errors"
)

type counterStore struct {
	mu   sync.Mutex
	rows map[string]int
}

func newCounterStore() *counterStore { return &counterStore{rows: map[string]int{}} }

func (s *counterStore) Snapshot() func() {
	s.mu.Lock()
	saved := maps.Clone(s.rows)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.rows = saved
		s.mu.Unlock()
	}
}

func (s *counterStore) inc(key string) {
	s.mu.Lock()
	s.rows[key]++
	s.mu.Unlock()
}

func (s *counterStore) get(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows[key]
}

func TestMemoryTxCommits(t *testing.T) {
	store := newCounterStore()
	tx := NewMemoryTx(store)

	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		store.inc("requests")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.get("requests"))
}

func TestMemoryTxRollsBackEveryStore(t *testing.T) {
	records, requests := newCounterStore(), newCounterStore()
	tx := NewMemoryTx(records, requests)
	boom := errors.New("boom")

	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		records.inc("placeholder")
		requests.inc("request")
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, records.get("placeholder"))
	assert.Zero(t, requests.get("request"))
}

func TestMemoryTxRollsBackOnPanic(t *testing.T) {
	store := newCounterStore()
	tx := NewMemoryTx(store)

	assert.Panics(t, func() {
		_ = tx.RunInTx(context.Background(), func(ctx context.Context) error {
			store.inc("row")
			panic("bad")
		})
	})
	assert.Zero(t, store.get("row"))
}

func TestMemoryTxCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMemoryTx().RunInTx(ctx, func(ctx context.Context) error {
		t.Fatal("fn must not run")
		return nil
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
}

func TestMemoryTxAppliesDeadline(t *testing.T) {
	tx := NewMemoryTx().WithTimeout(time.Minute)
	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	})
	assert.NoError(t, err)
}

func TestMemoryTxSerializes(t *testing.T) {
	store := newCounterStore()
	tx := NewMemoryTx(store)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tx.RunInTx(context.Background(), func(ctx context.Context) error {
				if store.get("pending") > 0 {
					return errors.New("already pending")
				}
				store.inc("pending")
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, store.get("pending"))
}
