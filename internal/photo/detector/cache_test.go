package detector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c, err := NewMemoryCache(1 << 20)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	ctx := context.Background()

	_, found, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "k", []byte(`[{"pose":{"roll":1}}]`), time.Minute))
	val, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"pose":{"roll":1}}]`), val)
}

func TestTieredCacheBackfillsL1(t *testing.T) {
	l1, l2 := newMapCache(), newMapCache()
	c := NewTieredCache(l1, l2, 30*time.Second)
	ctx := context.Background()

	l2.data["k"] = []byte("v")

	val, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v"), val)
	assert.Equal(t, []byte("v"), l1.data["k"])
	assert.Equal(t, 30*time.Second, l1.lastTTL)
}

func TestTieredCacheWritesBothLevels(t *testing.T) {
	l1, l2 := newMapCache(), newMapCache()
	c := NewTieredCache(l1, l2, time.Second)

	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), time.Hour))
	assert.Equal(t, []byte("v"), l1.data["k"])
	assert.Equal(t, []byte("v"), l2.data["k"])
	assert.Equal(t, time.Hour, l2.lastTTL)
}

func TestTieredCacheMiss(t *testing.T) {
	c := NewTieredCache(newMapCache(), newMapCache(), time.Second)

	_, found, err := c.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
}
