//go:build integration

package detector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MindOfAhmed/DigitalSociety/pkg/testutil/containers"
)

func TestRedisCache(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	c := NewRedisCache(rc.Client)
	ctx := context.Background()

	_, found, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "abc", []byte("[]"), time.Minute))

	val, found, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("[]"), val)

	ttl, err := rc.Client.TTL(ctx, "faces:abc").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
