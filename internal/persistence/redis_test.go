package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/supplychain-service/internal/config"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r := NewRedis(config.RedisConfig{Addr: mr.Addr()}, zap.NewNop())
	t.Cleanup(r.Close)
	return r, mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	r, _ := newTestRedis(t)
	ctx := context.Background()

	_, hit, err := r.GetCached(ctx, "search:sql:abc")
	require.NoError(t, err)
	assert.False(t, hit, "fresh key should miss")

	require.NoError(t, r.SetCached(ctx, "search:sql:abc", "SELECT 1;", time.Minute))

	val, hit, err := r.GetCached(ctx, "search:sql:abc")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "SELECT 1;", val)
}

func TestRedisCacheExpiry(t *testing.T) {
	r, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, r.SetCached(ctx, "k", "v", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, hit, err := r.GetCached(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit, "expired key should miss")
}

func TestRedisPing(t *testing.T) {
	r, mr := newTestRedis(t)
	require.NoError(t, r.Ping(context.Background()))

	mr.Close()
	assert.Error(t, r.Ping(context.Background()))
}

func TestRedisNilSafe(t *testing.T) {
	var r *Redis

	_, hit, err := r.GetCached(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, r.SetCached(context.Background(), "k", "v", time.Minute))
	assert.Error(t, r.Ping(context.Background()))
}
