package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescall/internal/model"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestAgentCacheRoundTrip(t *testing.T) {
	_, rdb := newTestRedis(t)
	c := NewAgentCache(rdb)
	ctx := context.Background()

	agents := []model.AgentProfile{
		{ID: "a_2", Name: "Jan", SupportedLanguage: "nl", Active: true},
		{ID: "a_1", Name: "Sophie", SupportedLanguage: "fr", Active: true},
	}

	require.NoError(t, c.SetByLanguage(ctx, "nl", agents))

	got, err := c.GetByLanguage(ctx, "nl")
	require.NoError(t, err)
	// Ordering survives the cache unchanged.
	assert.Equal(t, agents, got)
}

func TestAgentCacheMiss(t *testing.T) {
	_, rdb := newTestRedis(t)
	c := NewAgentCache(rdb)

	got, err := c.GetByLanguage(context.Background(), "fr")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAgentCacheExpiry(t *testing.T) {
	mr, rdb := newTestRedis(t)
	c := NewAgentCache(rdb)
	ctx := context.Background()

	require.NoError(t, c.SetByLanguage(ctx, "fr", []model.AgentProfile{{ID: "a_1", Name: "Sophie"}}))

	mr.FastForward(2 * time.Minute)

	got, err := c.GetByLanguage(ctx, "fr")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAgentCacheInvalidate(t *testing.T) {
	_, rdb := newTestRedis(t)
	c := NewAgentCache(rdb)
	ctx := context.Background()

	require.NoError(t, c.SetByLanguage(ctx, "fr", []model.AgentProfile{{ID: "a_1", Name: "Sophie"}}))
	require.NoError(t, c.Invalidate(ctx, "fr"))

	got, err := c.GetByLanguage(ctx, "fr")
	require.NoError(t, err)
	assert.Nil(t, got)
}
