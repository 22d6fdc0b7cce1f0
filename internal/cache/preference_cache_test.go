package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescall/internal/model"
)

func TestPreferenceCacheRoundTrip(t *testing.T) {
	_, rdb := newTestRedis(t)
	c := NewPreferenceCache(rdb)
	ctx := context.Background()

	pref := &model.CustomerLanguagePreference{
		CustomerID:   "c_1",
		LanguageCode: "fr",
		Confirmed:    true,
	}
	require.NoError(t, c.Set(ctx, pref))

	got, err := c.Get(ctx, "c_1")
	require.NoError(t, err)
	assert.Equal(t, pref, got)
}

func TestPreferenceCacheMissAndInvalidate(t *testing.T) {
	_, rdb := newTestRedis(t)
	c := NewPreferenceCache(rdb)
	ctx := context.Background()

	got, err := c.Get(ctx, "c_unknown")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.Set(ctx, &model.CustomerLanguagePreference{CustomerID: "c_1", LanguageCode: "nl"}))
	require.NoError(t, c.Invalidate(ctx, "c_1"))

	got, err = c.Get(ctx, "c_1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
