package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"salescall/internal/model"
)

// PreferenceCache handles Redis caching of customer language preferences.
// Confirmations write through so a cached entry never lags a confirm.
type PreferenceCache interface {
	Get(ctx context.Context, customerID string) (*model.CustomerLanguagePreference, error)
	Set(ctx context.Context, pref *model.CustomerLanguagePreference) error
	Invalidate(ctx context.Context, customerID string) error
}

type preferenceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreferenceCache creates a new preference cache
func NewPreferenceCache(client *redis.Client) PreferenceCache {
	return &preferenceCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *preferenceCache) key(customerID string) string {
	return fmt.Sprintf("customer:%s:language", customerID)
}

func (c *preferenceCache) Get(ctx context.Context, customerID string) (*model.CustomerLanguagePreference, error) {
	data, err := c.client.Get(ctx, c.key(customerID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var pref model.CustomerLanguagePreference
	if err := json.Unmarshal([]byte(data), &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

func (c *preferenceCache) Set(ctx context.Context, pref *model.CustomerLanguagePreference) error {
	data, err := json.Marshal(pref)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(pref.CustomerID), data, c.ttl).Err()
}

func (c *preferenceCache) Invalidate(ctx context.Context, customerID string) error {
	return c.client.Del(ctx, c.key(customerID)).Err()
}
