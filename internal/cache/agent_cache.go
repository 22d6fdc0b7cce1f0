package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"salescall/internal/model"
)

// AgentCache handles Redis caching of active agent listings per language.
// Entries carry a short TTL; the registry in Mongo stays the source of truth.
type AgentCache interface {
	GetByLanguage(ctx context.Context, language model.LanguageCode) ([]model.AgentProfile, error)
	SetByLanguage(ctx context.Context, language model.LanguageCode, agents []model.AgentProfile) error
	Invalidate(ctx context.Context, language model.LanguageCode) error
}

type agentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAgentCache creates a new agent cache
func NewAgentCache(client *redis.Client) AgentCache {
	return &agentCache{
		client: client,
		ttl:    time.Minute,
	}
}

func (c *agentCache) key(language model.LanguageCode) string {
	if language == "" {
		return "agents:all"
	}
	return fmt.Sprintf("agents:lang:%s", language)
}

// GetByLanguage returns the cached listing, or nil on a miss. The stored
// value is the ordered JSON array as listed from Mongo, so cached reads keep
// the registry's deterministic ordering.
func (c *agentCache) GetByLanguage(ctx context.Context, language model.LanguageCode) ([]model.AgentProfile, error) {
	data, err := c.client.Get(ctx, c.key(language)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var agents []model.AgentProfile
	if err := json.Unmarshal([]byte(data), &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

func (c *agentCache) SetByLanguage(ctx context.Context, language model.LanguageCode, agents []model.AgentProfile) error {
	data, err := json.Marshal(agents)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(language), data, c.ttl).Err()
}

func (c *agentCache) Invalidate(ctx context.Context, language model.LanguageCode) error {
	return c.client.Del(ctx, c.key(language)).Err()
}
