package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"todo-auth-service/internal/domain/entities"
)

const listKeyPrefix = "todo:list:"

// Client is the subset of redis commands the cache needs. *redis.Client
// satisfies it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// TodoCache caches per-user todo lists in Redis. A nil *TodoCache disables
// caching entirely; every method is nil-safe.
type TodoCache struct {
	rdb Client
	ttl time.Duration
}

func NewTodoCache(rdb Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for userId, or nil on miss.
func (c *TodoCache) GetList(ctx context.Context, userId uuid.UUID) ([]*entities.Todo, error) {
	if c == nil {
		return nil, nil
	}
	b, err := c.rdb.Get(ctx, listKeyPrefix+userId.String()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []*entities.Todo
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *TodoCache) SetList(ctx context.Context, userId uuid.UUID, list []*entities.Todo) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKeyPrefix+userId.String(), b, c.ttl).Err()
}

// Invalidate drops the cached list for userId after any write.
func (c *TodoCache) Invalidate(ctx context.Context, userId uuid.UUID) error {
	if c == nil {
		return nil
	}
	return c.rdb.Del(ctx, listKeyPrefix+userId.String()).Err()
}
