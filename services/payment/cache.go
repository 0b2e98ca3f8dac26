package payment

import (
	"context"
	"time"

	"hotelier/utils"

	"github.com/go-redis/redis/v8"
)

// RedisEventCache implements EventCache with expiring Redis keys.
type RedisEventCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEventCache(client *redis.Client, ttl time.Duration) *RedisEventCache {
	return &RedisEventCache{client: client, ttl: ttl}
}

func (c *RedisEventCache) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := c.client.Exists(ctx, utils.ProcessedEventPrefix+eventID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *RedisEventCache) MarkSeen(ctx context.Context, eventID string) error {
	return c.client.Set(ctx, utils.ProcessedEventPrefix+eventID, time.Now().Unix(), c.ttl).Err()
}
