package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PetCache stores serialized pets by id. A miss is (nil, nil).
type PetCache interface {
	GetByID(ctx context.Context, id int64) ([]byte, error)
	Set(ctx context.Context, id int64, data []byte, ttl time.Duration) error
}

type petCache struct {
	client *RedisClient
	prefix string
}

func NewPetCache(redisClient *RedisClient) PetCache {
	return &petCache{
		client: redisClient,
		prefix: "pet:",
	}
}

func (c *petCache) key(id int64) string {
	return fmt.Sprintf("%s%d", c.prefix, id)
}

func (c *petCache) GetByID(ctx context.Context, id int64) ([]byte, error) {
	data, err := c.client.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // cache miss
		}
		return nil, err
	}
	return data, nil
}

func (c *petCache) Set(ctx context.Context, id int64, data []byte, ttl time.Duration) error {
	return c.client.client.Set(ctx, c.key(id), data, ttl).Err()
}

// NoopPetCache always misses. Used when Redis is disabled.
type NoopPetCache struct{}

func (NoopPetCache) GetByID(ctx context.Context, id int64) ([]byte, error) { return nil, nil }
func (NoopPetCache) Set(ctx context.Context, id int64, data []byte, ttl time.Duration) error {
	return nil
}
