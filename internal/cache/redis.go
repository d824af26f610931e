package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/skiresort/config"
	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

// GetAvailable returns nil, nil on a cache miss.
func (c *RedisCache) GetAvailable(ctx context.Context) ([]domain.Accommodation, error) {
	data, err := c.client.Get(ctx, availableKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var accommodations []domain.Accommodation
	if err := json.Unmarshal(data, &accommodations); err != nil {
		return nil, err
	}
	return accommodations, nil
}

func (c *RedisCache) SetAvailable(ctx context.Context, accommodations []domain.Accommodation) error {
	payload, err := json.Marshal(accommodations)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availableKey(), payload, c.ttl).Err()
}

func (c *RedisCache) InvalidateAvailable(ctx context.Context) error {
	return c.client.Del(ctx, availableKey()).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func availableKey() string {
	return "cache:accommodations:available"
}
