package provider

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var CachePrefix string = "CACHE_MANAGER_"

// Cache holds raw response bodies keyed by request URL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func CacheKey(key string) string {
	return CachePrefix + key
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := r.client.Get(ctx, CacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, body []byte) error {
	return r.client.Set(ctx, CacheKey(key), body, r.ttl).Err()
}
