package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 2 * time.Second

type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to addr. Keys are stored under prefix so several
// deployments can share one Redis database.
func NewRedisCache(addr, prefix string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		prefix: prefix,
	}
}

// Ping checks the connection so startup can fall back to memory.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Warning: redis get %q failed: %v", key, err)
		}
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	return r.client.Set(ctx, r.prefix+key, value, 0).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
