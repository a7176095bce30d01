package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	docKeyPrefix = "docs:" // docs:{owner}:{public id}:{project name}{suffix}
	defaultTTL   = 7 * 24 * time.Hour
)

// RedisCache keeps rendered documents in Redis with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (r *RedisCache) Get(ctx context.Context, owner, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.docKey(owner, key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get document: %w", err)
	}
	return v, true, nil
}

func (r *RedisCache) Put(ctx context.Context, owner string, docs map[string]string) error {
	if len(docs) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for k, v := range docs {
		pipe.Set(ctx, r.docKey(owner, k), v, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store documents: %w", err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, owner string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, r.docKey(owner, k))
	}
	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to delete documents: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) docKey(owner, key string) string {
	return docKeyPrefix + owner + ":" + key
}
