package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "simulator:"

// RedisCounterStore shares counters between replicas through Redis.
type RedisCounterStore struct {
	client redis.UniversalClient
}

func NewRedisCounterStore(addr, password string, db int) *RedisCounterStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisCounterStoreFromClient(rdb)
}

func NewRedisCounterStoreFromClient(client redis.UniversalClient) *RedisCounterStore {
	return &RedisCounterStore{client: client}
}

// Increment bumps the counter and makes sure it carries a TTL. The first
// hit of a window sets it; later hits check for a key left without one by a
// failed EXPIRE, so a window always ends.
func (r *RedisCounterStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	key = keyPrefix + key

	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}

	if n > 1 {
		ttl, err := r.client.TTL(ctx, key).Result()
		if err != nil {
			return n, fmt.Errorf("ttl %s: %w", key, err)
		}
		// -1: key exists with no expiry
		if ttl != -1 {
			return n, nil
		}
	}

	if err := r.client.Expire(ctx, key, window).Err(); err != nil {
		return n, fmt.Errorf("expire %s: %w", key, err)
	}
	return n, nil
}

func (r *RedisCounterStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCounterStore) Close() error {
	return r.client.Close()
}
