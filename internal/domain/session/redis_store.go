// internal/domain/session/redis_store.go
package session

import (
	"context"
	"fmt"
	"time"

	storeredis "github.com/your-org/storefront/internal/infrastructure/database/redis"
)

const redisKeyPrefix = "storefront:session:"

// RedisStore keeps sessions as JSON documents in Redis, expiring after the TTL
type RedisStore struct {
	client *storeredis.Client
	ttl    time.Duration
}

func NewRedisStore(client *storeredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	var s Session
	found, err := r.client.GetJSON(ctx, redisKeyPrefix+id, &s)
	if err != nil {
		return nil, fmt.Errorf("redis.GetJSON: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	if err := r.client.SetJSON(ctx, redisKeyPrefix+s.ID, s, r.ttl); err != nil {
		return fmt.Errorf("redis.SetJSON: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+id); err != nil {
		return fmt.Errorf("redis.Del: %w", err)
	}
	return nil
}
