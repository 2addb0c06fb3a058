package authentication

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const registryKeyPrefix = "viewer:authsession:"

// RedisRegistryClient is the subset of *redis.Client the registry needs.
type RedisRegistryClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Keys(ctx context.Context, pattern string) *redis.StringSliceCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisRegistry shares authentication sessions between instances. Entries
// expire on their own after ttl so a crashed sweeper cannot leak them.
type RedisRegistry struct {
	client RedisRegistryClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisRegistry(ctx context.Context, client RedisRegistryClient, ttl time.Duration, logger *slog.Logger) (*RedisRegistry, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisRegistry{client: client, ttl: ttl, logger: logger}, nil
}

func (r *RedisRegistry) key(code string) string {
	return registryKeyPrefix + code
}

func (r *RedisRegistry) Put(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.key(s.Code), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Get(ctx context.Context, code string) (*Session, error) {
	data, err := r.client.Get(ctx, r.key(code)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisRegistry) Delete(ctx context.Context, code string) error {
	deleted, err := r.client.Del(ctx, r.key(code)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *RedisRegistry) List(ctx context.Context) ([]*Session, error) {
	keys, err := r.client.Keys(ctx, registryKeyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*Session, 0, len(keys))
	for _, key := range keys {
		s, err := r.Get(ctx, key[len(registryKeyPrefix):])
		if errors.Is(err, ErrSessionNotFound) {
			// expired between KEYS and GET
			continue
		}
		if err != nil {
			r.logger.Error("skipping unreadable authentication session", "key", key, "error", err)
			continue
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

func (r *RedisRegistry) Count(ctx context.Context) (int, error) {
	keys, err := r.client.Keys(ctx, registryKeyPrefix+"*").Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return len(keys), nil
}

func (r *RedisRegistry) Close() error {
	return r.client.Close()
}
