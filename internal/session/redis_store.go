// internal/session/redis_store.go
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisConfig holds the connection settings for the Redis session backend.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

// NewRedisClient connects to Redis and checks the connection with a ping.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	const op = "session.NewRedisClient"
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return client, nil
}

// RedisStore keeps sessions as expiring keys.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore whose sessions live for ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) TTL() time.Duration { return s.ttl }

func (s *RedisStore) Create(ctx context.Context, userID int64) (string, error) {
	const op = "session.RedisStore.Create"
	token := newToken()
	if err := s.client.Set(ctx, keyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

func (s *RedisStore) Lookup(ctx context.Context, token string) (int64, bool, error) {
	const op = "session.RedisStore.Lookup"
	if token == "" {
		return 0, false, ErrEmptyToken
	}

	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s: corrupt session value: %w", op, err)
	}
	return userID, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	const op = "session.RedisStore.Delete"
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
