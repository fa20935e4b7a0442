package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the session in Redis so the console survives
// restarts within the credential's 7-day window.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "console:session"}
}

func (s *RedisStore) tokenKey() string { return s.prefix + ":token" }
func (s *RedisStore) roleKey() string  { return s.prefix + ":role" }

func (s *RedisStore) Set(ctx context.Context, token, role string) error {
	if err := s.client.Set(ctx, s.tokenKey(), token, TTL).Err(); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	if err := s.client.Set(ctx, s.roleKey(), role, TTL).Err(); err != nil {
		return fmt.Errorf("store session role: %w", err)
	}
	return nil
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.tokenKey())
}

func (s *RedisStore) Role(ctx context.Context) (string, error) {
	return s.get(ctx, s.roleKey())
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.tokenKey(), s.roleKey()).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return val, nil
}

// RedisConfig carries the connection settings for the session backend.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	URL      string
}

// NewRedisClient connects a Redis client and verifies the connection.
func NewRedisClient(cfg RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	// Use a Redis URL if provided (for production deployments)
	if cfg.URL != "" {
		parsedOpts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsedOpts
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Successfully connected to Redis at %s", opts.Addr)
	return client, nil
}
