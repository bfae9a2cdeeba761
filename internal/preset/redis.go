package preset

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/logging"
)

func init() {
	redis.SetLogger(&logging.VoidLogger{})
}

// RedisStore keeps the preset in a Redis string key.
type RedisStore struct {
	redis      *redis.Client
	displayURL string
}

// NewRedisStore creates a store configured from a Redis URL.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.MaxRetries = -1
	opts.DialTimeout = 2 * time.Second
	opts.ReadTimeout = 2 * time.Second
	opts.WriteTimeout = 2 * time.Second
	opts.PoolSize = 1

	return &RedisStore{
		redis:      redis.NewClient(opts),
		displayURL: sanitizeRedisURL(redisURL),
	}, nil
}

// AddHook installs a command hook on the underlying client.
func (s *RedisStore) AddHook(h redis.Hook) {
	s.redis.AddHook(h)
}

// DisplayURL returns the Redis URL with any password removed.
func (s *RedisStore) DisplayURL() string {
	return s.displayURL
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.redis.Close()
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context) (Preset, bool, error) {
	raw, err := s.redis.Get(ctx, Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Preset{}, false, nil
	}
	if err != nil {
		return Preset{}, false, fmt.Errorf("load preset: %w", err)
	}
	p, err := Decode(raw)
	if err != nil {
		return Preset{}, false, err
	}
	return p, true, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, p Preset) error {
	b, err := Encode(p)
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, Key, b, 0).Err(); err != nil {
		return fmt.Errorf("save preset: %w", err)
	}
	return nil
}

func sanitizeRedisURL(redisURL string) string {
	parsed, err := url.Parse(redisURL)
	if err != nil {
		return redisURL
	}
	if parsed.User != nil {
		if username := parsed.User.Username(); username == "" {
			parsed.User = nil
		} else {
			parsed.User = url.User(username)
		}
	}
	return parsed.String()
}
