package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefix for all limiter counters
const keyPrefix = "finboard"

// attemptKey returns the Redis key for a limiter counter
func attemptKey(key string) string {
	return fmt.Sprintf("%s:attempts:%s", keyPrefix, NormalizeKey(key))
}

// RedisConfig holds Redis connection settings for the limiter
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int
}

// DefaultRedisConfig returns sensible defaults for Redis configuration
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
	}
}

// RedisLimiter is a Redis-backed fixed-window limiter, shared across
// frontend replicas
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
}

// NewRedisLimiter connects to Redis and verifies the connection
func NewRedisLimiter(cfg Config, rcfg RedisConfig) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(rcfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = rcfg.PoolSize
	opts.MinIdleConns = rcfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisLimiterWithClient(client, cfg), nil
}

// NewRedisLimiterWithClient creates a Redis limiter with an existing
// client (for testing)
func NewRedisLimiterWithClient(client *redis.Client, cfg Config) *RedisLimiter {
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultConfig()
	}
	return &RedisLimiter{client: client, cfg: cfg}
}

var _ Limiter = (*RedisLimiter)(nil)

// Close closes the Redis connection
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := attemptKey(key)

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}

	// First attempt in the window starts its expiry
	if count == 1 {
		if err := l.client.Expire(ctx, k, l.cfg.Window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(l.cfg.MaxAttempts), nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, attemptKey(key)).Err()
}
