package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"github.com/ariahq/aria/pkg/observability"
)

// RedisCache implements Cache on top of Redis. All calls run through a
// circuit breaker: once Redis starts failing, the breaker opens and every
// operation reports ErrUnavailable immediately instead of waiting on a dead
// connection. Readers treat that as a miss.
type RedisCache struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *slog.Logger
	metrics observability.Metrics
}

// RedisCacheConfig tunes the circuit breaker.
type RedisCacheConfig struct {
	// FailureThreshold is the number of consecutive failures that opens the
	// breaker.
	FailureThreshold uint32

	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

// DefaultRedisCacheConfig returns production defaults.
func DefaultRedisCacheConfig() RedisCacheConfig {
	return RedisCacheConfig{
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	}
}

// NewRedisCache creates a Redis-backed cache.
func NewRedisCache(client *redis.Client, cfg RedisCacheConfig, logger *slog.Logger, metrics observability.Metrics) *RedisCache {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}

	settings := gobreaker.Settings{
		Name:    "cache",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("cache circuit breaker state changed",
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &RedisCache{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		logger:  logger,
		metrics: metrics,
	}
}

// Get retrieves a value.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.breaker.Execute(func() ([]byte, error) {
		val, err := c.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			// A miss is a successful round trip; it must not trip the
			// breaker.
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return val, nil
	})
	if err != nil {
		c.metrics.Counter("cache.errors", 1, observability.T("op", "get"))
		return nil, ErrUnavailable
	}
	if value == nil {
		c.metrics.Counter("cache.misses", 1)
		return nil, ErrMiss
	}
	c.metrics.Counter("cache.hits", 1)
	return value, nil
}

// Set stores a value with a TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := c.breaker.Execute(func() ([]byte, error) {
		return nil, c.client.Set(ctx, key, value, ttl).Err()
	})
	if err != nil {
		c.metrics.Counter("cache.errors", 1, observability.T("op", "set"))
		return ErrUnavailable
	}
	return nil
}

// Delete removes keys.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := c.breaker.Execute(func() ([]byte, error) {
		return nil, c.client.Del(ctx, keys...).Err()
	})
	if err != nil {
		c.metrics.Counter("cache.errors", 1, observability.T("op", "delete"))
		return ErrUnavailable
	}
	c.metrics.Counter("cache.invalidations", int64(len(keys)))
	return nil
}

// IsAvailable pings the backend.
func (c *RedisCache) IsAvailable(ctx context.Context) bool {
	_, err := c.breaker.Execute(func() ([]byte, error) {
		return nil, c.client.Ping(ctx).Err()
	})
	return err == nil
}
