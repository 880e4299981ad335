package cache

import (
	"context"
	"time"
)

// NoopCache is used when caching is disabled. Every read is a miss and every
// write succeeds silently, so callers always recompute.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, ErrMiss }

func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (NoopCache) IsAvailable(ctx context.Context) bool { return false }
