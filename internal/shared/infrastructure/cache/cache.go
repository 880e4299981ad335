// Package cache provides the TTL key-value cache consumed by the analytics
// read paths. The cache is a memoizing accelerator only: every value in it
// can be recomputed from the repositories, so an unavailable cache degrades
// to recomputation, never to an error.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrMiss is returned by Get when the key is absent or expired.
	ErrMiss = errors.New("cache miss")

	// ErrUnavailable is returned when the backing store cannot be reached.
	// Readers treat it exactly like ErrMiss.
	ErrUnavailable = errors.New("cache unavailable")
)

// Cache is a generic key-value store with per-entry TTL.
type Cache interface {
	// Get retrieves a value. Returns ErrMiss when absent, ErrUnavailable
	// when the backend is down.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A zero TTL stores without expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes keys. Deleting an absent key is not an error.
	Delete(ctx context.Context, keys ...string) error

	// IsAvailable reports whether the backend is reachable.
	IsAvailable(ctx context.Context) bool
}
