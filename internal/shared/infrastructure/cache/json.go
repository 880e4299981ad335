package cache

import (
	"context"
	"encoding/json"
	"time"
)

// GetJSON reads and unmarshals a cached value into v. Returns false on a
// miss, an unavailable backend, or a value that no longer unmarshals (stale
// shape after an upgrade) — all of which mean "recompute".
func GetJSON(ctx context.Context, c Cache, key string, v any) bool {
	data, err := c.Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// SetJSON marshals and stores a value. Failures are ignored: losing a cache
// write costs a future recomputation, nothing else.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, data, ttl)
}
