package queries

import (
	"context"
	"time"

	analytics "github.com/ariahq/aria/internal/analytics/domain"
	"github.com/ariahq/aria/internal/shared/infrastructure/cache"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// GetDailyAggregateQuery requests the aggregate for one calendar day.
type GetDailyAggregateQuery struct {
	Date time.Time
}

// GetDailyAggregateHandler handles the GetDailyAggregateQuery with a
// cache-aside read path. A missing productivity entry is computed on demand.
type GetDailyAggregateHandler struct {
	aggregator *Aggregator
	cache      cache.Cache
	ttl        time.Duration
}

// NewGetDailyAggregateHandler creates a new GetDailyAggregateHandler.
func NewGetDailyAggregateHandler(aggregator *Aggregator, c cache.Cache, ttl time.Duration) *GetDailyAggregateHandler {
	return &GetDailyAggregateHandler{aggregator: aggregator, cache: c, ttl: ttl}
}

// Handle returns the day's aggregate. Only the productivity entry is cached
// under productivity:{date}; mood, task counts, and focus hours are read
// fresh on every call, so mood and session writes are visible without that
// key appearing in their invalidation sets.
func (h *GetDailyAggregateHandler) Handle(ctx context.Context, query GetDailyAggregateQuery) (*analytics.DailyAggregate, error) {
	day := domain.DayOf(query.Date)
	key := cache.KeyProductivity(day)

	var cached domain.ProductivityEntry
	if cache.GetJSON(ctx, h.cache, key, &cached) {
		return h.aggregator.ComposeDay(ctx, day, &cached)
	}

	entry, err := h.aggregator.ProductivityEntry(ctx, day, true)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		cache.SetJSON(ctx, h.cache, key, entry, h.ttl)
	}
	return h.aggregator.ComposeDay(ctx, day, entry)
}
