package queries

import (
	"context"
	"errors"
	"time"

	"github.com/ariahq/aria/internal/shared/infrastructure/cache"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// GetTodayMoodQuery fetches the most recent mood entry of the current day.
type GetTodayMoodQuery struct{}

// GetTodayMoodHandler handles the GetTodayMoodQuery with a cache-aside read
// path.
type GetTodayMoodHandler struct {
	moods domain.MoodRepository
	cache cache.Cache
	now   func() time.Time
	ttl   time.Duration
}

// NewGetTodayMoodHandler creates a new GetTodayMoodHandler.
func NewGetTodayMoodHandler(moods domain.MoodRepository, c cache.Cache, now func() time.Time, ttl time.Duration) *GetTodayMoodHandler {
	if now == nil {
		now = time.Now
	}
	return &GetTodayMoodHandler{moods: moods, cache: c, now: now, ttl: ttl}
}

// Handle returns today's latest mood entry. (nil, nil) means no mood has
// been logged yet today, which is a valid empty result.
func (h *GetTodayMoodHandler) Handle(ctx context.Context, _ GetTodayMoodQuery) (*domain.MoodEntry, error) {
	key := cache.KeyMoodToday()

	var cached domain.MoodEntry
	if cache.GetJSON(ctx, h.cache, key, &cached) {
		return &cached, nil
	}

	entry, err := h.moods.GetLatestForDay(ctx, h.now())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, h.cache, key, entry, h.ttl)
	return entry, nil
}
