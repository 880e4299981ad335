package queries

import (
	"context"
	"time"

	analytics "github.com/ariahq/aria/internal/analytics/domain"
	"github.com/ariahq/aria/internal/shared/infrastructure/cache"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// GetTrendQuery requests the trailing N-day trend, inclusive of today.
type GetTrendQuery struct {
	Days int
}

// GetTrendHandler handles the GetTrendQuery with a cache-aside read path.
type GetTrendHandler struct {
	aggregator *Aggregator
	cache      cache.Cache
	now        func() time.Time
	ttl        time.Duration
}

// NewGetTrendHandler creates a new GetTrendHandler.
func NewGetTrendHandler(aggregator *Aggregator, c cache.Cache, now func() time.Time, ttl time.Duration) *GetTrendHandler {
	if now == nil {
		now = time.Now
	}
	return &GetTrendHandler{aggregator: aggregator, cache: c, now: now, ttl: ttl}
}

// Handle assembles the trend window. Each metric averages only the days that
// carry data for it; the correlation pairs only days carrying both mood and
// productivity.
func (h *GetTrendHandler) Handle(ctx context.Context, query GetTrendQuery) (*analytics.Trend, error) {
	key := cache.KeyTrend(query.Days)

	var cached analytics.Trend
	if cache.GetJSON(ctx, h.cache, key, &cached) {
		return &cached, nil
	}

	today := domain.DayOf(h.now())
	days, err := h.aggregator.BuildRange(ctx, today.AddDate(0, 0, -(query.Days-1)), today)
	if err != nil {
		return nil, err
	}

	trend := buildTrend(query.Days, days)
	cache.SetJSON(ctx, h.cache, key, trend, h.ttl)
	return trend, nil
}

func buildTrend(windowDays int, days []*analytics.DailyAggregate) *analytics.Trend {
	trend := &analytics.Trend{
		Days:  windowDays,
		Daily: days,
	}

	var productivityScores, moodScores, completionRates, focusHours []float64
	var pairedMood, pairedProductivity []float64
	for _, day := range days {
		if day.HasProductivity() {
			productivityScores = append(productivityScores, *day.ProductivityScore)
		}
		if day.TasksPlanned > 0 {
			completionRates = append(completionRates, day.CompletionRate)
		}
		if day.HasMood() {
			moodScores = append(moodScores, *day.MoodScore)
		}
		if day.FocusHours > 0 {
			focusHours = append(focusHours, day.FocusHours)
		}
		if day.HasMood() && day.HasProductivity() {
			pairedMood = append(pairedMood, *day.MoodScore)
			pairedProductivity = append(pairedProductivity, *day.ProductivityScore)
		}
	}

	trend.AvgProductivity = analytics.MeanOf(productivityScores)
	trend.AvgMood = analytics.MeanOf(moodScores)
	trend.AvgCompletionRate = analytics.MeanOf(completionRates)
	trend.AvgFocusHours = analytics.MeanOf(focusHours)
	trend.MoodProductivityCorrelation = analytics.Pearson(pairedMood, pairedProductivity)
	return trend
}
