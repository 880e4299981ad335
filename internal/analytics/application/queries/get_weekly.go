package queries

import (
	"context"
	"time"

	analytics "github.com/ariahq/aria/internal/analytics/domain"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// GetWeeklyAggregateQuery requests the 7-day window starting at WeekStart.
type GetWeeklyAggregateQuery struct {
	WeekStart time.Time
}

// GetWeeklyAggregateHandler handles the GetWeeklyAggregateQuery.
type GetWeeklyAggregateHandler struct {
	aggregator *Aggregator
}

// NewGetWeeklyAggregateHandler creates a new GetWeeklyAggregateHandler.
func NewGetWeeklyAggregateHandler(aggregator *Aggregator) *GetWeeklyAggregateHandler {
	return &GetWeeklyAggregateHandler{aggregator: aggregator}
}

// Handle assembles the week. Averages skip days without data for the metric
// instead of counting them as zero.
func (h *GetWeeklyAggregateHandler) Handle(ctx context.Context, query GetWeeklyAggregateQuery) (*analytics.WeeklyAggregate, error) {
	start := domain.DayOf(query.WeekStart)
	days, err := h.aggregator.BuildRange(ctx, start, start.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}

	week := &analytics.WeeklyAggregate{
		WeekStart: start,
		Days:      days,
	}

	var completionRates, productivityScores, moodScores []float64
	for _, day := range days {
		week.TasksPlanned += day.TasksPlanned
		week.TasksCompleted += day.TasksCompleted
		week.TotalFocusHours += day.FocusHours
		if day.TasksPlanned > 0 {
			completionRates = append(completionRates, day.CompletionRate)
		}
		if day.HasProductivity() {
			productivityScores = append(productivityScores, *day.ProductivityScore)
		}
		if day.HasMood() {
			moodScores = append(moodScores, *day.MoodScore)
		}
	}

	week.AvgDailyFocusHours = week.TotalFocusHours / 7
	week.AvgCompletionRate = analytics.MeanOf(completionRates)
	week.AvgProductivity = analytics.MeanOf(productivityScores)
	week.AvgMood = analytics.MeanOf(moodScores)
	return week, nil
}
