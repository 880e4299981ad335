package queries

import (
	"context"
	"time"

	analytics "github.com/ariahq/aria/internal/analytics/domain"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// GetMonthlyAggregateQuery requests a calendar month summary.
type GetMonthlyAggregateQuery struct {
	Year  int
	Month time.Month
}

// GetMonthlyAggregateHandler handles the GetMonthlyAggregateQuery.
type GetMonthlyAggregateHandler struct {
	aggregator *Aggregator
}

// NewGetMonthlyAggregateHandler creates a new GetMonthlyAggregateHandler.
func NewGetMonthlyAggregateHandler(aggregator *Aggregator) *GetMonthlyAggregateHandler {
	return &GetMonthlyAggregateHandler{aggregator: aggregator}
}

// Handle assembles the month. Tasks count by their creation or completion
// falling inside the month; AddDate handles the month length and the
// December rollover.
func (h *GetMonthlyAggregateHandler) Handle(ctx context.Context, query GetMonthlyAggregateQuery) (*analytics.MonthlyAggregate, error) {
	monthStart := time.Date(query.Year, query.Month, 1, 0, 0, 0, 0, time.Local)
	nextMonth := monthStart.AddDate(0, 1, 0)
	monthEnd := nextMonth.AddDate(0, 0, -1)

	tasks, err := h.aggregator.tasks.GetAll(ctx, "")
	if err != nil {
		return nil, err
	}

	month := &analytics.MonthlyAggregate{
		Year:  query.Year,
		Month: query.Month,
	}
	for _, task := range tasks {
		if inMonth(task.CreatedAt, monthStart, nextMonth) {
			month.TasksCreated++
		}
		if task.IsCompleted() && inMonth(task.UpdatedAt, monthStart, nextMonth) {
			month.TasksCompleted++
		}
	}
	if month.TasksCreated > 0 {
		month.CompletionRate = float64(month.TasksCompleted) / float64(month.TasksCreated)
	}

	days, err := h.aggregator.BuildRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	var productivityScores, moodScores []float64
	for _, day := range days {
		month.TotalFocusHours += day.FocusHours
		if day.HasProductivity() {
			productivityScores = append(productivityScores, *day.ProductivityScore)
		}
		if day.HasMood() {
			moodScores = append(moodScores, *day.MoodScore)
		}
	}
	month.AvgProductivity = analytics.MeanOf(productivityScores)
	month.AvgMood = analytics.MeanOf(moodScores)
	return month, nil
}

func inMonth(ts time.Time, monthStart, nextMonth time.Time) bool {
	day := domain.DayOf(ts)
	return !day.Before(monthStart) && day.Before(nextMonth)
}
