// Package application exposes the analytics engine as one service facade:
// focus session control, productivity scoring, and the window queries built
// on top of the tracked records.
package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/analytics/application/commands"
	"github.com/ariahq/aria/internal/analytics/application/queries"
	"github.com/ariahq/aria/internal/analytics/application/services"
	analytics "github.com/ariahq/aria/internal/analytics/domain"
	"github.com/ariahq/aria/internal/shared/infrastructure/cache"
	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// Service bundles the analytics command and query handlers.
type Service struct {
	startSession *commands.StartSessionHandler
	endSession   *commands.EndSessionHandler
	calculate    *commands.CalculateProductivityHandler

	daily       *queries.GetDailyAggregateHandler
	weekly      *queries.GetWeeklyAggregateHandler
	monthly     *queries.GetMonthlyAggregateHandler
	trend       *queries.GetTrendHandler
	correlation *queries.GetCorrelationHandler

	focus *services.FocusHoursService
}

// NewService wires the analytics handlers over the given repositories,
// cache, and event bus. The TTLs per cached key family come from
// configuration.
func NewService(
	tasks domain.TaskRepository,
	moods domain.MoodRepository,
	sessions domain.SessionRepository,
	completions domain.CompletionRepository,
	productivity domain.ProductivityRepository,
	c cache.Cache,
	ttl cache.TTLConfig,
	publisher eventbus.Publisher,
	now func() time.Time,
) *Service {
	calculate := commands.NewCalculateProductivityHandler(tasks, moods, productivity, publisher)
	focus := services.NewFocusHoursService(sessions)
	aggregator := queries.NewAggregator(tasks, moods, completions, productivity, focus, calculate)

	return &Service{
		startSession: commands.NewStartSessionHandler(sessions, publisher),
		endSession:   commands.NewEndSessionHandler(sessions, publisher),
		calculate:    calculate,
		daily:        queries.NewGetDailyAggregateHandler(aggregator, c, ttl.Productivity),
		weekly:       queries.NewGetWeeklyAggregateHandler(aggregator),
		monthly:      queries.NewGetMonthlyAggregateHandler(aggregator),
		trend:        queries.NewGetTrendHandler(aggregator, c, now, ttl.Trend),
		correlation:  queries.NewGetCorrelationHandler(aggregator, c, now, ttl.Correlation),
		focus:        focus,
	}
}

// StartFocusSession opens a focus session, optionally bound to a task.
func (s *Service) StartFocusSession(ctx context.Context, taskID *uuid.UUID) (*domain.FocusSession, error) {
	return s.startSession.Handle(ctx, commands.StartSessionCommand{TaskID: taskID})
}

// EndFocusSession closes the open session. A nil session with a nil error
// means nothing was open.
func (s *Service) EndFocusSession(ctx context.Context, notes string) (*domain.FocusSession, error) {
	return s.endSession.Handle(ctx, commands.EndSessionCommand{Notes: notes})
}

// CalculateProductivity computes and stores the score for a day.
func (s *Service) CalculateProductivity(ctx context.Context, date time.Time, notes string) (*domain.ProductivityEntry, error) {
	return s.calculate.Handle(ctx, commands.CalculateProductivityCommand{Date: date, Notes: notes})
}

// GetDailyAggregate returns the aggregate for one day.
func (s *Service) GetDailyAggregate(ctx context.Context, date time.Time) (*analytics.DailyAggregate, error) {
	return s.daily.Handle(ctx, queries.GetDailyAggregateQuery{Date: date})
}

// GetWeeklyAggregate returns the 7-day window starting at weekStart.
func (s *Service) GetWeeklyAggregate(ctx context.Context, weekStart time.Time) (*analytics.WeeklyAggregate, error) {
	return s.weekly.Handle(ctx, queries.GetWeeklyAggregateQuery{WeekStart: weekStart})
}

// GetMonthlyAggregate returns the calendar month summary.
func (s *Service) GetMonthlyAggregate(ctx context.Context, year int, month time.Month) (*analytics.MonthlyAggregate, error) {
	return s.monthly.Handle(ctx, queries.GetMonthlyAggregateQuery{Year: year, Month: month})
}

// GetTrend returns the trailing N-day trend.
func (s *Service) GetTrend(ctx context.Context, days int) (*analytics.Trend, error) {
	return s.trend.Handle(ctx, queries.GetTrendQuery{Days: days})
}

// GetMoodProductivityCorrelation returns the correlation report over the
// trailing N days.
func (s *Service) GetMoodProductivityCorrelation(ctx context.Context, days int) (*analytics.CorrelationReport, error) {
	return s.correlation.Handle(ctx, queries.GetCorrelationQuery{Days: days})
}

// DailyFocusHours returns tracked focus hours for a day.
func (s *Service) DailyFocusHours(ctx context.Context, day time.Time) (float64, error) {
	return s.focus.DailyFocusHours(ctx, day)
}

// WeeklyFocusHours returns tracked focus hours per day for the 7 days
// starting at weekStart, keyed by date (2006-01-02).
func (s *Service) WeeklyFocusHours(ctx context.Context, weekStart time.Time) (map[string]float64, error) {
	return s.focus.WeeklyFocusHours(ctx, weekStart)
}
