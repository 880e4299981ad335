package queries

import (
	"context"
	"errors"
	"time"

	"github.com/ariahq/aria/internal/analytics/application/commands"
	"github.com/ariahq/aria/internal/analytics/application/services"
	analytics "github.com/ariahq/aria/internal/analytics/domain"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// ProductivityCalculator computes and stores a day's productivity entry.
// The command handler satisfies this; queries go through it so an on-demand
// computation still publishes its write event.
type ProductivityCalculator interface {
	Handle(ctx context.Context, cmd commands.CalculateProductivityCommand) (*domain.ProductivityEntry, error)
}

// Aggregator assembles per-day read models. Window queries share it so
// weekly, monthly, and trend views are all recompositions of the same unit.
type Aggregator struct {
	tasks        domain.TaskRepository
	moods        domain.MoodRepository
	completions  domain.CompletionRepository
	productivity domain.ProductivityRepository
	focus        *services.FocusHoursService
	calculator   ProductivityCalculator
}

// NewAggregator creates a new Aggregator.
func NewAggregator(
	tasks domain.TaskRepository,
	moods domain.MoodRepository,
	completions domain.CompletionRepository,
	productivity domain.ProductivityRepository,
	focus *services.FocusHoursService,
	calculator ProductivityCalculator,
) *Aggregator {
	return &Aggregator{
		tasks:        tasks,
		moods:        moods,
		completions:  completions,
		productivity: productivity,
		focus:        focus,
		calculator:   calculator,
	}
}

// BuildDay assembles the day's aggregate. With computeIfAbsent the missing
// productivity entry is calculated and stored; without it the day simply has
// no productivity data. Window queries pass false so scanning a range never
// materializes score-zero entries for empty days.
func (a *Aggregator) BuildDay(ctx context.Context, date time.Time, computeIfAbsent bool) (*analytics.DailyAggregate, error) {
	day := domain.DayOf(date)
	entry, err := a.ProductivityEntry(ctx, day, computeIfAbsent)
	if err != nil {
		return nil, err
	}
	return a.ComposeDay(ctx, day, entry)
}

// ProductivityEntry fetches the day's stored entry, computing and persisting
// it first when computeIfAbsent is set. A nil entry with a nil error means
// the day has no score.
func (a *Aggregator) ProductivityEntry(ctx context.Context, day time.Time, computeIfAbsent bool) (*domain.ProductivityEntry, error) {
	entry, err := a.productivity.GetByDate(ctx, domain.DayOf(day))
	if errors.Is(err, domain.ErrNotFound) {
		if !computeIfAbsent {
			return nil, nil
		}
		return a.calculator.Handle(ctx, commands.CalculateProductivityCommand{Date: day})
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ComposeDay assembles the aggregate from the live stores. Task counts, mood,
// focus hours, and completion averages are always read fresh; the entry
// contributes only the score. This keeps window days whose score was never
// materialized counting their tasks, and keeps mood and session writes
// visible without invalidating the score's cache key.
func (a *Aggregator) ComposeDay(ctx context.Context, date time.Time, entry *domain.ProductivityEntry) (*analytics.DailyAggregate, error) {
	day := domain.DayOf(date)

	tasks, err := a.tasks.GetAll(ctx, "")
	if err != nil {
		return nil, err
	}
	completed, total := domain.PartitionTasks(tasks, day)

	moodEntries, err := a.moods.GetByDateRange(ctx, day, day)
	if err != nil {
		return nil, err
	}

	focusHours, err := a.focus.DailyFocusHours(ctx, day)
	if err != nil {
		return nil, err
	}

	completions, err := a.completions.GetByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	agg := &analytics.DailyAggregate{
		Date:           day,
		TasksPlanned:   total,
		TasksCompleted: completed,
		FocusHours:     focusHours,
		MoodScore:      averageMoodScore(moodEntries),
	}
	if total > 0 {
		agg.CompletionRate = float64(completed) / float64(total)
	}
	agg.AvgCompletionFocus, agg.AvgCompletionMinutes = completionAverages(completions)
	if entry != nil {
		score := entry.Score
		agg.ProductivityScore = &score
	}
	return agg, nil
}

// BuildRange assembles aggregates for each day in [start, end], oldest first,
// without materializing missing productivity entries.
func (a *Aggregator) BuildRange(ctx context.Context, start, end time.Time) ([]*analytics.DailyAggregate, error) {
	var out []*analytics.DailyAggregate
	for day := domain.DayOf(start); !day.After(domain.DayOf(end)); day = day.AddDate(0, 0, 1) {
		agg, err := a.BuildDay(ctx, day, false)
		if err != nil {
			return nil, err
		}
		out = append(out, agg)
	}
	return out, nil
}

func completionAverages(completions []*domain.TaskCompletion) (focus, minutes *float64) {
	var focusScores, durations []float64
	for _, c := range completions {
		if c.FocusScore > 0 {
			focusScores = append(focusScores, float64(c.FocusScore))
		}
		if c.DurationMinutes > 0 {
			durations = append(durations, float64(c.DurationMinutes))
		}
	}
	return analytics.MeanOf(focusScores), analytics.MeanOf(durations)
}

func averageMoodScore(entries []*domain.MoodEntry) *float64 {
	if len(entries) == 0 {
		return nil
	}
	var sum float64
	for _, e := range entries {
		sum += float64(e.Score)
	}
	avg := sum / float64(len(entries))
	return &avg
}
