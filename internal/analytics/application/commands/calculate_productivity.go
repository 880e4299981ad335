package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// CalculateProductivityCommand computes and stores the productivity score for
// a calendar day.
type CalculateProductivityCommand struct {
	Date  time.Time
	Notes string
}

// CalculateProductivityHandler handles the CalculateProductivityCommand.
// Given the same stored tasks and moods the computation is deterministic;
// only the explicit date decides which records participate.
type CalculateProductivityHandler struct {
	tasks        domain.TaskRepository
	moods        domain.MoodRepository
	productivity domain.ProductivityRepository
	publisher    eventbus.Publisher
}

// NewCalculateProductivityHandler creates a new CalculateProductivityHandler.
func NewCalculateProductivityHandler(
	tasks domain.TaskRepository,
	moods domain.MoodRepository,
	productivity domain.ProductivityRepository,
	publisher eventbus.Publisher,
) *CalculateProductivityHandler {
	return &CalculateProductivityHandler{
		tasks:        tasks,
		moods:        moods,
		productivity: productivity,
		publisher:    publisher,
	}
}

// Handle computes the day's score and upserts the entry. Recomputing an
// already-scored day overwrites it.
func (h *CalculateProductivityHandler) Handle(ctx context.Context, cmd CalculateProductivityCommand) (*domain.ProductivityEntry, error) {
	day := domain.DayOf(cmd.Date)

	all, err := h.tasks.GetAll(ctx, "")
	if err != nil {
		return nil, err
	}
	completed, total := domain.PartitionTasks(all, day)

	entries, err := h.moods.GetByDateRange(ctx, day, day)
	if err != nil {
		return nil, err
	}

	entry := domain.NewProductivityEntry(day)
	entry.SetTaskMetrics(completed, total)
	entry.SetMood(averageMood(entries))
	entry.Notes = cmd.Notes
	entry.CalculateScore()

	if err := h.productivity.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	// Productivity entries are keyed by date, not by ID.
	event := domain.NewEvent(domain.EventProductivityComputed, uuid.Nil, day)
	if err := eventbus.PublishJSON(ctx, h.publisher, event.RoutingKey, event); err != nil {
		return nil, err
	}
	return entry, nil
}

func averageMood(entries []*domain.MoodEntry) *float64 {
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
