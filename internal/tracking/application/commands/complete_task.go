package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// CompleteTaskCommand marks a task completed and records the completion.
type CompleteTaskCommand struct {
	TaskID          uuid.UUID
	DurationMinutes int
	FocusScore      int
}

// CompleteTaskHandler handles the CompleteTaskCommand. Completion writes an
// append-only log record alongside the status change, so per-task history
// survives later edits.
type CompleteTaskHandler struct {
	tasks       domain.TaskRepository
	completions domain.CompletionRepository
	publisher   eventbus.Publisher
}

// NewCompleteTaskHandler creates a new CompleteTaskHandler.
func NewCompleteTaskHandler(
	tasks domain.TaskRepository,
	completions domain.CompletionRepository,
	publisher eventbus.Publisher,
) *CompleteTaskHandler {
	return &CompleteTaskHandler{tasks: tasks, completions: completions, publisher: publisher}
}

// Handle completes the task.
func (h *CompleteTaskHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) (*domain.Task, error) {
	task, err := h.tasks.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}
	if err := task.Complete(); err != nil {
		return nil, err
	}
	if err := h.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	completion := domain.NewTaskCompletion(task.ID, cmd.DurationMinutes, cmd.FocusScore)
	if err := h.completions.Create(ctx, completion); err != nil {
		return nil, err
	}

	event := domain.NewEvent(domain.EventTaskCompleted, task.ID, task.UpdatedAt)
	if err := eventbus.PublishJSON(ctx, h.publisher, event.RoutingKey, event); err != nil {
		return nil, err
	}
	return task, nil
}
