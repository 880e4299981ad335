package commands

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// UpdateTaskCommand edits a task. Nil fields keep their current value.
type UpdateTaskCommand struct {
	TaskID   uuid.UUID
	Title    *string
	Priority *int
	DueDate  *time.Time
	Reopen   bool
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	tasks     domain.TaskRepository
	publisher eventbus.Publisher
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(tasks domain.TaskRepository, publisher eventbus.Publisher) *UpdateTaskHandler {
	return &UpdateTaskHandler{tasks: tasks, publisher: publisher}
}

// Handle applies the edits. Field validation matches creation: an empty
// title or an out-of-range priority is rejected before anything is stored.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) (*domain.Task, error) {
	task, err := h.tasks.GetByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if title == "" {
			return nil, domain.ErrEmptyTitle
		}
		task.Title = title
	}
	if cmd.Priority != nil {
		if *cmd.Priority < 1 || *cmd.Priority > 10 {
			return nil, domain.ErrPriorityOutOfRange
		}
		task.Priority = *cmd.Priority
	}
	if cmd.DueDate != nil {
		task.WithDueDate(*cmd.DueDate)
	}
	if cmd.Reopen {
		task.Reopen()
	}
	task.UpdatedAt = time.Now()

	if err := h.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	event := domain.NewEvent(domain.EventTaskUpdated, task.ID, task.UpdatedAt)
	if err := eventbus.PublishJSON(ctx, h.publisher, event.RoutingKey, event); err != nil {
		return nil, err
	}
	return task, nil
}
