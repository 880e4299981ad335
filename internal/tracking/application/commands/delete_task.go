package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// DeleteTaskCommand removes a task.
type DeleteTaskCommand struct {
	TaskID uuid.UUID
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	tasks     domain.TaskRepository
	publisher eventbus.Publisher
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(tasks domain.TaskRepository, publisher eventbus.Publisher) *DeleteTaskHandler {
	return &DeleteTaskHandler{tasks: tasks, publisher: publisher}
}

// Handle deletes the task and publishes its write event.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
	if err := h.tasks.Delete(ctx, cmd.TaskID); err != nil {
		return err
	}

	event := domain.NewEvent(domain.EventTaskDeleted, cmd.TaskID, time.Now())
	return eventbus.PublishJSON(ctx, h.publisher, event.RoutingKey, event)
}
