package commands

import (
	"context"
	"time"

	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Title    string
	Priority int
	DueDate  *time.Time
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	tasks     domain.TaskRepository
	publisher eventbus.Publisher
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(tasks domain.TaskRepository, publisher eventbus.Publisher) *CreateTaskHandler {
	return &CreateTaskHandler{tasks: tasks, publisher: publisher}
}

// Handle creates the task and publishes its write event.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*domain.Task, error) {
	task, err := domain.NewTask(cmd.Title, cmd.Priority)
	if err != nil {
		return nil, err
	}
	if cmd.DueDate != nil {
		task.WithDueDate(*cmd.DueDate)
	}

	if err := h.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	event := domain.NewEvent(domain.EventTaskCreated, task.ID, task.CreatedAt)
	if err := eventbus.PublishJSON(ctx, h.publisher, event.RoutingKey, event); err != nil {
		return nil, err
	}
	return task, nil
}
