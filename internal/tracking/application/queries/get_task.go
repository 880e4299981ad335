package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/shared/infrastructure/cache"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// GetTaskQuery fetches one task by ID.
type GetTaskQuery struct {
	TaskID uuid.UUID
}

// GetTaskHandler handles the GetTaskQuery with a cache-aside read path.
type GetTaskHandler struct {
	tasks domain.TaskRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(tasks domain.TaskRepository, c cache.Cache, ttl time.Duration) *GetTaskHandler {
	return &GetTaskHandler{tasks: tasks, cache: c, ttl: ttl}
}

// Handle returns the task, or domain.ErrNotFound.
func (h *GetTaskHandler) Handle(ctx context.Context, query GetTaskQuery) (*domain.Task, error) {
	key := cache.KeyTask(query.TaskID.String())

	var cached domain.Task
	if cache.GetJSON(ctx, h.cache, key, &cached) {
		return &cached, nil
	}

	task, err := h.tasks.GetByID(ctx, query.TaskID)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, h.cache, key, task, h.ttl)
	return task, nil
}
