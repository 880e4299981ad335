package queries

import (
	"context"
	"time"

	"github.com/ariahq/aria/internal/shared/infrastructure/cache"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// ListTasksQuery lists tasks, optionally filtered by status.
type ListTasksQuery struct {
	Status domain.TaskStatus
}

// ListTasksHandler handles the ListTasksQuery. Only the unfiltered list is
// cached; filtered reads are rare and cheap enough to hit the store.
type ListTasksHandler struct {
	tasks domain.TaskRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(tasks domain.TaskRepository, c cache.Cache, ttl time.Duration) *ListTasksHandler {
	return &ListTasksHandler{tasks: tasks, cache: c, ttl: ttl}
}

// Handle returns the matching tasks.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]*domain.Task, error) {
	if query.Status != "" {
		return h.tasks.GetAll(ctx, query.Status)
	}

	key := cache.KeyTaskList()
	var cached []*domain.Task
	if cache.GetJSON(ctx, h.cache, key, &cached) {
		return cached, nil
	}

	tasks, err := h.tasks.GetAll(ctx, "")
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, h.cache, key, tasks, h.ttl)
	return tasks, nil
}
