// Package application exposes task, mood, and completion tracking as one
// service facade over the command and query handlers.
package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/shared/infrastructure/cache"
	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/application/commands"
	"github.com/ariahq/aria/internal/tracking/application/queries"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// Service bundles the tracking command and query handlers.
type Service struct {
	createTask   *commands.CreateTaskHandler
	updateTask   *commands.UpdateTaskHandler
	completeTask *commands.CompleteTaskHandler
	deleteTask   *commands.DeleteTaskHandler
	logMood      *commands.LogMoodHandler

	listTasks *queries.ListTasksHandler
	getTask   *queries.GetTaskHandler
	todayMood *queries.GetTodayMoodHandler

	completions domain.CompletionRepository
}

// NewService wires the tracking handlers over the given repositories, cache,
// and event bus. The TTLs per cached key family come from configuration.
func NewService(
	tasks domain.TaskRepository,
	moods domain.MoodRepository,
	completions domain.CompletionRepository,
	c cache.Cache,
	ttl cache.TTLConfig,
	publisher eventbus.Publisher,
	now func() time.Time,
) *Service {
	return &Service{
		createTask:   commands.NewCreateTaskHandler(tasks, publisher),
		updateTask:   commands.NewUpdateTaskHandler(tasks, publisher),
		completeTask: commands.NewCompleteTaskHandler(tasks, completions, publisher),
		deleteTask:   commands.NewDeleteTaskHandler(tasks, publisher),
		logMood:      commands.NewLogMoodHandler(moods, publisher),
		listTasks:    queries.NewListTasksHandler(tasks, c, ttl.TaskList),
		getTask:      queries.NewGetTaskHandler(tasks, c, ttl.Task),
		todayMood:    queries.NewGetTodayMoodHandler(moods, c, now, ttl.MoodToday),
		completions:  completions,
	}
}

// CreateTask creates a new pending task.
func (s *Service) CreateTask(ctx context.Context, title string, priority int, due *time.Time) (*domain.Task, error) {
	return s.createTask.Handle(ctx, commands.CreateTaskCommand{Title: title, Priority: priority, DueDate: due})
}

// UpdateTask edits a task; nil fields keep their current value.
func (s *Service) UpdateTask(ctx context.Context, cmd commands.UpdateTaskCommand) (*domain.Task, error) {
	return s.updateTask.Handle(ctx, cmd)
}

// CompleteTask marks a task completed and records the completion.
func (s *Service) CompleteTask(ctx context.Context, taskID uuid.UUID, durationMinutes, focusScore int) (*domain.Task, error) {
	return s.completeTask.Handle(ctx, commands.CompleteTaskCommand{
		TaskID:          taskID,
		DurationMinutes: durationMinutes,
		FocusScore:      focusScore,
	})
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	return s.deleteTask.Handle(ctx, commands.DeleteTaskCommand{TaskID: taskID})
}

// LogMood records a mood entry.
func (s *Service) LogMood(ctx context.Context, score int, text string) (*domain.MoodEntry, error) {
	return s.logMood.Handle(ctx, commands.LogMoodCommand{Score: score, Text: text})
}

// ListTasks returns tasks, optionally filtered by status.
func (s *Service) ListTasks(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error) {
	return s.listTasks.Handle(ctx, queries.ListTasksQuery{Status: status})
}

// GetTask returns one task by ID.
func (s *Service) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	return s.getTask.Handle(ctx, queries.GetTaskQuery{TaskID: taskID})
}

// GetTodayMood returns today's latest mood entry, nil when none was logged.
func (s *Service) GetTodayMood(ctx context.Context) (*domain.MoodEntry, error) {
	return s.todayMood.Handle(ctx, queries.GetTodayMoodQuery{})
}

// TaskHistory returns the completion log of a task, oldest first.
func (s *Service) TaskHistory(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskCompletion, error) {
	return s.completions.GetByTask(ctx, taskID)
}
