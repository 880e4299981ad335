// Package domain contains the core records for the tracking bounded context:
// tasks, mood entries, focus sessions, completions, and the materialized
// per-day productivity entry.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errors.New("task title cannot be empty")
	ErrPriorityOutOfRange  = errors.New("task priority must be between 1 and 10")
	ErrTaskAlreadyComplete = errors.New("task is already completed")
	ErrTaskCancelled       = errors.New("task is cancelled")
)

// TaskStatus represents the task lifecycle state.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// Task represents a unit of work to be done.
type Task struct {
	ID       uuid.UUID
	Title    string
	Priority int // 1-10
	DueDate  *time.Time
	Status   TaskStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTask creates a new pending task. Priority outside 1-10 is rejected at
// this boundary rather than clamped, so an out-of-range value never reaches
// the scoring paths.
func NewTask(title string, priority int) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if priority < 1 || priority > 10 {
		return nil, ErrPriorityOutOfRange
	}

	now := time.Now()
	return &Task{
		ID:        uuid.New(),
		Title:     title,
		Priority:  priority,
		Status:    TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// WithDueDate sets the due date.
func (t *Task) WithDueDate(due time.Time) *Task {
	t.DueDate = &due
	return t
}

// Complete transitions the task to completed.
func (t *Task) Complete() error {
	switch t.Status {
	case TaskStatusCompleted:
		return ErrTaskAlreadyComplete
	case TaskStatusCancelled:
		return ErrTaskCancelled
	}
	t.Status = TaskStatusCompleted
	t.UpdatedAt = time.Now()
	return nil
}

// Cancel transitions the task to cancelled.
func (t *Task) Cancel() error {
	if t.Status == TaskStatusCompleted {
		return ErrTaskAlreadyComplete
	}
	t.Status = TaskStatusCancelled
	t.UpdatedAt = time.Now()
	return nil
}

// Reopen returns a completed or cancelled task to pending. Used by undo.
func (t *Task) Reopen() {
	t.Status = TaskStatusPending
	t.UpdatedAt = time.Now()
}

// IsCompleted returns true if the task is completed.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// CreatedOnOrBefore reports whether the task existed on the given calendar day.
func (t *Task) CreatedOnOrBefore(day time.Time) bool {
	return !DayOf(t.CreatedAt).After(DayOf(day))
}

// CreatedOn reports whether the task was created on the given calendar day.
func (t *Task) CreatedOn(day time.Time) bool {
	return DayOf(t.CreatedAt).Equal(DayOf(day))
}

// CompletedOn reports whether the task transitioned to completed on the given
// calendar day. The completion timestamp is the last update.
func (t *Task) CompletedOn(day time.Time) bool {
	return t.Status == TaskStatusCompleted && DayOf(t.UpdatedAt).Equal(DayOf(day))
}

// DayOf truncates a timestamp to midnight in its own location.
func DayOf(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}

// PartitionTasks splits tasks into a day's planning horizon. Total counts
// live tasks created on or before the day; cancelled tasks leave the horizon.
// When nothing existed yet, tasks created exactly on the day stand in, so the
// very first day of use does not count against an empty horizon. The scorer
// and the daily aggregate both use this split, so their counts always agree.
func PartitionTasks(tasks []*Task, day time.Time) (completed, total int) {
	for _, t := range tasks {
		if t.Status != TaskStatusCancelled && t.CreatedOnOrBefore(day) {
			total++
		}
		if t.CompletedOn(day) {
			completed++
		}
	}
	if total == 0 {
		for _, t := range tasks {
			if t.CreatedOn(day) {
				total++
			}
		}
	}
	return completed, total
}
