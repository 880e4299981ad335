package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskCompletion is an append-only log record created exactly once per task
// completion. It is never mutated and feeds per-task history and daily
// aggregates.
type TaskCompletion struct {
	ID              uuid.UUID
	TaskID          uuid.UUID
	CompletedAt     time.Time
	DurationMinutes int
	FocusScore      int // 1-10, self-reported
}

// NewTaskCompletion records a completion event. The focus score is clamped
// into 1-10 like mood scores.
func NewTaskCompletion(taskID uuid.UUID, durationMinutes, focusScore int) *TaskCompletion {
	if focusScore < 1 {
		focusScore = 1
	}
	if focusScore > 10 {
		focusScore = 10
	}
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	return &TaskCompletion{
		ID:              uuid.New(),
		TaskID:          taskID,
		CompletedAt:     time.Now(),
		DurationMinutes: durationMinutes,
		FocusScore:      focusScore,
	}
}
