package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when a record does not exist.
// Callers treat it as a valid empty result, not a failure.
var ErrNotFound = errors.New("record not found")

// TaskRepository persists tasks.
type TaskRepository interface {
	Save(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	// GetAll returns tasks, optionally filtered by status. An empty status
	// returns everything.
	GetAll(ctx context.Context, status TaskStatus) ([]*Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MoodRepository persists mood entries. Entries are append-only.
type MoodRepository interface {
	Create(ctx context.Context, entry *MoodEntry) error
	// GetByDateRange returns entries created within [start, end] calendar
	// days, inclusive, oldest first.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*MoodEntry, error)
	// GetLatestForDay returns the most recent entry of a calendar day, or
	// ErrNotFound.
	GetLatestForDay(ctx context.Context, day time.Time) (*MoodEntry, error)
}

// SessionRepository persists focus sessions.
type SessionRepository interface {
	// Create inserts a new open session. It fails with
	// ErrActiveSessionExists when an open session already exists; the check
	// and the insert are a single atomic operation so concurrent starts
	// yield exactly one winner.
	Create(ctx context.Context, session *FocusSession) error
	Update(ctx context.Context, session *FocusSession) error
	// GetOpen returns the currently open session, or ErrNotFound.
	GetOpen(ctx context.Context) (*FocusSession, error)
	// GetByDay returns sessions started on the given calendar day.
	GetByDay(ctx context.Context, day time.Time) ([]*FocusSession, error)
	GetByTask(ctx context.Context, taskID uuid.UUID) ([]*FocusSession, error)
}

// CompletionRepository persists the append-only completion log.
type CompletionRepository interface {
	Create(ctx context.Context, completion *TaskCompletion) error
	GetByDay(ctx context.Context, day time.Time) ([]*TaskCompletion, error)
	GetByTask(ctx context.Context, taskID uuid.UUID) ([]*TaskCompletion, error)
}

// ProductivityRepository persists the materialized per-day entries.
type ProductivityRepository interface {
	// Upsert inserts or overwrites the entry for its date.
	Upsert(ctx context.Context, entry *ProductivityEntry) error
	// GetByDate returns the entry for a calendar day, or ErrNotFound.
	GetByDate(ctx context.Context, day time.Time) (*ProductivityEntry, error)
	// GetByDateRange returns entries within [start, end] days, oldest first.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*ProductivityEntry, error)
}
