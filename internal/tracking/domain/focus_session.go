package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrActiveSessionExists is returned when starting a focus session while
	// another one is still open. At most one open session exists per process.
	ErrActiveSessionExists = errors.New("an active focus session already exists")

	// ErrSessionAlreadyEnded is returned when ending a closed session.
	ErrSessionAlreadyEnded = errors.New("focus session already ended")
)

// FocusSession represents a block of focused work. A nil EndedAt means the
// session is still open.
type FocusSession struct {
	ID              uuid.UUID
	TaskID          *uuid.UUID
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationMinutes *float64
	Notes           string
}

// NewFocusSession creates a new open session, optionally bound to a task.
func NewFocusSession(taskID *uuid.UUID) *FocusSession {
	return &FocusSession{
		ID:        uuid.New(),
		TaskID:    taskID,
		StartedAt: time.Now(),
	}
}

// End closes the session and computes its duration in minutes. The duration
// stays fractional; rounding is left to presentation.
func (s *FocusSession) End(notes string) error {
	if s.EndedAt != nil {
		return ErrSessionAlreadyEnded
	}
	now := time.Now()
	s.EndedAt = &now
	minutes := now.Sub(s.StartedAt).Minutes()
	s.DurationMinutes = &minutes
	if notes != "" {
		s.Notes = notes
	}
	return nil
}

// IsOpen returns true while the session has not been ended.
func (s *FocusSession) IsOpen() bool {
	return s.EndedAt == nil
}

// StartedOn reports whether the session started on the given calendar day.
func (s *FocusSession) StartedOn(day time.Time) bool {
	return DayOf(s.StartedAt).Equal(DayOf(day))
}
