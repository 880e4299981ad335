package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// StartSessionCommand opens a focus session, optionally bound to a task.
type StartSessionCommand struct {
	TaskID *uuid.UUID
}

// StartSessionHandler handles the StartSessionCommand. At most one session
// can be open; the repository's atomic insert decides the winner under
// concurrent starts.
type StartSessionHandler struct {
	sessions  domain.SessionRepository
	publisher eventbus.Publisher
}

// NewStartSessionHandler creates a new StartSessionHandler.
func NewStartSessionHandler(sessions domain.SessionRepository, publisher eventbus.Publisher) *StartSessionHandler {
	return &StartSessionHandler{sessions: sessions, publisher: publisher}
}

// Handle opens a session. It returns domain.ErrActiveSessionExists when one
// is already open.
func (h *StartSessionHandler) Handle(ctx context.Context, cmd StartSessionCommand) (*domain.FocusSession, error) {
	session := domain.NewFocusSession(cmd.TaskID)
	if err := h.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	event := domain.NewEvent(domain.EventSessionStarted, session.ID, session.StartedAt)
	if err := eventbus.PublishJSON(ctx, h.publisher, event.RoutingKey, event); err != nil {
		return nil, err
	}
	return session, nil
}
