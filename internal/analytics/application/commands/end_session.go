package commands

import (
	"context"
	"errors"

	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// EndSessionCommand closes the currently open focus session.
type EndSessionCommand struct {
	Notes string
}

// EndSessionHandler handles the EndSessionCommand.
type EndSessionHandler struct {
	sessions  domain.SessionRepository
	publisher eventbus.Publisher
}

// NewEndSessionHandler creates a new EndSessionHandler.
func NewEndSessionHandler(sessions domain.SessionRepository, publisher eventbus.Publisher) *EndSessionHandler {
	return &EndSessionHandler{sessions: sessions, publisher: publisher}
}

// Handle closes the open session and returns it with its duration computed.
// When no session is open it returns (nil, nil): there is nothing to end,
// which is a valid empty result rather than a failure.
func (h *EndSessionHandler) Handle(ctx context.Context, cmd EndSessionCommand) (*domain.FocusSession, error) {
	session, err := h.sessions.GetOpen(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := session.End(cmd.Notes); err != nil {
		return nil, err
	}
	if err := h.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	event := domain.NewEvent(domain.EventSessionEnded, session.ID, session.StartedAt)
	if err := eventbus.PublishJSON(ctx, h.publisher, event.RoutingKey, event); err != nil {
		return nil, err
	}
	return session, nil
}
