package commands

import (
	"context"

	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// LogMoodCommand records a mood entry.
type LogMoodCommand struct {
	Score int
	Text  string
}

// LogMoodHandler handles the LogMoodCommand.
type LogMoodHandler struct {
	moods     domain.MoodRepository
	publisher eventbus.Publisher
}

// NewLogMoodHandler creates a new LogMoodHandler.
func NewLogMoodHandler(moods domain.MoodRepository, publisher eventbus.Publisher) *LogMoodHandler {
	return &LogMoodHandler{moods: moods, publisher: publisher}
}

// Handle records the mood and publishes its write event. The event fires
// before Handle returns, so trend windows cached over the day are already
// gone when the caller's next read arrives.
func (h *LogMoodHandler) Handle(ctx context.Context, cmd LogMoodCommand) (*domain.MoodEntry, error) {
	entry := domain.NewMoodEntry(cmd.Score, cmd.Text)
	if err := h.moods.Create(ctx, entry); err != nil {
		return nil, err
	}

	event := domain.NewEvent(domain.EventMoodLogged, entry.ID, entry.CreatedAt)
	if err := eventbus.PublishJSON(ctx, h.publisher, event.RoutingKey, event); err != nil {
		return nil, err
	}
	return entry, nil
}
