package domain

import (
	"time"

	"github.com/google/uuid"
)

// Routing keys for tracking write events. The cache coherence invalidator
// subscribes to these; every write path must publish its event before the
// write is considered done.
const (
	EventTaskCreated          = "tracking.task.created"
	EventTaskUpdated          = "tracking.task.updated"
	EventTaskCompleted        = "tracking.task.completed"
	EventTaskDeleted          = "tracking.task.deleted"
	EventMoodLogged           = "tracking.mood.logged"
	EventSessionStarted       = "tracking.session.started"
	EventSessionEnded         = "tracking.session.ended"
	EventProductivityComputed = "tracking.productivity.computed"
)

// Event is a write notification published on the event bus.
type Event struct {
	ID         uuid.UUID `json:"event_id"`
	RoutingKey string    `json:"routing_key"`
	OccurredAt time.Time `json:"occurred_at"`

	// AggregateID identifies the written record, where one exists.
	AggregateID uuid.UUID `json:"aggregate_id,omitempty"`

	// Date is the calendar day the write affects, formatted 2006-01-02.
	// Invalidation of date-scoped keys is driven by this field.
	Date string `json:"date,omitempty"`
}

// NewEvent creates a write event for the given routing key.
func NewEvent(routingKey string, aggregateID uuid.UUID, day time.Time) Event {
	return Event{
		ID:          uuid.New(),
		RoutingKey:  routingKey,
		OccurredAt:  time.Now().UTC(),
		AggregateID: aggregateID,
		Date:        DayOf(day).Format("2006-01-02"),
	}
}
