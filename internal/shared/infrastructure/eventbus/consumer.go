// Package eventbus carries write events from the tracking command handlers
// to their consumers, most importantly the cache coherence invalidator. In
// local mode the bus is in-process and synchronous: a write is not done
// until every consumer has seen its event.
package eventbus

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventConsumer handles specific event types.
type EventConsumer interface {
	// EventTypes returns the routing keys this consumer handles,
	// e.g. ["tracking.task.completed", "tracking.mood.logged"].
	EventTypes() []string

	// Handle processes the event.
	Handle(ctx context.Context, event *ConsumedEvent) error
}

// ConsumedEvent is the wire envelope for a write event.
type ConsumedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	RoutingKey  string    `json:"routing_key"`
	OccurredAt  time.Time `json:"occurred_at"`
	AggregateID uuid.UUID `json:"aggregate_id,omitempty"`

	// Date is the affected calendar day, formatted 2006-01-02. Empty when
	// the event is not date-scoped.
	Date string `json:"date,omitempty"`
}

// Day parses the affected calendar day. Returns false when the event carries
// no date or an unparseable one.
func (e *ConsumedEvent) Day() (time.Time, bool) {
	if e.Date == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation("2006-01-02", e.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
