// Package coherence keeps the cache consistent with the store. Every write
// event maps to a fixed set of cache keys to delete; deletion runs on the
// same synchronous dispatch as the write, so a read issued after the write
// returns never sees the pre-write cached value.
package coherence

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/shared/infrastructure/cache"
	"github.com/ariahq/aria/internal/shared/infrastructure/eventbus"
	"github.com/ariahq/aria/internal/tracking/domain"
)

// Config carries the window sizes whose cache keys exist. The invalidator
// must know every configured window: invalidation is eager and coarse, all
// windows are dropped on a relevant write instead of computing which windows
// cover the affected date. Narrowing the set risks leaving one stale window
// behind and is not worth the extra hit rate.
type Config struct {
	TrendWindowDays []int
	ContextWindows  []int
}

// Invalidator deletes cache keys in response to write events. It implements
// eventbus.EventConsumer.
type Invalidator struct {
	cache  cache.Cache
	config Config
	logger *slog.Logger
}

// NewInvalidator creates a new Invalidator.
func NewInvalidator(c cache.Cache, config Config, logger *slog.Logger) *Invalidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Invalidator{cache: c, config: config, logger: logger}
}

// EventTypes returns the routing keys that trigger invalidation. Session
// starts and ends are absent: no cached key derives from session rows alone.
func (i *Invalidator) EventTypes() []string {
	return []string{
		domain.EventTaskCreated,
		domain.EventTaskUpdated,
		domain.EventTaskCompleted,
		domain.EventTaskDeleted,
		domain.EventMoodLogged,
		domain.EventProductivityComputed,
	}
}

// Handle deletes the keys affected by the event.
func (i *Invalidator) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	keys := i.keysFor(event)
	if len(keys) == 0 {
		return nil
	}
	if err := i.cache.Delete(ctx, keys...); err != nil {
		// An unavailable cache self-heals through TTL expiry; the write
		// itself already succeeded.
		i.logger.Warn("cache invalidation failed",
			"routing_key", event.RoutingKey,
			"keys", len(keys),
			"error", err,
		)
		return err
	}
	i.logger.Debug("cache invalidated",
		"routing_key", event.RoutingKey,
		"keys", keys,
	)
	return nil
}

func (i *Invalidator) keysFor(event *eventbus.ConsumedEvent) []string {
	switch event.RoutingKey {
	case domain.EventTaskCreated, domain.EventTaskUpdated, domain.EventTaskCompleted, domain.EventTaskDeleted:
		return i.taskKeys(event)
	case domain.EventMoodLogged:
		return i.moodKeys()
	case domain.EventProductivityComputed:
		return i.productivityKeys(event)
	default:
		return nil
	}
}

func (i *Invalidator) taskKeys(event *eventbus.ConsumedEvent) []string {
	keys := []string{cache.KeyTaskList()}
	if event.AggregateID != uuid.Nil {
		keys = append(keys, cache.KeyTask(event.AggregateID.String()))
	}
	if day, ok := event.Day(); ok {
		for _, timeOfDay := range []string{"morning", "afternoon", "evening"} {
			keys = append(keys, cache.KeyPlan(day, timeOfDay))
		}
	}
	return keys
}

func (i *Invalidator) moodKeys() []string {
	keys := []string{cache.KeyMoodToday()}
	for _, n := range i.config.ContextWindows {
		keys = append(keys, cache.KeyConversationContext(n))
	}
	for _, d := range i.config.TrendWindowDays {
		keys = append(keys, cache.KeyTrend(d))
	}
	return keys
}

func (i *Invalidator) productivityKeys(event *eventbus.ConsumedEvent) []string {
	var keys []string
	if day, ok := event.Day(); ok {
		keys = append(keys, cache.KeyProductivity(day))
	}
	for _, d := range i.config.TrendWindowDays {
		keys = append(keys, cache.KeyTrend(d), cache.KeyCorrelation(d))
	}
	return keys
}
