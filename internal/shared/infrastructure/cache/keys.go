package cache

import (
	"fmt"
	"time"
)

// Cache key builders shared by the read paths and the coherence invalidator.
// Key shapes and default TTLs are part of the invalidation contract: a new
// key family needs a matching rule in the coherence table.

const dayFormat = "2006-01-02"

// Default TTLs per key family.
const (
	TTLTaskList     = 5 * time.Minute
	TTLTask         = 10 * time.Minute
	TTLMoodToday    = time.Hour
	TTLProductivity = 30 * time.Minute
	TTLTrend        = 15 * time.Minute
	TTLCorrelation  = 30 * time.Minute
	TTLPlan         = time.Hour
)

// TTLConfig carries the per-family TTLs the read handlers store with. Loaded
// from configuration; the constants above are its defaults.
type TTLConfig struct {
	TaskList     time.Duration
	Task         time.Duration
	MoodToday    time.Duration
	Productivity time.Duration
	Trend        time.Duration
	Correlation  time.Duration
}

// DefaultTTLConfig returns the default TTL per key family.
func DefaultTTLConfig() TTLConfig {
	return TTLConfig{
		TaskList:     TTLTaskList,
		Task:         TTLTask,
		MoodToday:    TTLMoodToday,
		Productivity: TTLProductivity,
		Trend:        TTLTrend,
		Correlation:  TTLCorrelation,
	}
}

// KeyTaskList caches the full task list.
func KeyTaskList() string { return "tasks:all" }

// KeyTask caches a single task by ID.
func KeyTask(id string) string { return "task:" + id }

// KeyMoodToday caches the most recent mood entry of the current day.
func KeyMoodToday() string { return "mood:today" }

// KeyProductivity caches the materialized entry for a calendar date.
func KeyProductivity(day time.Time) string {
	return "productivity:" + day.Format(dayFormat)
}

// KeyTrend caches a trailing N-day trend window.
func KeyTrend(days int) string {
	return fmt.Sprintf("productivity:trend:%d", days)
}

// KeyCorrelation caches a mood-productivity correlation window.
func KeyCorrelation(days int) string {
	return fmt.Sprintf("productivity:correlation:%d", days)
}

// KeyPlan caches a generated plan for a date and time of day. Plan
// generation runs out of process but shares this cache, so the keys are part
// of the invalidation table.
func KeyPlan(day time.Time, timeOfDay string) string {
	return fmt.Sprintf("plan:%s:%s", day.Format(dayFormat), timeOfDay)
}

// KeyConversationContext caches the last-N conversation context window.
func KeyConversationContext(n int) string {
	return fmt.Sprintf("conversation:context:%d", n)
}
