package domain

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry represents a logged mood. Entries are immutable once created;
// multiple entries on the same day are averaged by the scorer.
type MoodEntry struct {
	ID        uuid.UUID
	Score     int // 1-10
	Text      string
	CreatedAt time.Time
}

// NewMoodEntry creates a mood entry. The score is clamped into 1-10 rather
// than rejected: mood capture comes from voice input and a garbled number
// should still record something usable.
func NewMoodEntry(score int, text string) *MoodEntry {
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return &MoodEntry{
		ID:        uuid.New(),
		Score:     score,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// LoggedOn reports whether the entry was created on the given calendar day.
func (m *MoodEntry) LoggedOn(day time.Time) bool {
	return DayOf(m.CreatedAt).Equal(DayOf(day))
}
