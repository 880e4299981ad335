package domain

import (
	"time"
)

// ProductivityEntry is the canonical materialized productivity view for one
// calendar date. It is upserted by the scorer; recomputation overwrites it in
// place. It is not a cache entry and survives cache loss.
type ProductivityEntry struct {
	Date  time.Time // midnight of the calendar date
	Score float64   // always within [0, 100]

	TasksCompleted int
	TasksTotal     int
	AvgMoodScore   *float64
	FocusHours     float64
	Notes          string

	ComputedAt time.Time
}

// NewProductivityEntry creates an empty entry for a date.
func NewProductivityEntry(date time.Time) *ProductivityEntry {
	return &ProductivityEntry{
		Date:       DayOf(date),
		ComputedAt: time.Now(),
	}
}

// SetTaskMetrics records the day's completion counts. The total is floored to
// 1 so a zero-task day scores 0 on the completion term instead of dividing by
// zero.
func (e *ProductivityEntry) SetTaskMetrics(completed, total int) {
	if total < 1 {
		total = 1
	}
	e.TasksCompleted = completed
	e.TasksTotal = total
}

// SetMood records the day's average mood score, absent when no entries exist.
func (e *ProductivityEntry) SetMood(avg *float64) {
	e.AvgMoodScore = avg
}

// CalculateScore computes the composite productivity score:
//
//	completion rate        0-50 points
//	average mood           0-30 points (0 when no mood was logged)
//	estimated focus hours  0-20 points
//
// Focus hours are deliberately estimated as one hour per completed task,
// capped at a full 8-hour day, rather than read from tracked sessions. The
// score must not depend on whether the user remembered to track focus time;
// real session hours feed the aggregates instead.
func (e *ProductivityEntry) CalculateScore() {
	if e.TasksTotal < 1 {
		e.TasksTotal = 1
	}
	completionRate := float64(e.TasksCompleted) / float64(e.TasksTotal)
	score := completionRate * 50

	if e.AvgMoodScore != nil {
		score += (*e.AvgMoodScore / 10) * 30
	}

	e.FocusHours = float64(e.TasksCompleted)
	if e.FocusHours > 8 {
		e.FocusHours = 8
	}
	score += (e.FocusHours / 8) * 20

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	e.Score = score
	e.ComputedAt = time.Now()
}
