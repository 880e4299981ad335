// Package services holds the planning engines that turn tracked state into
// an ordered work list.
package services

import (
	"bytes"
	"sort"
	"time"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// FocusEngine scores tasks for "what should I work on right now". The score
// sums five independently bounded terms:
//
//	priority                0-40
//	deadline urgency        0-30
//	mood compatibility      0-20
//	energy level            0-5
//	time-of-day fit         0-5
//
// On low-mood days the mood term inverts against priority, so easy tasks
// float up when ambitious ones would stall.
type FocusEngine struct {
	now func() time.Time
}

// NewFocusEngine creates a new FocusEngine. A nil now falls back to the wall
// clock.
func NewFocusEngine(now func() time.Time) *FocusEngine {
	if now == nil {
		now = time.Now
	}
	return &FocusEngine{now: now}
}

// FocusScore returns the task's score in [0, 100] given the current mood.
func (e *FocusEngine) FocusScore(task *domain.Task, moodScore float64) float64 {
	now := e.now()
	score := priorityTerm(task.Priority) +
		deadlineTerm(task.DueDate, now) +
		moodTerm(task.Priority, moodScore) +
		energyTerm(moodScore, now.Hour()) +
		timeFitTerm(task.Priority, now.Hour())

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// OrderTasks returns tasks sorted by descending focus score. Ties order by
// task ID so the result is deterministic across runs.
func (e *FocusEngine) OrderTasks(tasks []*domain.Task, moodScore float64) []*domain.Task {
	type scored struct {
		task  *domain.Task
		score float64
	}
	ranked := make([]scored, len(tasks))
	for i, task := range tasks {
		ranked[i] = scored{task: task, score: e.FocusScore(task, moodScore)}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return bytes.Compare(ranked[i].task.ID[:], ranked[j].task.ID[:]) < 0
	})

	out := make([]*domain.Task, len(ranked))
	for i, r := range ranked {
		out[i] = r.task
	}
	return out
}

func priorityTerm(priority int) float64 {
	return float64(priority) / 10 * 40
}

func deadlineTerm(due *time.Time, now time.Time) float64 {
	if due == nil {
		return 0
	}
	today := domain.DayOf(now)
	dueDay := domain.DayOf(*due)
	daysUntil := int(dueDay.Sub(today).Hours() / 24)

	switch {
	case daysUntil < 0:
		return 30
	case daysUntil == 0:
		return 25
	case daysUntil <= 2:
		return 20
	case daysUntil <= 7:
		return 10
	default:
		return 5
	}
}

func moodTerm(priority int, moodScore float64) float64 {
	switch {
	case moodScore >= 7:
		return float64(priority) / 10 * 20
	case moodScore >= 5:
		return 10
	default:
		return float64(10-priority) / 10 * 20
	}
}

// energyTerm estimates available energy from mood and the hour of day.
func energyTerm(moodScore float64, hour int) float64 {
	energy := (0.3 + 0.7*moodScore/10) * timeOfDayMultiplier(hour)
	return energy * 5
}

func timeOfDayMultiplier(hour int) float64 {
	switch {
	case hour >= 6 && hour < 12:
		return 1.0
	case hour >= 12 && hour < 17:
		return 0.8
	case hour >= 17 && hour < 22:
		return 0.6
	default:
		return 0.4
	}
}

// timeFitTerm pairs the priority band against the time-of-day band: hard
// tasks fit mornings, light tasks fit evenings, and night hours fit nothing
// well. Compatibility is 0-1, scaled into the 5-point term.
func timeFitTerm(priority, hour int) float64 {
	band := priorityBand(priority)
	fit := map[string][4]float64{
		// morning, afternoon, evening, night
		"high":   {1.0, 0.8, 0.5, 0.3},
		"medium": {0.7, 1.0, 0.7, 0.3},
		"low":    {0.4, 0.6, 1.0, 0.3},
	}
	return fit[band][timeOfDayBand(hour)] * 5
}

func priorityBand(priority int) string {
	switch {
	case priority >= 7:
		return "high"
	case priority <= 3:
		return "low"
	default:
		return "medium"
	}
}

func timeOfDayBand(hour int) int {
	switch {
	case hour >= 6 && hour < 12:
		return 0
	case hour >= 12 && hour < 17:
		return 1
	case hour >= 17 && hour < 22:
		return 2
	default:
		return 3
	}
}
