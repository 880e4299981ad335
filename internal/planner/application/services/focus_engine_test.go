package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/internal/tracking/domain"
)

func fixedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 10, hour, 0, 0, 0, time.Local)
	}
}

func mustTask(t *testing.T, title string, priority int) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(title, priority)
	require.NoError(t, err)
	return task
}

func TestFocusEngine_KnownScore(t *testing.T) {
	engine := NewFocusEngine(fixedClock(9))

	task := mustTask(t, "ship release", 8)
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	task.WithDueDate(due)

	// priority 32 + due-today 25 + mood 16 + energy 4.3 + morning-fit 5
	score := engine.FocusScore(task, 8)
	assert.InDelta(t, 82.3, score, 1e-9)
}

func TestFocusEngine_DeadlineBands(t *testing.T) {
	engine := NewFocusEngine(fixedClock(9))
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	base := func(due *time.Time) float64 {
		task := mustTask(t, "deadline sweep", 5)
		task.DueDate = due
		return engine.FocusScore(task, 6)
	}

	noDue := base(nil)
	overdue := today.AddDate(0, 0, -3)
	dueToday := today
	dueSoon := today.AddDate(0, 0, 2)
	dueThisWeek := today.AddDate(0, 0, 6)
	dueLater := today.AddDate(0, 0, 30)

	assert.InDelta(t, 30, base(&overdue)-noDue, 1e-9)
	assert.InDelta(t, 25, base(&dueToday)-noDue, 1e-9)
	assert.InDelta(t, 20, base(&dueSoon)-noDue, 1e-9)
	assert.InDelta(t, 10, base(&dueThisWeek)-noDue, 1e-9)
	assert.InDelta(t, 5, base(&dueLater)-noDue, 1e-9)
}

func TestFocusEngine_MoodInversionOnBadDays(t *testing.T) {
	engine := NewFocusEngine(fixedClock(9))
	hard := mustTask(t, "architecture rework", 9)
	easy := mustTask(t, "tidy inbox", 2)

	// Good day: ambition is rewarded.
	assert.Greater(t,
		engine.FocusScore(hard, 9)-engine.FocusScore(easy, 9),
		engine.FocusScore(hard, 3)-engine.FocusScore(easy, 3),
	)

	// Bad day: the mood term favors the easy task.
	hardMood := engine.FocusScore(hard, 3) - priorityTerm(9) - energyTerm(3, 9) - timeFitTerm(9, 9)
	easyMood := engine.FocusScore(easy, 3) - priorityTerm(2) - energyTerm(3, 9) - timeFitTerm(2, 9)
	assert.InDelta(t, 2, hardMood, 1e-9)
	assert.InDelta(t, 16, easyMood, 1e-9)
}

func TestFocusEngine_TimeFitBands(t *testing.T) {
	// High priority peaks in the morning, medium in the afternoon, low in
	// the evening. Night hours flatten every band to the same low fit.
	assert.InDelta(t, 5.0, timeFitTerm(8, 9), 1e-9)
	assert.InDelta(t, 4.0, timeFitTerm(8, 13), 1e-9)
	assert.InDelta(t, 2.5, timeFitTerm(8, 20), 1e-9)

	assert.InDelta(t, 3.5, timeFitTerm(5, 9), 1e-9)
	assert.InDelta(t, 5.0, timeFitTerm(5, 13), 1e-9)
	assert.InDelta(t, 3.5, timeFitTerm(5, 20), 1e-9)

	assert.InDelta(t, 2.0, timeFitTerm(2, 9), 1e-9)
	assert.InDelta(t, 3.0, timeFitTerm(2, 13), 1e-9)
	assert.InDelta(t, 5.0, timeFitTerm(2, 20), 1e-9)

	for _, priority := range []int{2, 5, 8} {
		assert.InDelta(t, 1.5, timeFitTerm(priority, 23), 1e-9)
	}
}

func TestFocusEngine_ScoreBounds(t *testing.T) {
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	for _, hour := range []int{0, 7, 13, 19, 23} {
		engine := NewFocusEngine(fixedClock(hour))
		for priority := 1; priority <= 10; priority++ {
			for mood := 1.0; mood <= 10; mood++ {
				task := mustTask(t, "bounds sweep", priority)
				score := engine.FocusScore(task, mood)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 100.0)

				task.WithDueDate(due)
				score = engine.FocusScore(task, mood)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 100.0)
			}
		}
	}
}

func TestFocusEngine_OrderTasksDeterministicTiebreak(t *testing.T) {
	engine := NewFocusEngine(fixedClock(9))

	a := mustTask(t, "first twin", 5)
	b := mustTask(t, "second twin", 5)
	top := mustTask(t, "urgent", 9)
	overdue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	top.WithDueDate(overdue)

	forward := engine.OrderTasks([]*domain.Task{a, b, top}, 8)
	reversed := engine.OrderTasks([]*domain.Task{top, b, a}, 8)

	require.Len(t, forward, 3)
	assert.Equal(t, top.ID, forward[0].ID)
	// Equal-score twins keep the same relative order regardless of input
	// order.
	assert.Equal(t, forward[1].ID, reversed[1].ID)
	assert.Equal(t, forward[2].ID, reversed[2].ID)
}

func TestFocusEngine_EveningFavorsLightTasks(t *testing.T) {
	morning := NewFocusEngine(fixedClock(8))
	evening := NewFocusEngine(fixedClock(20))

	hard := mustTask(t, "deep design work", 9)
	light := mustTask(t, "clear notifications", 2)

	morningGap := morning.FocusScore(hard, 6) - morning.FocusScore(light, 6)
	eveningGap := evening.FocusScore(hard, 6) - evening.FocusScore(light, 6)
	assert.Greater(t, morningGap, eveningGap)
}
