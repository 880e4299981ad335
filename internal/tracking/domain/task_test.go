package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task, err := NewTask("Write weekly review", 7)
	require.NoError(t, err)

	assert.NotEqual(t, task.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, TaskStatusPending, task.Status)
	assert.Equal(t, 7, task.Priority)
	assert.False(t, task.IsCompleted())
}

func TestNewTask_Validation(t *testing.T) {
	_, err := NewTask("   ", 5)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = NewTask("ok", 0)
	assert.ErrorIs(t, err, ErrPriorityOutOfRange)

	_, err = NewTask("ok", 11)
	assert.ErrorIs(t, err, ErrPriorityOutOfRange)
}

func TestTask_Complete(t *testing.T) {
	task, err := NewTask("Ship the release", 9)
	require.NoError(t, err)

	require.NoError(t, task.Complete())
	assert.True(t, task.IsCompleted())

	assert.ErrorIs(t, task.Complete(), ErrTaskAlreadyComplete)
}

func TestTask_CancelThenComplete(t *testing.T) {
	task, err := NewTask("Maybe later", 2)
	require.NoError(t, err)

	require.NoError(t, task.Cancel())
	assert.ErrorIs(t, task.Complete(), ErrTaskCancelled)

	task.Reopen()
	assert.Equal(t, TaskStatusPending, task.Status)
	require.NoError(t, task.Complete())
}

func TestTask_DateHelpers(t *testing.T) {
	task, err := NewTask("Dated", 5)
	require.NoError(t, err)

	created := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	completed := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	task.CreatedAt = created
	task.UpdatedAt = completed
	task.Status = TaskStatusCompleted

	assert.True(t, task.CreatedOn(created))
	assert.True(t, task.CreatedOnOrBefore(completed))
	assert.False(t, task.CreatedOnOrBefore(created.AddDate(0, 0, -1)))
	assert.True(t, task.CompletedOn(completed))
	assert.False(t, task.CompletedOn(created))
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2026, 8, 31, 23, 59, 59, 123, time.UTC)
	day := DayOf(ts)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), day)
}
