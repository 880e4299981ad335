package persistence

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ariahq/aria/internal/tracking/domain"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A second pool connection to :memory: would open a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../../../../migrations/sqlite/000001_initial_schema.up.sql")
	require.NoError(t, err)

	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return db
}

func TestSQLiteTaskRepository_SaveAndGet(t *testing.T) {
	repo := NewSQLiteTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task, err := domain.NewTask("Write quarterly report", 8)
	require.NoError(t, err)
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	task.WithDueDate(due)

	require.NoError(t, repo.Save(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Write quarterly report", got.Title)
	assert.Equal(t, 8, got.Priority)
	assert.Equal(t, domain.TaskStatusPending, got.Status)
	require.NotNil(t, got.DueDate)
	assert.True(t, domain.DayOf(due).Equal(domain.DayOf(*got.DueDate)))
}

func TestSQLiteTaskRepository_SaveUpsertsExisting(t *testing.T) {
	repo := NewSQLiteTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task, err := domain.NewTask("Draft proposal", 5)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, task))

	require.NoError(t, task.Complete())
	require.NoError(t, repo.Save(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, got.Status)

	all, err := repo.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLiteTaskRepository_GetAllFiltersByStatus(t *testing.T) {
	repo := NewSQLiteTaskRepository(setupTestDB(t))
	ctx := context.Background()

	pending, err := domain.NewTask("Pending work", 5)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, pending))

	done, err := domain.NewTask("Finished work", 3)
	require.NoError(t, err)
	require.NoError(t, done.Complete())
	require.NoError(t, repo.Save(ctx, done))

	got, err := repo.GetAll(ctx, domain.TaskStatusPending)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pending.ID, got[0].ID)

	all, err := repo.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLiteTaskRepository_Delete(t *testing.T) {
	repo := NewSQLiteTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task, err := domain.NewTask("Temporary", 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, task))

	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err = repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteMoodRepository_DateRange(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSQLiteMoodRepository(db)
	ctx := context.Background()

	first := domain.NewMoodEntry(7, "good morning")
	first.CreatedAt = time.Now().Add(-3 * time.Hour)
	second := domain.NewMoodEntry(4, "afternoon slump")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	today := time.Now()
	got, err := repo.GetByDateRange(ctx, today, today)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, 7, got[0].Score)
	assert.Equal(t, "afternoon slump", got[1].Text)

	yesterday := today.AddDate(0, 0, -1)
	empty, err := repo.GetByDateRange(ctx, yesterday, yesterday)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSQLiteMoodRepository_GetLatestForDay(t *testing.T) {
	repo := NewSQLiteMoodRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.GetLatestForDay(ctx, time.Now())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	older := domain.NewMoodEntry(5, "")
	older.CreatedAt = time.Now().Add(-2 * time.Hour)
	require.NoError(t, repo.Create(ctx, older))

	newer := domain.NewMoodEntry(8, "picked up")
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.GetLatestForDay(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
	assert.Equal(t, 8, got.Score)
}

func TestSQLiteSessionRepository_SingleOpenSession(t *testing.T) {
	repo := NewSQLiteSessionRepository(setupTestDB(t))
	ctx := context.Background()

	first := domain.NewFocusSession(nil)
	require.NoError(t, repo.Create(ctx, first))

	second := domain.NewFocusSession(nil)
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, domain.ErrActiveSessionExists)

	open, err := repo.GetOpen(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, open.ID)
}

func TestSQLiteSessionRepository_ConcurrentStartsAdmitOne(t *testing.T) {
	repo := NewSQLiteSessionRepository(setupTestDB(t))
	ctx := context.Background()

	// Two racing starts must resolve in the schema, not in handler code:
	// the unique index admits exactly one open session.
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(ctx, domain.NewFocusSession(nil))
		}()
	}
	wg.Wait()
	close(errs)

	var admitted, rejected int
	for err := range errs {
		switch {
		case err == nil:
			admitted++
		case errors.Is(err, domain.ErrActiveSessionExists):
			rejected++
		default:
			t.Fatalf("unexpected create error: %v", err)
		}
	}
	assert.Equal(t, 1, admitted)
	assert.Equal(t, 1, rejected)

	open, err := repo.GetOpen(ctx)
	require.NoError(t, err)
	assert.True(t, open.IsOpen())
}

func TestSQLiteSessionRepository_EndReleasesOpenSlot(t *testing.T) {
	repo := NewSQLiteSessionRepository(setupTestDB(t))
	ctx := context.Background()

	first := domain.NewFocusSession(nil)
	first.StartedAt = time.Now().Add(-25 * time.Minute)
	require.NoError(t, repo.Create(ctx, first))

	require.NoError(t, first.End("deep work block"))
	require.NoError(t, repo.Update(ctx, first))

	second := domain.NewFocusSession(nil)
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.GetOpen(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	closed, err := repo.GetByDay(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, closed, 2)
}

func TestSQLiteSessionRepository_ClosedSessionRoundTrip(t *testing.T) {
	repo := NewSQLiteSessionRepository(setupTestDB(t))
	ctx := context.Background()

	taskID := uuid.New()
	session := domain.NewFocusSession(&taskID)
	session.StartedAt = time.Now().Add(-90 * time.Minute)
	require.NoError(t, session.End("wrapped up"))
	require.NoError(t, repo.Create(ctx, session))

	byTask, err := repo.GetByTask(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, byTask, 1)

	got := byTask[0]
	require.NotNil(t, got.TaskID)
	assert.Equal(t, taskID, *got.TaskID)
	require.NotNil(t, got.EndedAt)
	require.NotNil(t, got.DurationMinutes)
	assert.InDelta(t, 90, *got.DurationMinutes, 1)
	assert.Equal(t, "wrapped up", got.Notes)

	_, err = repo.GetOpen(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteCompletionRepository_AppendOnlyLog(t *testing.T) {
	repo := NewSQLiteCompletionRepository(setupTestDB(t))
	ctx := context.Background()

	taskID := uuid.New()
	first := domain.NewTaskCompletion(taskID, 45, 8)
	second := domain.NewTaskCompletion(uuid.New(), 20, 6)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	today, err := repo.GetByDay(ctx, time.Now())
	require.NoError(t, err)
	assert.Len(t, today, 2)

	byTask, err := repo.GetByTask(ctx, taskID)
	require.NoError(t, err)
	require.Len(t, byTask, 1)
	assert.Equal(t, 45, byTask[0].DurationMinutes)
	assert.Equal(t, 8, byTask[0].FocusScore)
}

func TestSQLiteProductivityRepository_UpsertOverwrites(t *testing.T) {
	repo := NewSQLiteProductivityRepository(setupTestDB(t))
	ctx := context.Background()

	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)
	entry := domain.NewProductivityEntry(day)
	entry.SetTaskMetrics(3, 5)
	mood := 7.0
	entry.SetMood(&mood)
	entry.CalculateScore()
	require.NoError(t, repo.Upsert(ctx, entry))

	recomputed := domain.NewProductivityEntry(day)
	recomputed.SetTaskMetrics(5, 5)
	recomputed.SetMood(&mood)
	recomputed.CalculateScore()
	require.NoError(t, repo.Upsert(ctx, recomputed))

	got, err := repo.GetByDate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 5, got.TasksCompleted)
	assert.Equal(t, 5, got.TasksTotal)
	assert.Equal(t, recomputed.Score, got.Score)
}

func TestSQLiteProductivityRepository_DateRangeOrdering(t *testing.T) {
	repo := NewSQLiteProductivityRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)
	for _, offset := range []int{2, 0, 1} {
		entry := domain.NewProductivityEntry(base.AddDate(0, 0, offset))
		entry.SetTaskMetrics(offset, 4)
		entry.CalculateScore()
		require.NoError(t, repo.Upsert(ctx, entry))
	}

	got, err := repo.GetByDateRange(ctx, base, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, want := range []int{0, 1, 2} {
		assert.True(t, base.AddDate(0, 0, want).Equal(got[i].Date))
		assert.Equal(t, want, got[i].TasksCompleted)
	}

	partial, err := repo.GetByDateRange(ctx, base, base.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, partial, 2)

	_, err = repo.GetByDate(ctx, base.AddDate(0, 0, 10))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
