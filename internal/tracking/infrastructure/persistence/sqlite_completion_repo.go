package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// SQLiteCompletionRepository implements domain.CompletionRepository using
// SQLite. The completion log is append-only; there is no update or delete.
type SQLiteCompletionRepository struct {
	db *sql.DB
}

// NewSQLiteCompletionRepository creates a new SQLite completion repository.
func NewSQLiteCompletionRepository(db *sql.DB) *SQLiteCompletionRepository {
	return &SQLiteCompletionRepository{db: db}
}

// Create appends a completion record.
func (r *SQLiteCompletionRepository) Create(ctx context.Context, completion *domain.TaskCompletion) error {
	query := `
		INSERT INTO task_completions (id, task_id, completed_at, duration_minutes, focus_score)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		completion.ID.String(),
		completion.TaskID.String(),
		completion.CompletedAt.Format(time.RFC3339),
		completion.DurationMinutes,
		completion.FocusScore,
	)
	return err
}

// GetByDay returns completions recorded on the given calendar day.
func (r *SQLiteCompletionRepository) GetByDay(ctx context.Context, day time.Time) ([]*domain.TaskCompletion, error) {
	startStr, endStr := dayWindow(day)

	query := `
		SELECT id, task_id, completed_at, duration_minutes, focus_score
		FROM task_completions
		WHERE completed_at >= ? AND completed_at < ?
		ORDER BY completed_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, startStr, endStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompletions(rows)
}

// GetByTask returns the completion history of a task, newest first.
func (r *SQLiteCompletionRepository) GetByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskCompletion, error) {
	query := `
		SELECT id, task_id, completed_at, duration_minutes, focus_score
		FROM task_completions
		WHERE task_id = ?
		ORDER BY completed_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, taskID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompletions(rows)
}

func scanCompletions(rows *sql.Rows) ([]*domain.TaskCompletion, error) {
	var completions []*domain.TaskCompletion
	for rows.Next() {
		var (
			id, taskID, completedAt   string
			durationMins, focusScore  int
		)
		if err := rows.Scan(&id, &taskID, &completedAt, &durationMins, &focusScore); err != nil {
			return nil, err
		}

		completion := &domain.TaskCompletion{
			DurationMinutes: durationMins,
			FocusScore:      focusScore,
		}
		var err error
		if completion.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if completion.TaskID, err = uuid.Parse(taskID); err != nil {
			return nil, err
		}
		if completion.CompletedAt, err = time.Parse(time.RFC3339, completedAt); err != nil {
			return nil, err
		}
		completions = append(completions, completion)
	}
	return completions, rows.Err()
}
