package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// PostgresCompletionRepository implements domain.CompletionRepository using
// PostgreSQL.
type PostgresCompletionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCompletionRepository creates a new PostgreSQL completion
// repository.
func NewPostgresCompletionRepository(pool *pgxpool.Pool) *PostgresCompletionRepository {
	return &PostgresCompletionRepository{pool: pool}
}

// Create appends a completion record.
func (r *PostgresCompletionRepository) Create(ctx context.Context, completion *domain.TaskCompletion) error {
	query := `
		INSERT INTO task_completions (id, task_id, completed_at, duration_minutes, focus_score)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		completion.ID,
		completion.TaskID,
		completion.CompletedAt,
		completion.DurationMinutes,
		completion.FocusScore,
	)
	return err
}

// GetByDay returns completions recorded on a calendar day, oldest first.
func (r *PostgresCompletionRepository) GetByDay(ctx context.Context, day time.Time) ([]*domain.TaskCompletion, error) {
	lo, hi := dayBounds(day)
	query := `
		SELECT id, task_id, completed_at, duration_minutes, focus_score
		FROM task_completions
		WHERE completed_at >= $1 AND completed_at < $2
		ORDER BY completed_at ASC
	`
	rows, err := r.pool.Query(ctx, query, lo, hi)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPgCompletions(rows)
}

// GetByTask returns completions for a task, oldest first.
func (r *PostgresCompletionRepository) GetByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskCompletion, error) {
	query := `
		SELECT id, task_id, completed_at, duration_minutes, focus_score
		FROM task_completions
		WHERE task_id = $1
		ORDER BY completed_at ASC
	`
	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPgCompletions(rows)
}

func collectPgCompletions(rows pgx.Rows) ([]*domain.TaskCompletion, error) {
	var completions []*domain.TaskCompletion
	for rows.Next() {
		var completion domain.TaskCompletion
		err := rows.Scan(
			&completion.ID,
			&completion.TaskID,
			&completion.CompletedAt,
			&completion.DurationMinutes,
			&completion.FocusScore,
		)
		if err != nil {
			return nil, err
		}
		completions = append(completions, &completion)
	}
	return completions, rows.Err()
}
