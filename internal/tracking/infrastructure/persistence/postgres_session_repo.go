package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// PostgresSessionRepository implements domain.SessionRepository using
// PostgreSQL. The single-open-session constraint is enforced by a partial
// unique index over open rows, so concurrent starts lose at insert time.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository creates a new PostgreSQL session repository.
func NewPostgresSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// Create inserts a session. Inserting a second open session returns
// domain.ErrActiveSessionExists.
func (r *PostgresSessionRepository) Create(ctx context.Context, session *domain.FocusSession) error {
	query := `
		INSERT INTO focus_sessions (id, task_id, started_at, ended_at, duration_minutes, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.TaskID,
		session.StartedAt,
		session.EndedAt,
		session.DurationMinutes,
		session.Notes,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return domain.ErrActiveSessionExists
	}
	return err
}

// Update persists the session's end state.
func (r *PostgresSessionRepository) Update(ctx context.Context, session *domain.FocusSession) error {
	query := `
		UPDATE focus_sessions
		SET ended_at = $2, duration_minutes = $3, notes = $4
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		session.ID,
		session.EndedAt,
		session.DurationMinutes,
		session.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetOpen returns the currently open session, or ErrNotFound.
func (r *PostgresSessionRepository) GetOpen(ctx context.Context) (*domain.FocusSession, error) {
	query := `
		SELECT id, task_id, started_at, ended_at, duration_minutes, notes
		FROM focus_sessions
		WHERE ended_at IS NULL
	`
	return scanPgSession(r.pool.QueryRow(ctx, query))
}

// GetByDay returns sessions started on a calendar day, oldest first.
func (r *PostgresSessionRepository) GetByDay(ctx context.Context, day time.Time) ([]*domain.FocusSession, error) {
	lo, hi := dayBounds(day)
	query := `
		SELECT id, task_id, started_at, ended_at, duration_minutes, notes
		FROM focus_sessions
		WHERE started_at >= $1 AND started_at < $2
		ORDER BY started_at ASC
	`
	rows, err := r.pool.Query(ctx, query, lo, hi)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPgSessions(rows)
}

// GetByTask returns sessions bound to a task, oldest first.
func (r *PostgresSessionRepository) GetByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.FocusSession, error) {
	query := `
		SELECT id, task_id, started_at, ended_at, duration_minutes, notes
		FROM focus_sessions
		WHERE task_id = $1
		ORDER BY started_at ASC
	`
	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPgSessions(rows)
}

func scanPgSession(row pgx.Row) (*domain.FocusSession, error) {
	var session domain.FocusSession
	err := row.Scan(
		&session.ID,
		&session.TaskID,
		&session.StartedAt,
		&session.EndedAt,
		&session.DurationMinutes,
		&session.Notes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func collectPgSessions(rows pgx.Rows) ([]*domain.FocusSession, error) {
	var sessions []*domain.FocusSession
	for rows.Next() {
		session, err := scanPgSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}
