package persistence

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// SQLiteSessionRepository implements domain.SessionRepository using SQLite.
//
// The single-open-session invariant is enforced by a unique index on
// open_marker: open rows carry 1, closed rows carry NULL, and NULLs do not
// collide. Create is therefore atomic with respect to concurrent starts.
type SQLiteSessionRepository struct {
	db *sql.DB
}

// NewSQLiteSessionRepository creates a new SQLite session repository.
func NewSQLiteSessionRepository(db *sql.DB) *SQLiteSessionRepository {
	return &SQLiteSessionRepository{db: db}
}

// Create inserts a new session. Inserting an open session while another is
// open fails with domain.ErrActiveSessionExists.
func (r *SQLiteSessionRepository) Create(ctx context.Context, session *domain.FocusSession) error {
	query := `
		INSERT INTO focus_sessions (id, task_id, started_at, ended_at, duration_minutes, notes, open_marker)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	taskID, endedAt, duration := sessionNullables(session)
	var openMarker sql.NullInt32
	if session.IsOpen() {
		openMarker = sql.NullInt32{Int32: 1, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		session.ID.String(),
		taskID,
		session.StartedAt.Format(time.RFC3339),
		endedAt,
		duration,
		session.Notes,
		openMarker,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrActiveSessionExists
	}
	return err
}

// Update persists the session's end state and clears the open marker.
func (r *SQLiteSessionRepository) Update(ctx context.Context, session *domain.FocusSession) error {
	query := `
		UPDATE focus_sessions SET
			ended_at = ?, duration_minutes = ?, notes = ?, open_marker = ?
		WHERE id = ?
	`

	_, endedAt, duration := sessionNullables(session)
	var openMarker sql.NullInt32
	if session.IsOpen() {
		openMarker = sql.NullInt32{Int32: 1, Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		endedAt,
		duration,
		session.Notes,
		openMarker,
		session.ID.String(),
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetOpen returns the currently open session.
func (r *SQLiteSessionRepository) GetOpen(ctx context.Context) (*domain.FocusSession, error) {
	query := `
		SELECT id, task_id, started_at, ended_at, duration_minutes, notes
		FROM focus_sessions
		WHERE ended_at IS NULL
		LIMIT 1
	`
	row := r.db.QueryRowContext(ctx, query)
	return scanSession(row)
}

// GetByDay returns sessions started on the given calendar day.
func (r *SQLiteSessionRepository) GetByDay(ctx context.Context, day time.Time) ([]*domain.FocusSession, error) {
	startStr, endStr := dayWindow(day)

	query := `
		SELECT id, task_id, started_at, ended_at, duration_minutes, notes
		FROM focus_sessions
		WHERE started_at >= ? AND started_at < ?
		ORDER BY started_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, startStr, endStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

// GetByTask returns all sessions bound to a task, newest first.
func (r *SQLiteSessionRepository) GetByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.FocusSession, error) {
	query := `
		SELECT id, task_id, started_at, ended_at, duration_minutes, notes
		FROM focus_sessions
		WHERE task_id = ?
		ORDER BY started_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, taskID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

func sessionNullables(session *domain.FocusSession) (sql.NullString, sql.NullString, sql.NullFloat64) {
	var taskID, endedAt sql.NullString
	var duration sql.NullFloat64

	if session.TaskID != nil {
		taskID = sql.NullString{String: session.TaskID.String(), Valid: true}
	}
	if session.EndedAt != nil {
		endedAt = sql.NullString{String: session.EndedAt.Format(time.RFC3339), Valid: true}
	}
	if session.DurationMinutes != nil {
		duration = sql.NullFloat64{Float64: *session.DurationMinutes, Valid: true}
	}
	return taskID, endedAt, duration
}

func scanSession(row rowScanner) (*domain.FocusSession, error) {
	var (
		id, startedAt, notes string
		taskID, endedAt      sql.NullString
		duration             sql.NullFloat64
	)
	err := row.Scan(&id, &taskID, &startedAt, &endedAt, &duration, &notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	session := &domain.FocusSession{Notes: notes}
	if session.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if session.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
		return nil, err
	}
	if taskID.Valid {
		parsed, err := uuid.Parse(taskID.String)
		if err != nil {
			return nil, err
		}
		session.TaskID = &parsed
	}
	if endedAt.Valid {
		ended, err := time.Parse(time.RFC3339, endedAt.String)
		if err != nil {
			return nil, err
		}
		session.EndedAt = &ended
	}
	if duration.Valid {
		session.DurationMinutes = &duration.Float64
	}
	return session, nil
}

func scanSessions(rows *sql.Rows) ([]*domain.FocusSession, error) {
	var sessions []*domain.FocusSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}
