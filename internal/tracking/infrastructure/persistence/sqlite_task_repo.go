// Package persistence contains the SQLite and PostgreSQL implementations of
// the tracking repositories.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// SQLiteTaskRepository implements domain.TaskRepository using SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// Save inserts or updates a task.
func (r *SQLiteTaskRepository) Save(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, title, priority, due_date, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			priority = excluded.priority,
			due_date = excluded.due_date,
			status = excluded.status,
			updated_at = excluded.updated_at
	`

	var dueDate sql.NullString
	if task.DueDate != nil {
		dueDate = sql.NullString{String: task.DueDate.Format("2006-01-02"), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		task.ID.String(),
		task.Title,
		task.Priority,
		dueDate,
		string(task.Status),
		task.CreatedAt.Format(time.RFC3339),
		task.UpdatedAt.Format(time.RFC3339),
	)
	return err
}

// GetByID retrieves a task by ID.
func (r *SQLiteTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT id, title, priority, due_date, status, created_at, updated_at
		FROM tasks
		WHERE id = ?
	`
	row := r.db.QueryRowContext(ctx, query, id.String())
	return scanTask(row)
}

// GetAll retrieves tasks, optionally filtered by status.
func (r *SQLiteTaskRepository) GetAll(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error) {
	query := `
		SELECT id, title, priority, due_date, status, created_at, updated_at
		FROM tasks
	`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Delete removes a task.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		id, title, status, createdAt, updatedAt string
		priority                                int
		dueDate                                 sql.NullString
	)
	err := row.Scan(&id, &title, &priority, &dueDate, &status, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		Title:    title,
		Priority: priority,
		Status:   domain.TaskStatus(status),
	}
	if task.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if task.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, err
	}
	if dueDate.Valid {
		due, err := time.ParseInLocation("2006-01-02", dueDate.String, time.Local)
		if err != nil {
			return nil, err
		}
		task.DueDate = &due
	}
	return task, nil
}

// dayWindow returns the RFC3339 bounds [start, end) of a calendar day.
func dayWindow(day time.Time) (string, string) {
	start := domain.DayOf(day)
	end := start.AddDate(0, 0, 1)
	return start.Format(time.RFC3339), end.Format(time.RFC3339)
}
