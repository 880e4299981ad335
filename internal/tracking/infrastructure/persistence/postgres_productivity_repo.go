package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// PostgresProductivityRepository implements domain.ProductivityRepository
// using PostgreSQL.
type PostgresProductivityRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductivityRepository creates a new PostgreSQL productivity
// repository.
func NewPostgresProductivityRepository(pool *pgxpool.Pool) *PostgresProductivityRepository {
	return &PostgresProductivityRepository{pool: pool}
}

// Upsert inserts or overwrites the entry for its date.
func (r *PostgresProductivityRepository) Upsert(ctx context.Context, entry *domain.ProductivityEntry) error {
	query := `
		INSERT INTO productivity_entries (
			date, productivity_score, tasks_completed, tasks_total,
			avg_mood_score, focus_hours, notes, computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (date) DO UPDATE SET
			productivity_score = EXCLUDED.productivity_score,
			tasks_completed = EXCLUDED.tasks_completed,
			tasks_total = EXCLUDED.tasks_total,
			avg_mood_score = EXCLUDED.avg_mood_score,
			focus_hours = EXCLUDED.focus_hours,
			notes = EXCLUDED.notes,
			computed_at = EXCLUDED.computed_at
	`
	_, err := r.pool.Exec(ctx, query,
		entry.Date,
		entry.Score,
		entry.TasksCompleted,
		entry.TasksTotal,
		entry.AvgMoodScore,
		entry.FocusHours,
		entry.Notes,
		entry.ComputedAt,
	)
	return err
}

// GetByDate returns the entry for a calendar day.
func (r *PostgresProductivityRepository) GetByDate(ctx context.Context, day time.Time) (*domain.ProductivityEntry, error) {
	query := `
		SELECT date, productivity_score, tasks_completed, tasks_total,
			avg_mood_score, focus_hours, notes, computed_at
		FROM productivity_entries
		WHERE date = $1
	`
	return scanPgProductivityEntry(r.pool.QueryRow(ctx, query, domain.DayOf(day)))
}

// GetByDateRange returns entries within [start, end] days, oldest first.
func (r *PostgresProductivityRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.ProductivityEntry, error) {
	query := `
		SELECT date, productivity_score, tasks_completed, tasks_total,
			avg_mood_score, focus_hours, notes, computed_at
		FROM productivity_entries
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`
	rows, err := r.pool.Query(ctx, query, domain.DayOf(start), domain.DayOf(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ProductivityEntry
	for rows.Next() {
		entry, err := scanPgProductivityEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanPgProductivityEntry(row pgx.Row) (*domain.ProductivityEntry, error) {
	var entry domain.ProductivityEntry
	err := row.Scan(
		&entry.Date,
		&entry.Score,
		&entry.TasksCompleted,
		&entry.TasksTotal,
		&entry.AvgMoodScore,
		&entry.FocusHours,
		&entry.Notes,
		&entry.ComputedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
