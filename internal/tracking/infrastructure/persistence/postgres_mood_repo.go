package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// PostgresMoodRepository implements domain.MoodRepository using PostgreSQL.
type PostgresMoodRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMoodRepository creates a new PostgreSQL mood repository.
func NewPostgresMoodRepository(pool *pgxpool.Pool) *PostgresMoodRepository {
	return &PostgresMoodRepository{pool: pool}
}

// Create appends a mood entry.
func (r *PostgresMoodRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	query := `
		INSERT INTO mood_entries (id, score, text, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, entry.ID, entry.Score, entry.Text, entry.CreatedAt)
	return err
}

// GetByDateRange returns entries logged within [start, end] days, oldest first.
func (r *PostgresMoodRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.MoodEntry, error) {
	lo, _ := dayBounds(start)
	_, hi := dayBounds(end)

	query := `
		SELECT id, score, text, created_at
		FROM mood_entries
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, lo, hi)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.MoodEntry
	for rows.Next() {
		entry, err := scanPgMoodEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// GetLatestForDay returns the most recent entry of a calendar day.
func (r *PostgresMoodRepository) GetLatestForDay(ctx context.Context, day time.Time) (*domain.MoodEntry, error) {
	lo, hi := dayBounds(day)
	query := `
		SELECT id, score, text, created_at
		FROM mood_entries
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanPgMoodEntry(r.pool.QueryRow(ctx, query, lo, hi))
}

func scanPgMoodEntry(row pgx.Row) (*domain.MoodEntry, error) {
	var entry domain.MoodEntry
	err := row.Scan(&entry.ID, &entry.Score, &entry.Text, &entry.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
