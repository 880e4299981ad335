package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// SQLiteMoodRepository implements domain.MoodRepository using SQLite.
type SQLiteMoodRepository struct {
	db *sql.DB
}

// NewSQLiteMoodRepository creates a new SQLite mood repository.
func NewSQLiteMoodRepository(db *sql.DB) *SQLiteMoodRepository {
	return &SQLiteMoodRepository{db: db}
}

// Create inserts a mood entry.
func (r *SQLiteMoodRepository) Create(ctx context.Context, entry *domain.MoodEntry) error {
	query := `INSERT INTO mood_entries (id, score, text, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID.String(),
		entry.Score,
		entry.Text,
		entry.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// GetByDateRange returns entries created within [start, end] calendar days.
func (r *SQLiteMoodRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.MoodEntry, error) {
	startStr, _ := dayWindow(start)
	_, endStr := dayWindow(end)

	query := `
		SELECT id, score, text, created_at
		FROM mood_entries
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, startStr, endStr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.MoodEntry
	for rows.Next() {
		entry, err := scanMoodEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// GetLatestForDay returns the most recent entry of a calendar day.
func (r *SQLiteMoodRepository) GetLatestForDay(ctx context.Context, day time.Time) (*domain.MoodEntry, error) {
	startStr, endStr := dayWindow(day)

	query := `
		SELECT id, score, text, created_at
		FROM mood_entries
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at DESC
		LIMIT 1
	`
	row := r.db.QueryRowContext(ctx, query, startStr, endStr)
	return scanMoodEntry(row)
}

func scanMoodEntry(row rowScanner) (*domain.MoodEntry, error) {
	var (
		id, text, createdAt string
		score               int
	)
	err := row.Scan(&id, &score, &text, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	entry := &domain.MoodEntry{Score: score, Text: text}
	if entry.ID, err = uuid.Parse(id); err != nil {
		return nil, err
	}
	if entry.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, err
	}
	return entry, nil
}
