package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// SQLiteProductivityRepository implements domain.ProductivityRepository
// using SQLite. Entries are keyed by calendar date; Upsert overwrites in
// place.
type SQLiteProductivityRepository struct {
	db *sql.DB
}

// NewSQLiteProductivityRepository creates a new SQLite productivity
// repository.
func NewSQLiteProductivityRepository(db *sql.DB) *SQLiteProductivityRepository {
	return &SQLiteProductivityRepository{db: db}
}

// Upsert inserts or overwrites the entry for its date.
func (r *SQLiteProductivityRepository) Upsert(ctx context.Context, entry *domain.ProductivityEntry) error {
	query := `
		INSERT INTO productivity_entries (
			date, productivity_score, tasks_completed, tasks_total,
			avg_mood_score, focus_hours, notes, computed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			productivity_score = excluded.productivity_score,
			tasks_completed = excluded.tasks_completed,
			tasks_total = excluded.tasks_total,
			avg_mood_score = excluded.avg_mood_score,
			focus_hours = excluded.focus_hours,
			notes = excluded.notes,
			computed_at = excluded.computed_at
	`

	var avgMood sql.NullFloat64
	if entry.AvgMoodScore != nil {
		avgMood = sql.NullFloat64{Float64: *entry.AvgMoodScore, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		entry.Date.Format("2006-01-02"),
		entry.Score,
		entry.TasksCompleted,
		entry.TasksTotal,
		avgMood,
		entry.FocusHours,
		entry.Notes,
		entry.ComputedAt.Format(time.RFC3339),
	)
	return err
}

// GetByDate returns the entry for a calendar day.
func (r *SQLiteProductivityRepository) GetByDate(ctx context.Context, day time.Time) (*domain.ProductivityEntry, error) {
	query := `
		SELECT date, productivity_score, tasks_completed, tasks_total,
			avg_mood_score, focus_hours, notes, computed_at
		FROM productivity_entries
		WHERE date = ?
	`
	row := r.db.QueryRowContext(ctx, query, domain.DayOf(day).Format("2006-01-02"))
	return scanProductivityEntry(row)
}

// GetByDateRange returns entries within [start, end] days, oldest first.
func (r *SQLiteProductivityRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.ProductivityEntry, error) {
	query := `
		SELECT date, productivity_score, tasks_completed, tasks_total,
			avg_mood_score, focus_hours, notes, computed_at
		FROM productivity_entries
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC
	`
	rows, err := r.db.QueryContext(ctx, query,
		domain.DayOf(start).Format("2006-01-02"),
		domain.DayOf(end).Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.ProductivityEntry
	for rows.Next() {
		entry, err := scanProductivityEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanProductivityEntry(row rowScanner) (*domain.ProductivityEntry, error) {
	var (
		date, notes, computedAt string
		score, focusHours       float64
		completed, total        int
		avgMood                 sql.NullFloat64
	)
	err := row.Scan(&date, &score, &completed, &total, &avgMood, &focusHours, &notes, &computedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	entry := &domain.ProductivityEntry{
		Score:          score,
		TasksCompleted: completed,
		TasksTotal:     total,
		FocusHours:     focusHours,
		Notes:          notes,
	}
	if entry.Date, err = time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		return nil, err
	}
	if entry.ComputedAt, err = time.Parse(time.RFC3339, computedAt); err != nil {
		return nil, err
	}
	if avgMood.Valid {
		entry.AvgMoodScore = &avgMood.Float64
	}
	return entry, nil
}
