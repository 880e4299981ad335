package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariahq/aria/internal/tracking/domain"
)

type stubSessionRepo struct {
	byDay map[string][]*domain.FocusSession
}

func (r *stubSessionRepo) Create(context.Context, *domain.FocusSession) error { return nil }
func (r *stubSessionRepo) Update(context.Context, *domain.FocusSession) error { return nil }
func (r *stubSessionRepo) GetOpen(context.Context) (*domain.FocusSession, error) {
	return nil, domain.ErrNotFound
}
func (r *stubSessionRepo) GetByTask(context.Context, uuid.UUID) ([]*domain.FocusSession, error) {
	return nil, nil
}

func (r *stubSessionRepo) GetByDay(_ context.Context, day time.Time) ([]*domain.FocusSession, error) {
	return r.byDay[domain.DayOf(day).Format("2006-01-02")], nil
}

func closedSession(day time.Time, minutes float64) *domain.FocusSession {
	ended := day.Add(10 * time.Hour)
	return &domain.FocusSession{
		ID:              uuid.New(),
		StartedAt:       day.Add(9 * time.Hour),
		EndedAt:         &ended,
		DurationMinutes: &minutes,
	}
}

func TestFocusHoursService_Daily(t *testing.T) {
	day := domain.DayOf(time.Now())
	repo := &stubSessionRepo{byDay: map[string][]*domain.FocusSession{
		day.Format("2006-01-02"): {
			closedSession(day, 90),
			closedSession(day, 30),
			// Open session, no duration yet.
			{ID: uuid.New(), StartedAt: day.Add(14 * time.Hour)},
		},
	}}

	hours, err := NewFocusHoursService(repo).DailyFocusHours(context.Background(), day)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, hours, 1e-9)
}

func TestFocusHoursService_Weekly(t *testing.T) {
	weekStart := domain.DayOf(time.Now()).AddDate(0, 0, -6)
	tracked := weekStart.AddDate(0, 0, 2)
	repo := &stubSessionRepo{byDay: map[string][]*domain.FocusSession{
		weekStart.Format("2006-01-02"): {closedSession(weekStart, 60)},
		tracked.Format("2006-01-02"):   {closedSession(tracked, 90), closedSession(tracked, 30)},
	}}

	week, err := NewFocusHoursService(repo).WeeklyFocusHours(context.Background(), weekStart)
	require.NoError(t, err)

	// One bucket per day of the week, untracked days at zero.
	require.Len(t, week, 7)
	assert.InDelta(t, 1.0, week[weekStart.Format("2006-01-02")], 1e-9)
	assert.InDelta(t, 2.0, week[tracked.Format("2006-01-02")], 1e-9)
	assert.Zero(t, week[weekStart.AddDate(0, 0, 6).Format("2006-01-02")])
}

func TestFocusHoursService_EmptyDay(t *testing.T) {
	repo := &stubSessionRepo{byDay: map[string][]*domain.FocusSession{}}
	hours, err := NewFocusHoursService(repo).DailyFocusHours(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, hours)
}
