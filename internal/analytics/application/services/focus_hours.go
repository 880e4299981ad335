package services

import (
	"context"
	"time"

	"github.com/ariahq/aria/internal/tracking/domain"
)

// FocusHoursService aggregates tracked session time. Only closed sessions
// count: an open session has no duration yet.
type FocusHoursService struct {
	sessions domain.SessionRepository
}

// NewFocusHoursService creates a new FocusHoursService.
func NewFocusHoursService(sessions domain.SessionRepository) *FocusHoursService {
	return &FocusHoursService{sessions: sessions}
}

// DailyFocusHours returns the tracked hours of a calendar day.
func (s *FocusHoursService) DailyFocusHours(ctx context.Context, day time.Time) (float64, error) {
	sessions, err := s.sessions.GetByDay(ctx, day)
	if err != nil {
		return 0, err
	}
	var minutes float64
	for _, session := range sessions {
		if session.DurationMinutes != nil {
			minutes += *session.DurationMinutes
		}
	}
	return minutes / 60, nil
}

// WeeklyFocusHours returns the tracked hours per day for the 7 days starting
// at weekStart, keyed by date (2006-01-02). Days without sessions map to 0.
func (s *FocusHoursService) WeeklyFocusHours(ctx context.Context, weekStart time.Time) (map[string]float64, error) {
	start := domain.DayOf(weekStart)
	week := make(map[string]float64, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		hours, err := s.DailyFocusHours(ctx, day)
		if err != nil {
			return nil, err
		}
		week[day.Format("2006-01-02")] = hours
	}
	return week, nil
}
