package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ariahq/aria/internal/tracking/domain"
)

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (r *fakeTaskRepo) Save(_ context.Context, task *domain.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

func (r *fakeTaskRepo) GetAll(_ context.Context, status domain.TaskStatus) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range r.tasks {
		if status == "" || task.Status == status {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

type fakeMoodRepo struct {
	entries []*domain.MoodEntry
}

func (r *fakeMoodRepo) Create(_ context.Context, entry *domain.MoodEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeMoodRepo) GetByDateRange(_ context.Context, start, end time.Time) ([]*domain.MoodEntry, error) {
	lo := domain.DayOf(start)
	hi := domain.DayOf(end).AddDate(0, 0, 1)
	var out []*domain.MoodEntry
	for _, e := range r.entries {
		if !e.CreatedAt.Before(lo) && e.CreatedAt.Before(hi) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeMoodRepo) GetLatestForDay(ctx context.Context, day time.Time) (*domain.MoodEntry, error) {
	entries, err := r.GetByDateRange(ctx, day, day)
	if err != nil || len(entries) == 0 {
		return nil, domain.ErrNotFound
	}
	return entries[len(entries)-1], nil
}

type fakeSessionRepo struct {
	sessions []*domain.FocusSession
}

func (r *fakeSessionRepo) Create(_ context.Context, session *domain.FocusSession) error {
	if session.IsOpen() {
		for _, s := range r.sessions {
			if s.IsOpen() {
				return domain.ErrActiveSessionExists
			}
		}
	}
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, session *domain.FocusSession) error {
	for i, s := range r.sessions {
		if s.ID == session.ID {
			r.sessions[i] = session
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSessionRepo) GetOpen(_ context.Context) (*domain.FocusSession, error) {
	for _, s := range r.sessions {
		if s.IsOpen() {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSessionRepo) GetByDay(_ context.Context, day time.Time) ([]*domain.FocusSession, error) {
	var out []*domain.FocusSession
	for _, s := range r.sessions {
		if s.StartedOn(day) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) GetByTask(_ context.Context, taskID uuid.UUID) ([]*domain.FocusSession, error) {
	var out []*domain.FocusSession
	for _, s := range r.sessions {
		if s.TaskID != nil && *s.TaskID == taskID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeCompletionRepo struct {
	completions []*domain.TaskCompletion
}

func (r *fakeCompletionRepo) Create(_ context.Context, completion *domain.TaskCompletion) error {
	r.completions = append(r.completions, completion)
	return nil
}

func (r *fakeCompletionRepo) GetByDay(_ context.Context, day time.Time) ([]*domain.TaskCompletion, error) {
	lo := domain.DayOf(day)
	hi := lo.AddDate(0, 0, 1)
	var out []*domain.TaskCompletion
	for _, c := range r.completions {
		if !c.CompletedAt.Before(lo) && c.CompletedAt.Before(hi) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompletionRepo) GetByTask(_ context.Context, taskID uuid.UUID) ([]*domain.TaskCompletion, error) {
	var out []*domain.TaskCompletion
	for _, c := range r.completions {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeProductivityRepo struct {
	entries map[string]*domain.ProductivityEntry
}

func newFakeProductivityRepo() *fakeProductivityRepo {
	return &fakeProductivityRepo{entries: make(map[string]*domain.ProductivityEntry)}
}

func (r *fakeProductivityRepo) Upsert(_ context.Context, entry *domain.ProductivityEntry) error {
	r.entries[entry.Date.Format("2006-01-02")] = entry
	return nil
}

func (r *fakeProductivityRepo) GetByDate(_ context.Context, day time.Time) (*domain.ProductivityEntry, error) {
	entry, ok := r.entries[domain.DayOf(day).Format("2006-01-02")]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (r *fakeProductivityRepo) GetByDateRange(_ context.Context, start, end time.Time) ([]*domain.ProductivityEntry, error) {
	var out []*domain.ProductivityEntry
	for day := domain.DayOf(start); !day.After(domain.DayOf(end)); day = day.AddDate(0, 0, 1) {
		if entry, ok := r.entries[day.Format("2006-01-02")]; ok {
			out = append(out, entry)
		}
	}
	return out, nil
}
