package commands

import (
	"context"
	"sync"
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
	latest := entries[0]
	for _, e := range entries[1:] {
		if e.CreatedAt.After(latest.CreatedAt) {
			latest = e
		}
	}
	return latest, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions []*domain.FocusSession
}

func (r *fakeSessionRepo) Create(_ context.Context, session *domain.FocusSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.sessions {
		if s.ID == session.ID {
			r.sessions[i] = session
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSessionRepo) GetOpen(_ context.Context) (*domain.FocusSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.IsOpen() {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSessionRepo) GetByDay(_ context.Context, day time.Time) ([]*domain.FocusSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.FocusSession
	for _, s := range r.sessions {
		if s.StartedOn(day) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) GetByTask(_ context.Context, taskID uuid.UUID) ([]*domain.FocusSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.FocusSession
	for _, s := range r.sessions {
		if s.TaskID != nil && *s.TaskID == taskID {
			out = append(out, s)
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

// capturePublisher records published routing keys and payloads.
type capturePublisher struct {
	keys     []string
	payloads [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, routingKey string, payload []byte) error {
	p.keys = append(p.keys, routingKey)
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *capturePublisher) Close() error { return nil }
