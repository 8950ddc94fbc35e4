package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/fittrack/fittrack-backend/internal/domain"
	"github.com/fittrack/fittrack-backend/internal/middleware"
)

// In-memory stores backing handler tests.

type fakeExerciseStore struct {
	exercises []domain.Exercise
	err       error
}

func (f *fakeExerciseStore) Create(_ context.Context, e *domain.Exercise) error {
	if f.err != nil {
		return f.err
	}
	f.exercises = append(f.exercises, *e)
	return nil
}

func (f *fakeExerciseStore) ListByUser(_ context.Context, userID string, limit, offset int64) ([]domain.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	var owned []domain.Exercise
	for _, e := range f.exercises {
		if e.UserID == userID {
			owned = append(owned, e)
		}
	}
	return paginate(owned, limit, offset), nil
}

type fakeFoodStore struct {
	entries []domain.FoodEntry
	err     error
}

func (f *fakeFoodStore) Create(_ context.Context, e *domain.FoodEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeFoodStore) ListByUser(_ context.Context, userID string, limit, offset int64) ([]domain.FoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var owned []domain.FoodEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			owned = append(owned, e)
		}
	}
	return paginate(owned, limit, offset), nil
}

func (f *fakeFoodStore) ListByUserInRange(_ context.Context, userID string, from, to time.Time) ([]domain.FoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var owned []domain.FoodEntry
	for _, e := range f.entries {
		if e.UserID == userID && !e.Date.Before(from) && e.Date.Before(to) {
			owned = append(owned, e)
		}
	}
	return owned, nil
}

type fakeGoalStore struct {
	goals []domain.Goal
	err   error
}

func (f *fakeGoalStore) Create(_ context.Context, g *domain.Goal) error {
	if f.err != nil {
		return f.err
	}
	f.goals = append(f.goals, *g)
	return nil
}

func (f *fakeGoalStore) ListByUser(_ context.Context, userID string, activeOnly bool) ([]domain.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	var owned []domain.Goal
	for _, g := range f.goals {
		if g.UserID != userID {
			continue
		}
		if activeOnly && !g.IsActive {
			continue
		}
		owned = append(owned, g)
	}
	return owned, nil
}

type fakeProgressStore struct {
	entries []domain.ProgressEntry
	err     error
}

func (f *fakeProgressStore) Create(_ context.Context, p *domain.ProgressEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, *p)
	return nil
}

func (f *fakeProgressStore) ListByUser(_ context.Context, userID, metricType string, limit int64) ([]domain.ProgressEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var owned []domain.ProgressEntry
	for _, p := range f.entries {
		if p.UserID != userID {
			continue
		}
		if metricType != "" && p.MetricType != metricType {
			continue
		}
		owned = append(owned, p)
	}
	return paginate(owned, limit, 0), nil
}

type fakeStatusStore struct {
	checks []domain.StatusCheck
	err    error
}

func (f *fakeStatusStore) Create(_ context.Context, s *domain.StatusCheck) error {
	if f.err != nil {
		return f.err
	}
	f.checks = append(f.checks, *s)
	return nil
}

func (f *fakeStatusStore) List(_ context.Context) ([]domain.StatusCheck, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.checks, nil
}

type fakeInsightStore struct {
	insights []domain.AIInsight
	err      error
}

func (f *fakeInsightStore) Create(_ context.Context, i *domain.AIInsight) error {
	if f.err != nil {
		return f.err
	}
	f.insights = append(f.insights, *i)
	return nil
}

func paginate[T any](items []T, limit, offset int64) []T {
	if offset >= int64(len(items)) {
		return nil
	}
	items = items[offset:]
	if limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}

// authedRequest builds a request carrying a resolved identity, as
// AuthMiddleware would.
func authedRequest(method, target string, body io.Reader, userID string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}
