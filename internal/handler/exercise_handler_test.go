package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fittrack/fittrack-backend/internal/domain"
)

func TestCreateExerciseAssignsServerFields(t *testing.T) {
	t.Parallel()

	store := &fakeExerciseStore{}
	h := NewExerciseHandler(store)

	body := `{"name":"Bench Press","type":"strength","sets":3,"reps":10,"weight":80}`
	req := authedRequest(http.MethodPost, "/api/exercises", strings.NewReader(body), "user-1")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got domain.Exercise
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID == "" {
		t.Fatal("expected server-generated id")
	}
	if got.UserID != "user-1" {
		t.Fatalf("expected user_id user-1, got %q", got.UserID)
	}
	if got.Date.IsZero() {
		t.Fatal("expected server-assigned date")
	}
	if got.Sets == nil || *got.Sets != 3 {
		t.Fatalf("unexpected sets: %v", got.Sets)
	}
}

func TestCreateExerciseOptionalFieldsStayAbsent(t *testing.T) {
	t.Parallel()

	store := &fakeExerciseStore{}
	h := NewExerciseHandler(store)

	req := authedRequest(http.MethodPost, "/api/exercises", strings.NewReader(`{"name":"Run","type":"cardio"}`), "user-1")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	stored := store.exercises[0]
	if stored.Sets != nil || stored.Reps != nil || stored.Weight != nil ||
		stored.Duration != nil || stored.Distance != nil || stored.CaloriesBurned != nil || stored.Notes != nil {
		t.Fatalf("optional fields should stay nil, got %+v", stored)
	}

	// The JSON body must carry null, not zero, for omitted numerics.
	var raw map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if raw["sets"] != nil {
		t.Fatalf("expected null sets, got %v", raw["sets"])
	}
}

func TestCreateExerciseRejectsMissingRequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"type":"strength"}`},
		{"missing type", `{"name":"Squat"}`},
		{"wrong type for sets", `{"name":"Squat","type":"strength","sets":"three"}`},
		{"not json", `not json`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeExerciseStore{}
			h := NewExerciseHandler(store)

			req := authedRequest(http.MethodPost, "/api/exercises", strings.NewReader(tc.body), "user-1")
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if len(store.exercises) != 0 {
				t.Fatal("nothing should be written on a validation failure")
			}
		})
	}
}

func TestListExercisesFiltersByUser(t *testing.T) {
	t.Parallel()

	store := &fakeExerciseStore{exercises: []domain.Exercise{
		{ID: "a", UserID: "user-1", Name: "Squat", Type: "strength"},
		{ID: "b", UserID: "user-2", Name: "Run", Type: "cardio"},
		{ID: "c", UserID: "user-1", Name: "Deadlift", Type: "strength"},
	}}
	h := NewExerciseHandler(store)

	req := authedRequest(http.MethodGet, "/api/exercises", nil, "user-1")
	rec := httptest.NewRecorder()

	h.List(rec, req)

	var got []domain.Exercise
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(got))
	}
	for _, e := range got {
		if e.UserID != "user-1" {
			t.Fatalf("leaked record for %q", e.UserID)
		}
	}
}

func TestListExercisesPagination(t *testing.T) {
	t.Parallel()

	var exercises []domain.Exercise
	for i := 0; i < 3; i++ {
		exercises = append(exercises, domain.Exercise{ID: string(rune('a' + i)), UserID: "user-1"})
	}
	h := NewExerciseHandler(&fakeExerciseStore{exercises: exercises})

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"limit zero yields empty", "/api/exercises?limit=0", 0},
		{"offset past end yields empty", "/api/exercises?offset=10", 0},
		{"limit above cap is clamped", "/api/exercises?limit=500", 3},
		{"limit applies", "/api/exercises?limit=2", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := authedRequest(http.MethodGet, tc.target, nil, "user-1")
			rec := httptest.NewRecorder()

			h.List(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var got []domain.Exercise
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("expected %d exercises, got %d", tc.want, len(got))
			}
		})
	}
}
