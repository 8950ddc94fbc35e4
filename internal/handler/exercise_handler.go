package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack-backend/internal/domain"
	"github.com/fittrack/fittrack-backend/internal/middleware"
)

type ExerciseStore interface {
	Create(ctx context.Context, e *domain.Exercise) error
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]domain.Exercise, error)
}

type ExerciseHandler struct {
	store ExerciseStore
}

func NewExerciseHandler(store ExerciseStore) *ExerciseHandler {
	return &ExerciseHandler{store: store}
}

func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var create domain.ExerciseCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := create.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	exercise := domain.Exercise{
		ID:             uuid.NewString(),
		UserID:         middleware.UserID(r.Context()),
		Name:           create.Name,
		Type:           create.Type,
		Sets:           create.Sets,
		Reps:           create.Reps,
		Weight:         create.Weight,
		Duration:       create.Duration,
		Distance:       create.Distance,
		CaloriesBurned: create.CaloriesBurned,
		Notes:          create.Notes,
		Date:           time.Now().UTC(),
	}

	if err := h.store.Create(r.Context(), &exercise); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create exercise")
		return
	}

	writeJSON(w, http.StatusCreated, exercise)
}

func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	if limit == 0 {
		writeJSON(w, http.StatusOK, []domain.Exercise{})
		return
	}

	exercises, err := h.store.ListByUser(r.Context(), middleware.UserID(r.Context()), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list exercises")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}

	writeJSON(w, http.StatusOK, exercises)
}
