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

type GoalStore interface {
	Create(ctx context.Context, g *domain.Goal) error
	ListByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Goal, error)
}

type GoalHandler struct {
	store GoalStore
}

func NewGoalHandler(store GoalStore) *GoalHandler {
	return &GoalHandler{store: store}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var create domain.GoalCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := create.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal := domain.Goal{
		ID:           uuid.NewString(),
		UserID:       middleware.UserID(r.Context()),
		Type:         create.Type,
		TargetValue:  *create.TargetValue,
		CurrentValue: *create.CurrentValue,
		Unit:         create.Unit,
		TargetDate:   create.TargetDate,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}

	if err := h.store.Create(r.Context(), &goal); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create goal")
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if raw := r.URL.Query().Get("active_only"); raw != "" {
		activeOnly = raw != "false"
	}

	goals, err := h.store.ListByUser(r.Context(), middleware.UserID(r.Context()), activeOnly)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list goals")
		return
	}
	if goals == nil {
		goals = []domain.Goal{}
	}

	writeJSON(w, http.StatusOK, goals)
}
