package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack-backend/internal/domain"
	"github.com/fittrack/fittrack-backend/internal/middleware"
	"github.com/fittrack/fittrack-backend/internal/service"
)

type FoodEntryStore interface {
	Create(ctx context.Context, e *domain.FoodEntry) error
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]domain.FoodEntry, error)
	ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.FoodEntry, error)
}

type NutritionHandler struct {
	store FoodEntryStore
}

func NewNutritionHandler(store FoodEntryStore) *NutritionHandler {
	return &NutritionHandler{store: store}
}

func (h *NutritionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var create domain.FoodEntryCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := create.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry := domain.FoodEntry{
		ID:          uuid.NewString(),
		UserID:      middleware.UserID(r.Context()),
		FoodName:    create.FoodName,
		ServingSize: *create.ServingSize,
		ServingUnit: create.ServingUnit,
		Macros:      create.Macros,
		MealType:    create.MealType,
		Date:        time.Now().UTC(),
	}

	if err := h.store.Create(r.Context(), &entry); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create food entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *NutritionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	if limit == 0 {
		writeJSON(w, http.StatusOK, []domain.FoodEntry{})
		return
	}

	entries, err := h.store.ListByUser(r.Context(), middleware.UserID(r.Context()), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list food entries")
		return
	}
	if entries == nil {
		entries = []domain.FoodEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}

// Search looks up the static food table; it does not touch the store and
// needs no credential.
func (h *NutritionHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if len(query) < 2 {
		writeError(w, http.StatusBadRequest, "query must be at least 2 characters")
		return
	}

	writeJSON(w, http.StatusOK, service.SearchFoods(query))
}
