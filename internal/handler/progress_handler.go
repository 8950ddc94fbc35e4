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

type ProgressStore interface {
	Create(ctx context.Context, p *domain.ProgressEntry) error
	ListByUser(ctx context.Context, userID, metricType string, limit int64) ([]domain.ProgressEntry, error)
}

type ProgressHandler struct {
	store ProgressStore
}

func NewProgressHandler(store ProgressStore) *ProgressHandler {
	return &ProgressHandler{store: store}
}

func (h *ProgressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var create domain.ProgressCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := create.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry := domain.ProgressEntry{
		ID:         uuid.NewString(),
		UserID:     middleware.UserID(r.Context()),
		MetricType: create.MetricType,
		Value:      *create.Value,
		Unit:       create.Unit,
		Date:       time.Now().UTC(),
	}

	if err := h.store.Create(r.Context(), &entry); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create progress entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	metricType := r.URL.Query().Get("metric_type")

	entries, err := h.store.ListByUser(r.Context(), middleware.UserID(r.Context()), metricType, 100)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list progress entries")
		return
	}
	if entries == nil {
		entries = []domain.ProgressEntry{}
	}

	writeJSON(w, http.StatusOK, entries)
}
