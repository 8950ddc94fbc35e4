package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/fittrack/fittrack-backend/internal/domain"
)

type StatusCheckStore interface {
	Create(ctx context.Context, s *domain.StatusCheck) error
	List(ctx context.Context) ([]domain.StatusCheck, error)
}

// StatusHandler serves the legacy status-check endpoints. No credential is
// required here.
type StatusHandler struct {
	store StatusCheckStore
}

func NewStatusHandler(store StatusCheckStore) *StatusHandler {
	return &StatusHandler{store: store}
}

func (h *StatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var create domain.StatusCheckCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := create.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	check := domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: create.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := h.store.Create(r.Context(), &check); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create status check")
		return
	}

	writeJSON(w, http.StatusCreated, check)
}

func (h *StatusHandler) List(w http.ResponseWriter, r *http.Request) {
	checks, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list status checks")
		return
	}
	if checks == nil {
		checks = []domain.StatusCheck{}
	}

	writeJSON(w, http.StatusOK, checks)
}
