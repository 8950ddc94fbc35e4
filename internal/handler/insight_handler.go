package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fittrack/fittrack-backend/internal/domain"
	"github.com/fittrack/fittrack-backend/internal/middleware"
)

type InsightGenerator interface {
	Generate(ctx context.Context, userID string, req *domain.InsightRequest) domain.Insight
}

type InsightStore interface {
	Create(ctx context.Context, i *domain.AIInsight) error
}

type InsightHandler struct {
	generator InsightGenerator
	store     InsightStore
}

func NewInsightHandler(generator InsightGenerator, store InsightStore) *InsightHandler {
	return &InsightHandler{generator: generator, store: store}
}

// Create runs the advisory bridge. Provider failures never fail the request;
// the degraded result is persisted and returned with 200 like any other.
func (h *InsightHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.InsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := middleware.UserID(r.Context())
	insight := h.generator.Generate(r.Context(), userID, &req)

	record := domain.AIInsight{
		UserID:    userID,
		Type:      req.RequestType,
		Insights:  insight,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.Create(r.Context(), &record); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store insight")
		return
	}

	writeJSON(w, http.StatusOK, insight)
}
