package handler

import (
	"net/http"
	"time"

	"github.com/fittrack/fittrack-backend/internal/domain"
	"github.com/fittrack/fittrack-backend/internal/middleware"
)

// DashboardHandler assembles the composite overview from the per-entity
// stores. Every call recomputes from the store; nothing is cached.
type DashboardHandler struct {
	exercises ExerciseStore
	food      FoodEntryStore
	goals     GoalStore
	progress  ProgressStore
}

func NewDashboardHandler(exercises ExerciseStore, food FoodEntryStore, goals GoalStore, progress ProgressStore) *DashboardHandler {
	return &DashboardHandler{
		exercises: exercises,
		food:      food,
		goals:     goals,
		progress:  progress,
	}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.UserID(ctx)
	now := time.Now().UTC()

	recentExercises, err := h.exercises.ListByUser(ctx, userID, 5, 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	recentNutrition, err := h.food.ListByUser(ctx, userID, 10, 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	activeGoals, err := h.goals.ListByUser(ctx, userID, true)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	recentProgress, err := h.progress.ListByUser(ctx, userID, "", 10)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	// Today is the UTC calendar day: inclusive of midnight, exclusive of the
	// next one.
	dayStart := now.Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)
	todayEntries, err := h.food.ListByUserInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	if recentExercises == nil {
		recentExercises = []domain.Exercise{}
	}
	if recentNutrition == nil {
		recentNutrition = []domain.FoodEntry{}
	}
	if activeGoals == nil {
		activeGoals = []domain.Goal{}
	}
	if recentProgress == nil {
		recentProgress = []domain.ProgressEntry{}
	}

	writeJSON(w, http.StatusOK, domain.Dashboard{
		RecentExercises: recentExercises,
		RecentNutrition: recentNutrition,
		ActiveGoals:     activeGoals,
		RecentProgress:  recentProgress,
		DailyMacros:     domain.SumMacros(todayEntries),
		GeneratedAt:     now,
	})
}
