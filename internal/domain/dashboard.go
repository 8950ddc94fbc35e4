package domain

import "time"

// Dashboard is the composite read returned by GET /api/dashboard.
type Dashboard struct {
	RecentExercises []Exercise      `json:"recent_exercises"`
	RecentNutrition []FoodEntry     `json:"recent_nutrition"`
	ActiveGoals     []Goal          `json:"active_goals"`
	RecentProgress  []ProgressEntry `json:"recent_progress"`
	DailyMacros     DailyMacros     `json:"daily_macros"`
	GeneratedAt     time.Time       `json:"dashboard_generated_at"`
}
