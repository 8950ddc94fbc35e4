package domain

import (
	"errors"
	"time"
)

// Goal is a fitness target. Goals are create-only; is_active is set true at
// creation and never mutated by any exposed operation.
type Goal struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Type         string    `bson:"type" json:"type"`
	TargetValue  float64   `bson:"target_value" json:"target_value"`
	CurrentValue float64   `bson:"current_value" json:"current_value"`
	Unit         string    `bson:"unit" json:"unit"`
	TargetDate   time.Time `bson:"target_date" json:"target_date"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
}

type GoalCreate struct {
	Type         string    `json:"type"`
	TargetValue  *float64  `json:"target_value"`
	CurrentValue *float64  `json:"current_value"`
	Unit         string    `json:"unit"`
	TargetDate   time.Time `json:"target_date"`
}

func (c *GoalCreate) Validate() error {
	if c.Type == "" {
		return errors.New("type is required")
	}
	if c.TargetValue == nil {
		return errors.New("target_value is required")
	}
	if c.CurrentValue == nil {
		return errors.New("current_value is required")
	}
	if c.Unit == "" {
		return errors.New("unit is required")
	}
	if c.TargetDate.IsZero() {
		return errors.New("target_date is required")
	}
	return nil
}
