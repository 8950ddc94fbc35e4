package domain

import (
	"errors"
	"time"
)

// Exercise is a single logged workout activity. Optional fields stay nil when
// the client omits them; zero is a real value, not a default.
type Exercise struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	Name           string    `bson:"name" json:"name"`
	Type           string    `bson:"type" json:"type"`
	Sets           *int      `bson:"sets,omitempty" json:"sets"`
	Reps           *int      `bson:"reps,omitempty" json:"reps"`
	Weight         *float64  `bson:"weight,omitempty" json:"weight"`
	Duration       *int      `bson:"duration,omitempty" json:"duration"`
	Distance       *float64  `bson:"distance,omitempty" json:"distance"`
	CaloriesBurned *float64  `bson:"calories_burned,omitempty" json:"calories_burned"`
	Notes          *string   `bson:"notes,omitempty" json:"notes"`
	Date           time.Time `bson:"date" json:"date"`
}

// ExerciseCreate is the client-supplied shape; id, user_id and date are
// assigned by the server.
type ExerciseCreate struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	Sets           *int     `json:"sets"`
	Reps           *int     `json:"reps"`
	Weight         *float64 `json:"weight"`
	Duration       *int     `json:"duration"`
	Distance       *float64 `json:"distance"`
	CaloriesBurned *float64 `json:"calories_burned"`
	Notes          *string  `json:"notes"`
}

func (c *ExerciseCreate) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Type == "" {
		return errors.New("type is required")
	}
	return nil
}
