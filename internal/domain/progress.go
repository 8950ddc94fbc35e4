package domain

import (
	"errors"
	"time"
)

// ProgressEntry is one body-metric measurement (weight, body_fat, muscle_mass).
type ProgressEntry struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	MetricType string    `bson:"metric_type" json:"metric_type"`
	Value      float64   `bson:"value" json:"value"`
	Unit       string    `bson:"unit" json:"unit"`
	Date       time.Time `bson:"date" json:"date"`
}

type ProgressCreate struct {
	MetricType string   `json:"metric_type"`
	Value      *float64 `json:"value"`
	Unit       string   `json:"unit"`
}

func (c *ProgressCreate) Validate() error {
	if c.MetricType == "" {
		return errors.New("metric_type is required")
	}
	if c.Value == nil {
		return errors.New("value is required")
	}
	if c.Unit == "" {
		return errors.New("unit is required")
	}
	return nil
}
