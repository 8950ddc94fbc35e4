package domain

import (
	"errors"
	"time"
)

// InsightRequest asks the AI bridge for advice. user_data is free-form; the
// server injects the resolved user_id before dispatch.
type InsightRequest struct {
	RequestType string                 `json:"request_type"`
	UserData    map[string]interface{} `json:"user_data"`
}

func (r *InsightRequest) Validate() error {
	if r.RequestType == "" {
		return errors.New("request_type is required")
	}
	return nil
}

// Insight is what the bridge returns to the caller. Error is set when the
// provider call failed and Advice carries the fallback text.
type Insight struct {
	Type        string    `bson:"type" json:"type"`
	Advice      string    `bson:"advice" json:"advice"`
	Error       bool      `bson:"error,omitempty" json:"error,omitempty"`
	GeneratedAt time.Time `bson:"generated_at" json:"generated_at"`
}

// AIInsight is the persisted copy of a bridge result, failures included.
type AIInsight struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Type      string    `bson:"type" json:"type"`
	Insights  Insight   `bson:"insights" json:"insights"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
