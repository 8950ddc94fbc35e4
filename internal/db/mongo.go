package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fittrack/fittrack-backend/internal/config"
)

// Collection names. Relationships between them are implicit via the user_id
// field on every document.
const (
	CollExercises    = "exercises"
	CollFoodEntries  = "food_entries"
	CollGoals        = "goals"
	CollProgress     = "progress"
	CollAIInsights   = "ai_insights"
	CollStatusChecks = "status_checks"
)

func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURL).
		SetMaxPoolSize(25))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("database connection established")
	return client, nil
}
