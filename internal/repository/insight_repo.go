package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fittrack/fittrack-backend/internal/db"
	"github.com/fittrack/fittrack-backend/internal/domain"
)

type InsightRepository struct {
	coll *mongo.Collection
}

func NewInsightRepository(database *mongo.Database) *InsightRepository {
	return &InsightRepository{coll: database.Collection(db.CollAIInsights)}
}

// Create persists a bridge result. Degraded fallback results are stored the
// same way as successful ones.
func (r *InsightRepository) Create(ctx context.Context, i *domain.AIInsight) error {
	if _, err := r.coll.InsertOne(ctx, i); err != nil {
		return fmt.Errorf("failed to create ai insight: %w", err)
	}
	return nil
}
