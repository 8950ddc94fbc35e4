package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fittrack/fittrack-backend/internal/db"
	"github.com/fittrack/fittrack-backend/internal/domain"
)

type ProgressRepository struct {
	coll *mongo.Collection
}

func NewProgressRepository(database *mongo.Database) *ProgressRepository {
	return &ProgressRepository{coll: database.Collection(db.CollProgress)}
}

func (r *ProgressRepository) Create(ctx context.Context, p *domain.ProgressEntry) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create progress entry: %w", err)
	}
	return nil
}

// ListByUser returns up to limit entries newest-first, optionally filtered
// by metric_type.
func (r *ProgressRepository) ListByUser(ctx context.Context, userID, metricType string, limit int64) ([]domain.ProgressEntry, error) {
	filter := bson.M{"user_id": userID}
	if metricType != "" {
		filter["metric_type"] = metricType
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []domain.ProgressEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode progress entries: %w", err)
	}
	return entries, nil
}
