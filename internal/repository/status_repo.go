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

type StatusCheckRepository struct {
	coll *mongo.Collection
}

func NewStatusCheckRepository(database *mongo.Database) *StatusCheckRepository {
	return &StatusCheckRepository{coll: database.Collection(db.CollStatusChecks)}
}

func (r *StatusCheckRepository) Create(ctx context.Context, s *domain.StatusCheck) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create status check: %w", err)
	}
	return nil
}

func (r *StatusCheckRepository) List(ctx context.Context) ([]domain.StatusCheck, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(1000))
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	defer cursor.Close(ctx)

	var checks []domain.StatusCheck
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("failed to decode status checks: %w", err)
	}
	return checks, nil
}
