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

type GoalRepository struct {
	coll *mongo.Collection
}

func NewGoalRepository(database *mongo.Database) *GoalRepository {
	return &GoalRepository{coll: database.Collection(db.CollGoals)}
}

func (r *GoalRepository) Create(ctx context.Context, g *domain.Goal) error {
	if _, err := r.coll.InsertOne(ctx, g); err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// ListByUser returns up to 100 goals, optionally only active ones, in
// natural collection order.
func (r *GoalRepository) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.Goal, error) {
	filter := bson.M{"user_id": userID}
	if activeOnly {
		filter["is_active"] = true
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(100))
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer cursor.Close(ctx)

	var goals []domain.Goal
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}
	return goals, nil
}
