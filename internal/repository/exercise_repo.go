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

type ExerciseRepository struct {
	coll *mongo.Collection
}

func NewExerciseRepository(database *mongo.Database) *ExerciseRepository {
	return &ExerciseRepository{coll: database.Collection(db.CollExercises)}
}

func (r *ExerciseRepository) Create(ctx context.Context, e *domain.Exercise) error {
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

// ListByUser returns the user's exercises newest-first.
func (r *ExerciseRepository) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]domain.Exercise, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer cursor.Close(ctx)

	var exercises []domain.Exercise
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("failed to decode exercises: %w", err)
	}
	return exercises, nil
}
