package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fittrack/fittrack-backend/internal/db"
	"github.com/fittrack/fittrack-backend/internal/domain"
)

type FoodEntryRepository struct {
	coll *mongo.Collection
}

func NewFoodEntryRepository(database *mongo.Database) *FoodEntryRepository {
	return &FoodEntryRepository{coll: database.Collection(db.CollFoodEntries)}
}

func (r *FoodEntryRepository) Create(ctx context.Context, e *domain.FoodEntry) error {
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("failed to create food entry: %w", err)
	}
	return nil
}

func (r *FoodEntryRepository) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]domain.FoodEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list food entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []domain.FoodEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode food entries: %w", err)
	}
	return entries, nil
}

// ListByUserInRange returns the user's entries with from <= date < to,
// used for the dashboard's same-day macro summary.
func (r *FoodEntryRepository) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.FoodEntry, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lt": to},
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(100))
	if err != nil {
		return nil, fmt.Errorf("failed to list food entries in range: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []domain.FoodEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode food entries: %w", err)
	}
	return entries, nil
}
