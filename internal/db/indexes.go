package db

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type collectionIndex struct {
	collection string
	keys       bson.D
}

var indexes = []collectionIndex{
	{CollExercises, bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
	{CollFoodEntries, bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
	{CollProgress, bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
	{CollGoals, bson.D{{Key: "user_id", Value: 1}, {Key: "is_active", Value: 1}}},
}

// EnsureIndexes creates the per-collection indexes backing every list path.
// CreateOne is idempotent for an identical key spec, so this is safe to run
// on every startup.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	for _, idx := range indexes {
		_, err := database.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: idx.keys,
		})
		if err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.collection, err)
		}
		log.Printf("ensured index on %s", idx.collection)
	}
	return nil
}
