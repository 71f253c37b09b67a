package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongo establishes a connection to the document store
func ConnectMongo(cfg *Config, logger *slog.Logger) (*mongo.Client, error) {
	var client *mongo.Client
	var err error

	// Retry connecting to the store a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err == nil {
			err = client.Ping(ctx, nil)
			if err == nil {
				cancel()
				logger.Info("connected to MongoDB")
				return client, nil
			}
		}
		cancel()
		logger.Error("failed to connect to MongoDB, retrying", "attempt", i+1, "maxAttempts", maxRetries, "err", err)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to MongoDB after %d attempts: %w", maxRetries, err)
}

// EnsureIndexes creates the indexes the store relies on: a unique index on
// users.email and owner indexes on the per-user collections.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("unable to create unique email index: %w", err)
	}

	for _, coll := range []string{"alerts", "penalties", "itineraries"} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("unable to create userId index on %s: %w", coll, err)
		}
	}

	return nil
}
