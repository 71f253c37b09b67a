package repository

import (
	"context"
	"fmt"

	"github.com/Shobhanashankar/TourSafe/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ItineraryRepository defines operations for itinerary data
type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *model.Itinerary) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Itinerary, error)
}

type itineraryRepository struct {
	coll *mongo.Collection
}

// NewItineraryRepository creates a new ItineraryRepository
func NewItineraryRepository(db *mongo.Database) ItineraryRepository {
	return &itineraryRepository{coll: db.Collection("itineraries")}
}

// Create inserts a new itinerary for a user
func (r *itineraryRepository) Create(ctx context.Context, itinerary *model.Itinerary) error {
	res, err := r.coll.InsertOne(ctx, itinerary)
	if err != nil {
		return fmt.Errorf("failed to create itinerary: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		itinerary.ID = id
	}
	return nil
}

// FindByUser retrieves all itineraries owned by the given user
func (r *itineraryRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Itinerary, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to query itineraries by user: %w", err)
	}
	defer cursor.Close(ctx)

	itineraries := []model.Itinerary{}
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, fmt.Errorf("failed to decode itinerary records: %w", err)
	}
	return itineraries, nil
}
