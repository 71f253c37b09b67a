package repository

import (
	"context"
	"fmt"

	"github.com/Shobhanashankar/TourSafe/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PenaltyRepository defines operations for the append-only penalty ledger
type PenaltyRepository interface {
	Create(ctx context.Context, penalty *model.Penalty) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Penalty, error)
}

type penaltyRepository struct {
	coll *mongo.Collection
}

// NewPenaltyRepository creates a new PenaltyRepository
func NewPenaltyRepository(db *mongo.Database) PenaltyRepository {
	return &penaltyRepository{coll: db.Collection("penalties")}
}

// Create appends a new penalty record
func (r *penaltyRepository) Create(ctx context.Context, penalty *model.Penalty) error {
	res, err := r.coll.InsertOne(ctx, penalty)
	if err != nil {
		return fmt.Errorf("failed to create penalty: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		penalty.ID = id
	}
	return nil
}

// FindByUser retrieves all penalty records owned by the given user
func (r *penaltyRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.Penalty, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query penalties by user: %w", err)
	}
	defer cursor.Close(ctx)

	penalties := []model.Penalty{}
	if err := cursor.All(ctx, &penalties); err != nil {
		return nil, fmt.Errorf("failed to decode penalty records: %w", err)
	}
	return penalties, nil
}
