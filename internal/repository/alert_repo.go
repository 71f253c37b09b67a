package repository

import (
	"context"
	"fmt"

	"github.com/Shobhanashankar/TourSafe/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AlertRepository defines operations for the append-only alert log
type AlertRepository interface {
	Create(ctx context.Context, alert *model.Alert) error
}

type alertRepository struct {
	coll *mongo.Collection
}

// NewAlertRepository creates a new AlertRepository
func NewAlertRepository(db *mongo.Database) AlertRepository {
	return &alertRepository{coll: db.Collection("alerts")}
}

// Create appends a new alert record
func (r *alertRepository) Create(ctx context.Context, alert *model.Alert) error {
	res, err := r.coll.InsertOne(ctx, alert)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		alert.ID = id
	}
	return nil
}
