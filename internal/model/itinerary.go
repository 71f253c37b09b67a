package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Itinerary holds a user's planned locations. The location records are
// unstructured; the mobile client owns their shape.
type Itinerary struct {
	ID        primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID       `bson:"userId" json:"userId"`
	Locations []map[string]interface{} `bson:"locations" json:"locations"`
	CreatedAt time.Time                `bson:"createdAt" json:"createdAt"`
}

// CreateItineraryRequest is the payload for storing an itinerary
type CreateItineraryRequest struct {
	Locations []map[string]interface{} `json:"locations" binding:"required"`
}

// Profile is a user joined with their itineraries
type Profile struct {
	User      *User       `json:"user"`
	Itinerary []Itinerary `json:"itinerary"`
}
