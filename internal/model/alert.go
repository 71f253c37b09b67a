package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is a latitude/longitude pair as submitted by the mobile client.
// Coordinate ranges are not validated.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Alert is an immutable panic event. Alerts are append-only; the owning user
// id is always resolved from the authenticated session, never from the body.
type Alert struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Location  Location           `bson:"location" json:"location"`
	Type      string             `bson:"type" json:"type"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// PanicAlertRequest is the payload for triggering a panic alert. Meta carries
// caller-supplied metadata that is broadcast but not persisted.
type PanicAlertRequest struct {
	Location Location               `json:"location"`
	Type     string                 `json:"type"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// TrackLocationRequest is the payload for a live location update
type TrackLocationRequest struct {
	Location Location `json:"location"`
}
