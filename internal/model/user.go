package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered tourist
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	PasswordHash      string             `bson:"passwordHash" json:"-"` // Do not expose password hash in JSON responses
	Nationality       string             `bson:"nationality" json:"nationality"`
	EmergencyContacts []string           `bson:"emergencyContacts" json:"emergencyContacts"`
	DeviceToken       string             `bson:"deviceToken,omitempty" json:"-"` // FCM token, set via device registration
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}

// SignupRequest is the payload for creating a new account
type SignupRequest struct {
	Name              string   `json:"name" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	Password          string   `json:"password" binding:"required,min=6"` // Basic validation
	Nationality       string   `json:"nationality"`
	EmergencyContacts []string `json:"emergencyContacts"`
}

// LoginRequest is the payload for authenticating an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterDeviceRequest stores a push-notification token for the caller
type RegisterDeviceRequest struct {
	Token string `json:"token" binding:"required"`
}
