package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Penalty is an append-only record of points deducted for a policy violation.
// Hash is a placeholder integrity digest for a future external ledger.
type Penalty struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Type      string             `bson:"type" json:"type"`
	Points    int                `bson:"points" json:"points"`
	Hash      string             `bson:"hash" json:"hash"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// AddPenaltyRequest is the payload for appending a penalty record
type AddPenaltyRequest struct {
	Type   string `json:"type" binding:"required"`
	Points int    `json:"points" binding:"required,gt=0"`
}
