package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review represents a customer review. The API surface is read-only.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}

// ReviewRepository manages review operations
type ReviewRepository interface {
	List(ctx context.Context) ([]Review, error)
}
