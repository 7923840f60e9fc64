package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is the persisted record of a settled checkout. It is created
// exactly once per settlement and never mutated afterwards.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Price         float64              `bson:"price" json:"price"`
	TransactionID string               `bson:"transactionId" json:"transactionId"`
	MenuItems     []primitive.ObjectID `bson:"menuItems" json:"menuItems"`
	CartItems     []primitive.ObjectID `bson:"cartItems" json:"cartItems"`
	Status        string               `bson:"status" json:"status"`
	Date          time.Time            `bson:"date" json:"date"`
}

// PaymentRepository manages payment record operations
type PaymentRepository interface {
	List(ctx context.Context) ([]Payment, error)
	Create(ctx context.Context, payment *Payment) error
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
}
