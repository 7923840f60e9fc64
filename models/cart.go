package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem represents a menu item placed in a user's cart. Cart items are
// ephemeral: they live between "add to cart" and checkout settlement.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
}

// CartRepository manages cart item operations
type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]CartItem, error)
	Create(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}
