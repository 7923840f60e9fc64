package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem represents a dish on the menu. Items are immutable once created;
// there is no update operation.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
}

// MenuRepository manages menu item operations
type MenuRepository interface {
	List(ctx context.Context) ([]MenuItem, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]MenuItem, error)
	Create(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}
