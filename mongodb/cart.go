package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroworks/bistro-server/models"
)

type cartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db *mongo.Database) models.CartRepository {
	return &cartRepository{coll: db.Collection(cartsCollection)}
}

// ListByEmail returns the cart items owned by the given email.
func (repo *cartRepository) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}

	return items, nil
}

func (repo *cartRepository) Create(ctx context.Context, item *models.CartItem) error {
	res, err := repo.coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return res.DeletedCount, nil
}

// DeleteByIDs removes every cart item whose id is in the set. Ids already
// absent simply do not contribute to the returned count.
func (repo *cartRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := repo.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete cart items: %w", err)
	}

	return res.DeletedCount, nil
}
