package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroworks/bistro-server/models"
)

// menuRepository implements the MenuRepository interface
type menuRepository struct {
	coll *mongo.Collection
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(db *mongo.Database) models.MenuRepository {
	return &menuRepository{coll: db.Collection(menuCollection)}
}

func (repo *menuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	return items, nil
}

// ListByIDs returns the menu items whose ids appear in the given set.
// Ids that no longer resolve are silently absent from the result.
func (repo *menuRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error) {
	if len(ids) == 0 {
		return []models.MenuItem{}, nil
	}

	cursor, err := repo.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items by ids: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}

	return items, nil
}

func (repo *menuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	res, err := repo.coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid
	}

	return nil
}

// Delete removes a menu item by id. A nonexistent id is a no-op success
// reported as zero deleted documents.
func (repo *menuRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete menu item: %w", err)
	}

	return res.DeletedCount, nil
}

func (repo *menuRepository) Count(ctx context.Context) (int64, error) {
	n, err := repo.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}

	return n, nil
}
