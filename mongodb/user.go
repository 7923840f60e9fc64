package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroworks/bistro-server/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) models.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

// GetByEmail retrieves a user by email
func (repo *userRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User

	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, models.ErrNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// List returns every user document in storage-natural order.
func (repo *userRepository) List(ctx context.Context) ([]models.User, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

// Create inserts a user if no document with the same email exists yet.
// Re-registering an existing email is a no-op reported as ErrAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *models.User) error {
	err := repo.coll.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return models.ErrAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	res, err := repo.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

// PromoteToAdmin unconditionally sets the role to admin. There is no
// demotion operation.
func (repo *userRepository) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to promote user: %w", err)
	}

	return res.ModifiedCount, nil
}

// Count returns the storage-provided fast estimate, not a transactional count.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	n, err := repo.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return n, nil
}
