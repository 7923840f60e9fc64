package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values stored on a user document. Anything other than RoleAdmin is
// treated as an unprivileged account.
const RoleAdmin = "admin"

// User represents a registered user in the system
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository manages user operations
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user *User) error
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}
