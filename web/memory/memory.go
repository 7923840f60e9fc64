// Package memory provides in-memory repository implementations used as test
// doubles for the document store.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bistroworks/bistro-server/models"
)

// UserRepo is an in-memory models.UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

// NewUserRepo creates an empty user store.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[primitive.ObjectID]models.User)}
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}

	return models.User{}, models.ErrNotFound
}

func (r *UserRepo) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}

	return users, nil
}

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return models.ErrAlreadyExists
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user

	return nil
}

func (r *UserRepo) PromoteToAdmin(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}
	u.Role = models.RoleAdmin
	r.users[id] = u

	return 1, nil
}

func (r *UserRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.users)), nil
}

// MenuRepo is an in-memory models.MenuRepository.
type MenuRepo struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]models.MenuItem
}

// NewMenuRepo creates an empty menu store.
func NewMenuRepo() *MenuRepo {
	return &MenuRepo{items: make(map[primitive.ObjectID]models.MenuItem)}
}

func (r *MenuRepo) List(_ context.Context) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}

	return items, nil
}

func (r *MenuRepo) ListByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			items = append(items, item)
		}
	}

	return items, nil
}

func (r *MenuRepo) Create(_ context.Context, item *models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	r.items[item.ID] = *item

	return nil
}

func (r *MenuRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)

	return 1, nil
}

func (r *MenuRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.items)), nil
}

// ReviewRepo is an in-memory models.ReviewRepository.
type ReviewRepo struct {
	mu      sync.RWMutex
	reviews []models.Review
}

// NewReviewRepo creates a review store seeded with the given reviews.
func NewReviewRepo(reviews ...models.Review) *ReviewRepo {
	return &ReviewRepo{reviews: reviews}
}

func (r *ReviewRepo) List(_ context.Context) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Review, len(r.reviews))
	copy(out, r.reviews)

	return out, nil
}

// CartRepo is an in-memory models.CartRepository.
type CartRepo struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]models.CartItem
}

// NewCartRepo creates an empty cart store.
func NewCartRepo() *CartRepo {
	return &CartRepo{items: make(map[primitive.ObjectID]models.CartItem)}
}

func (r *CartRepo) ListByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []models.CartItem{}
	for _, item := range r.items {
		if item.Email == email {
			items = append(items, item)
		}
	}

	return items, nil
}

func (r *CartRepo) Create(_ context.Context, item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	r.items[item.ID] = *item

	return nil
}

func (r *CartRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)

	return 1, nil
}

func (r *CartRepo) DeleteByIDs(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := r.items[id]; ok {
			delete(r.items, id)
			deleted++
		}
	}

	return deleted, nil
}

// PaymentRepo is an in-memory models.PaymentRepository.
type PaymentRepo struct {
	mu       sync.RWMutex
	payments []models.Payment
}

// NewPaymentRepo creates an empty payment store.
func NewPaymentRepo() *PaymentRepo {
	return &PaymentRepo{}
}

func (r *PaymentRepo) List(_ context.Context) ([]models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Payment, len(r.payments))
	copy(out, r.payments)

	return out, nil
}

func (r *PaymentRepo) Create(_ context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	r.payments = append(r.payments, *payment)

	return nil
}

func (r *PaymentRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.payments)), nil
}

func (r *PaymentRepo) TotalRevenue(_ context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum float64
	for _, p := range r.payments {
		sum += p.Price
	}

	return sum, nil
}
