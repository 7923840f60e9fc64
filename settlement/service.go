// Package settlement converts a completed payment into a persisted record
// and cleans up the settled cart items.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bistroworks/bistro-server/models"
)

// ErrCartCleanup marks the partial-failure window: the payment record was
// persisted but cart removal failed. The caller must surface it, never
// swallow it.
var ErrCartCleanup = errors.New("payment recorded but cart cleanup failed")

// ErrInvalidID reports a malformed document id in the request payload.
var ErrInvalidID = errors.New("invalid document id")

// Request is the checkout payload before id coercion. Document ids arrive
// as hex strings from the client and must be parsed, never cast.
type Request struct {
	Email         string   `json:"email"`
	Price         float64  `json:"price"`
	TransactionID string   `json:"transactionId"`
	MenuItems     []string `json:"menuItems"`
	CartItems     []string `json:"cartItems"`
	Status        string   `json:"status"`
}

// Result reports both settlement effects to the caller.
type Result struct {
	PaymentID    primitive.ObjectID `json:"insertedId"`
	DeletedCarts int64              `json:"deletedCount"`
}

// Service is the settlement processor. It runs a two-step sequence with no
// multi-document transaction: insert the payment, then delete the carts.
type Service struct {
	payments models.PaymentRepository
	carts    models.CartRepository
	now      func() time.Time
}

// New creates a settlement Service.
func New(payments models.PaymentRepository, carts models.CartRepository) *Service {
	return &Service{
		payments: payments,
		carts:    carts,
		now:      time.Now,
	}
}

// Settle normalizes the request, inserts the payment record, and deletes the
// settled cart items. If the insert fails nothing else is attempted. If the
// deletes fail after a successful insert, the result carries the persisted
// payment id alongside ErrCartCleanup.
func (s *Service) Settle(ctx context.Context, req Request) (Result, error) {
	menuIDs, err := parseObjectIDs(req.MenuItems)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	cartIDs, err := parseObjectIDs(req.CartItems)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	payment := models.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		MenuItems:     menuIDs,
		CartItems:     cartIDs,
		Status:        req.Status,
		Date:          s.now().UTC(),
	}

	if err := s.payments.Create(ctx, &payment); err != nil {
		return Result{}, fmt.Errorf("failed to record payment: %w", err)
	}

	deleted, err := s.carts.DeleteByIDs(ctx, cartIDs)
	if err != nil {
		return Result{PaymentID: payment.ID, DeletedCarts: deleted},
			fmt.Errorf("%w: %v", ErrCartCleanup, err)
	}

	return Result{PaymentID: payment.ID, DeletedCarts: deleted}, nil
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))

	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", h, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
