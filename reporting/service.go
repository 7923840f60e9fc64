// Package reporting computes cross-entity statistics for the admin
// dashboard: headline counts, total revenue, and per-category order totals.
package reporting

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bistroworks/bistro-server/models"
)

// Service is the reporting aggregator.
type Service struct {
	users    models.UserRepository
	menu     models.MenuRepository
	payments models.PaymentRepository
}

// New creates a reporting Service.
func New(users models.UserRepository, menu models.MenuRepository, payments models.PaymentRepository) *Service {
	return &Service{
		users:    users,
		menu:     menu,
		payments: payments,
	}
}

// AdminStats returns headline counts and total revenue. Counts are the
// store's fast estimates; revenue is the exact sum of payment prices.
func (s *Service) AdminStats(ctx context.Context) (models.AdminStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("failed to count users: %w", err)
	}

	menuItems, err := s.menu.Count(ctx)
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("failed to count menu items: %w", err)
	}

	orders, err := s.payments.Count(ctx)
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("failed to count orders: %w", err)
	}

	revenue, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return models.AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}

// OrderStats expands every payment's menu items into the referenced menu
// documents and groups them by category. Totals are rounded to 2 decimals.
// Categories with no orders are omitted and row order is unspecified.
func (s *Service) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	// Occurrences count: the same menu item ordered twice counts twice.
	occurrences := make(map[primitive.ObjectID]int)
	ids := make([]primitive.ObjectID, 0)

	for _, p := range payments {
		for _, id := range p.MenuItems {
			if occurrences[id] == 0 {
				ids = append(ids, id)
			}
			occurrences[id]++
		}
	}

	items, err := s.menu.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve menu items: %w", err)
	}

	type bucket struct {
		count int
		total float64
	}
	buckets := make(map[string]*bucket)

	for _, item := range items {
		b, ok := buckets[item.Category]
		if !ok {
			b = &bucket{}
			buckets[item.Category] = b
		}
		n := occurrences[item.ID]
		b.count += n
		b.total += item.Price * float64(n)
	}

	stats := make([]models.CategoryStat, 0, len(buckets))
	for category, b := range buckets {
		stats = append(stats, models.CategoryStat{
			Category: category,
			Count:    b.count,
			Total:    round2(b.total),
		})
	}

	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
