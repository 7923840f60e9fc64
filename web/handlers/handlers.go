package handlers

import (
	"log"

	"github.com/bistroworks/bistro-server/models"
	"github.com/bistroworks/bistro-server/reporting"
	"github.com/bistroworks/bistro-server/settlement"
	"github.com/bistroworks/bistro-server/stripe"
	"github.com/bistroworks/bistro-server/web/auth"
)

// Dependencies aggregates shared services used by handlers.
type Dependencies struct {
	Logger     *log.Logger
	Tokens     *auth.TokenService
	Users      models.UserRepository
	Menu       models.MenuRepository
	Reviews    models.ReviewRepository
	Carts      models.CartRepository
	Stripe     stripe.Client
	Settlement *settlement.Service
	Reporting  *reporting.Service
}

// HandlerGroup groups all handler categories for routing setup.
type HandlerGroup struct {
	Token    *TokenHandlers
	Users    *UserHandlers
	Menu     *MenuHandlers
	Reviews  *ReviewHandlers
	Carts    *CartHandlers
	Payments *PaymentHandlers
	Stats    *StatsHandlers
	Web      *WebHandlers
}

// NewHandlerGroup constructs a HandlerGroup with initialized handlers.
func NewHandlerGroup(deps Dependencies) *HandlerGroup {
	return &HandlerGroup{
		Token:    &TokenHandlers{Deps: deps},
		Users:    &UserHandlers{Deps: deps},
		Menu:     &MenuHandlers{Deps: deps},
		Reviews:  &ReviewHandlers{Deps: deps},
		Carts:    &CartHandlers{Deps: deps},
		Payments: &PaymentHandlers{Deps: deps},
		Stats:    &StatsHandlers{Deps: deps},
		Web:      &WebHandlers{Deps: deps},
	}
}

// TokenHandlers contains the token-issuing route.
type TokenHandlers struct{ Deps Dependencies }

// UserHandlers contains user account routes.
type UserHandlers struct{ Deps Dependencies }

// MenuHandlers contains menu routes.
type MenuHandlers struct{ Deps Dependencies }

// ReviewHandlers contains review routes.
type ReviewHandlers struct{ Deps Dependencies }

// CartHandlers contains cart routes.
type CartHandlers struct{ Deps Dependencies }

// PaymentHandlers contains payment-intent and settlement routes.
type PaymentHandlers struct{ Deps Dependencies }

// StatsHandlers contains the admin reporting routes.
type StatsHandlers struct{ Deps Dependencies }

// WebHandlers contains public routes (liveness).
type WebHandlers struct{ Deps Dependencies }
