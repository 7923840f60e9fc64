package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bistroworks/bistro-server/models"
	"github.com/bistroworks/bistro-server/settlement"
	"github.com/bistroworks/bistro-server/stripe"
)

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

// Currency for payment intents. The platform charges in a single currency.
const intentCurrency = "usd"

// CreatePaymentIntent is a thin pass-through to the payment processor: the
// decimal price becomes integer minor units and the client secret of the
// resulting intent is returned. Processor errors propagate; no retry.
func (h *PaymentHandlers) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	if h.Deps.Stripe == nil {
		renderError(w, http.StatusServiceUnavailable, "payments not configured")
		return
	}

	var req paymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	intent, err := h.Deps.Stripe.CreatePaymentIntent(r.Context(), stripe.MinorUnits(req.Price), intentCurrency)
	if err != nil {
		if h.Deps.Logger != nil {
			h.Deps.Logger.Printf("payment intent failed: %v", err)
		}
		renderError(w, http.StatusBadGateway, "payment processor error")
		return
	}

	renderJSON(w, http.StatusOK, models.PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

// Settle records the completed payment and removes the settled cart items.
// A partial failure (payment stored, carts left behind) is reported to the
// caller, not hidden.
func (h *PaymentHandlers) Settle(w http.ResponseWriter, r *http.Request) {
	var req settlement.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	result, err := h.Deps.Settlement.Settle(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidID):
			renderError(w, http.StatusBadRequest, "invalid document id in payment")
		case errors.Is(err, settlement.ErrCartCleanup):
			if h.Deps.Logger != nil {
				h.Deps.Logger.Printf("settlement partial failure: %v", err)
			}
			renderJSON(w, http.StatusInternalServerError, map[string]any{
				"insertedId":   result.PaymentID.Hex(),
				"deletedCount": result.DeletedCarts,
				"error":        "payment recorded but cart cleanup failed",
			})
		default:
			renderError(w, http.StatusBadGateway, "failed to record payment")
		}
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{
		"insertedId":   result.PaymentID.Hex(),
		"deletedCount": result.DeletedCarts,
	})
}
