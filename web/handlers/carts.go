package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bistroworks/bistro-server/models"
	"github.com/bistroworks/bistro-server/web/auth"
)

// List returns the cart items for the email in the query string. A missing
// email answers an empty list immediately. A caller may only read a cart
// matching their own authenticated identity; any other email is Forbidden
// regardless of role.
func (h *CartHandlers) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		renderJSON(w, http.StatusOK, []models.CartItem{})
		return
	}

	callerEmail, err := auth.GetEmail(r.Context())
	if err != nil {
		renderError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	if email != callerEmail {
		renderError(w, http.StatusForbidden, "forbidden access")
		return
	}

	items, err := h.Deps.Carts.ListByEmail(r.Context(), email)
	if err != nil {
		renderError(w, http.StatusBadGateway, "failed to list cart items")
		return
	}

	renderJSON(w, http.StatusOK, items)
}

// Create adds an item to a cart.
func (h *CartHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		renderError(w, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	if err := h.Deps.Carts.Create(r.Context(), &item); err != nil {
		renderError(w, http.StatusBadGateway, "failed to create cart item")
		return
	}

	renderJSON(w, http.StatusOK, models.InsertResponse{InsertedID: item.ID.Hex()})
}

// Delete removes a single cart item by id.
func (h *CartHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid cart item id")
		return
	}

	deleted, err := h.Deps.Carts.Delete(r.Context(), id)
	if err != nil {
		renderError(w, http.StatusBadGateway, "failed to delete cart item")
		return
	}

	renderJSON(w, http.StatusOK, models.DeleteResponse{DeletedCount: deleted})
}
