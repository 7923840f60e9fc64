package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bistroworks/bistro-server/models"
)

// List returns the full menu. Public.
func (h *MenuHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Deps.Menu.List(r.Context())
	if err != nil {
		renderError(w, http.StatusBadGateway, "failed to list menu")
		return
	}

	renderJSON(w, http.StatusOK, items)
}

// Create inserts a menu item. Guarded by authenticate + admin. Items are
// immutable once created.
func (h *MenuHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		renderError(w, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	if err := h.Deps.Menu.Create(r.Context(), &item); err != nil {
		renderError(w, http.StatusBadGateway, "failed to create menu item")
		return
	}

	renderJSON(w, http.StatusOK, models.InsertResponse{InsertedID: item.ID.Hex()})
}

// Delete removes a menu item by id. A malformed id is a validation error;
// a nonexistent id is a success with zero documents affected.
func (h *MenuHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}

	deleted, err := h.Deps.Menu.Delete(r.Context(), id)
	if err != nil {
		renderError(w, http.StatusBadGateway, "failed to delete menu item")
		return
	}

	renderJSON(w, http.StatusOK, models.DeleteResponse{DeletedCount: deleted})
}
