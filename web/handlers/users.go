package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bistroworks/bistro-server/models"
	"github.com/bistroworks/bistro-server/web/auth"
)

// List returns every user. Guarded by authenticate + admin.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Deps.Users.List(r.Context())
	if err != nil {
		renderError(w, http.StatusBadGateway, "failed to list users")
		return
	}

	renderJSON(w, http.StatusOK, users)
}

// Create registers a user on first sign-in. Re-registering an existing email
// is a no-op that reports "user already exists" rather than an error.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		renderError(w, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	err := h.Deps.Users.Create(r.Context(), &user)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			renderJSON(w, http.StatusOK, map[string]string{"message": "user already exists"})
			return
		}
		renderError(w, http.StatusBadGateway, "failed to create user")
		return
	}

	renderJSON(w, http.StatusOK, models.InsertResponse{InsertedID: user.ID.Hex()})
}

// CheckAdmin answers whether the given email has the admin role. The check
// is self-only: asking about anyone else's email answers {"admin": false}
// without touching storage.
func (h *UserHandlers) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	callerEmail, err := auth.GetEmail(r.Context())
	if err != nil {
		renderError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	if email != callerEmail {
		renderJSON(w, http.StatusOK, models.AdminCheckResponse{Admin: false})
		return
	}

	user, err := h.Deps.Users.GetByEmail(r.Context(), email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		renderError(w, http.StatusBadGateway, "failed to look up user")
		return
	}

	renderJSON(w, http.StatusOK, models.AdminCheckResponse{Admin: user.IsAdmin()})
}

// Promote unconditionally sets the user's role to admin. There is no
// demotion counterpart.
func (h *UserHandlers) Promote(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		renderError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	modified, err := h.Deps.Users.PromoteToAdmin(r.Context(), id)
	if err != nil {
		renderError(w, http.StatusBadGateway, "failed to promote user")
		return
	}

	renderJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}
