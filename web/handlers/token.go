package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bistroworks/bistro-server/web/auth"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Issue signs the caller-supplied identity claim into a bearer token.
// The claim shape is not validated beyond what the caller sends.
func (h *TokenHandlers) Issue(w http.ResponseWriter, r *http.Request) {
	var claims auth.Claims
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		renderError(w, http.StatusUnprocessableEntity, "invalid payload")
		return
	}

	token, err := h.Deps.Tokens.Issue(claims)
	if err != nil {
		if h.Deps.Logger != nil {
			h.Deps.Logger.Printf("token issue failed: %v", err)
		}
		renderError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	renderJSON(w, http.StatusOK, tokenResponse{Token: token})
}
