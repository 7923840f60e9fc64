package handlers

import "net/http"

// List returns every review. Public, read-only.
func (h *ReviewHandlers) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Deps.Reviews.List(r.Context())
	if err != nil {
		renderError(w, http.StatusBadGateway, "failed to list reviews")
		return
	}

	renderJSON(w, http.StatusOK, reviews)
}
