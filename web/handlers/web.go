package handlers

import (
	"net/http"
)

// Index is the liveness route.
func (h *WebHandlers) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Bistro server is running"))
}
