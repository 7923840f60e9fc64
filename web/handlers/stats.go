package handlers

import "net/http"

// AdminStats returns headline counts and revenue. Guarded by
// authenticate + admin.
func (h *StatsHandlers) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Deps.Reporting.AdminStats(r.Context())
	if err != nil {
		renderError(w, http.StatusBadGateway, "failed to compute admin stats")
		return
	}

	renderJSON(w, http.StatusOK, stats)
}

// OrderStats returns per-category order aggregates. Row order is
// unspecified; callers must not rely on it.
func (h *StatsHandlers) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Deps.Reporting.OrderStats(r.Context())
	if err != nil {
		renderError(w, http.StatusBadGateway, "failed to compute order stats")
		return
	}

	renderJSON(w, http.StatusOK, stats)
}
