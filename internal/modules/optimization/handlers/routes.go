package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers all simulation routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/scenarios", h.HandleScenarios)
	r.Post("/api/simulate", h.HandleSimulate)
}
