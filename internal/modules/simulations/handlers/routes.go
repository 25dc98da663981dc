package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers all simulation history routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/simulations/{id}", func(r chi.Router) {
		r.Post("/log", h.HandleLog)
		r.Get("/results", h.HandleResults)
		r.Post("/compare", h.HandleCompare)
	})

	r.Get("/api/statistics/thresholds", h.HandleComplianceStats)
}
