package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers all evaluation routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/evaluate", h.HandleEvaluate)
}
