package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers all roster routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/bots", h.HandleList)
}
