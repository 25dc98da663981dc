package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers all threshold routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/thresholds", func(r chi.Router) {
		r.Post("/", h.HandleCreate)
		r.Get("/", h.HandleList)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.HandleGet)
			r.Put("/", h.HandleUpdate)
			r.Delete("/", h.HandleDelete)
			r.Get("/history", h.HandleHistory)
		})
	})
}
