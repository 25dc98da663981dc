package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers all run data routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/runs", func(r chi.Router) {
		r.Get("/", h.HandleBotRuns)
		r.Get("/real", h.HandleRealRuns)
		r.Get("/compare", h.HandleCompare)
	})

	r.Get("/api/statistics", h.HandleStatistics)
	r.Get("/api/analysis/benchmark", h.HandleBenchmark)
}
