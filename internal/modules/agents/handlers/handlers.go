// Package handlers provides HTTP handlers for the agent roster.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/agentic-research/boardroom/internal/modules/agents"
)

// Handler handles roster HTTP requests
type Handler struct {
	roster []agents.Profile
	log    zerolog.Logger
}

// NewHandler creates a new roster handler
func NewHandler(roster []agents.Profile, log zerolog.Logger) *Handler {
	return &Handler{
		roster: roster,
		log:    log.With().Str("handler", "agents").Logger(),
	}
}

// HandleList handles GET /api/bots
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"bots":  h.roster,
		"count": len(h.roster),
	})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
