// Package handlers provides HTTP handlers for board evaluations.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/agentic-research/boardroom/internal/modules/evaluation"
)

// Handler handles evaluation HTTP requests
type Handler struct {
	board *evaluation.BoardRoom
	log   zerolog.Logger
}

// NewHandler creates a new evaluation handler
func NewHandler(board *evaluation.BoardRoom, log zerolog.Logger) *Handler {
	return &Handler{
		board: board,
		log:   log.With().Str("handler", "evaluation").Logger(),
	}
}

// HandleEvaluate handles POST /api/evaluate.
// Body: {"run": {"accumulated_profit": ..., "compromised_systems": ..., ...}}
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Run map[string]float64 `json:"run"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(request.Run) == 0 {
		h.writeError(w, http.StatusBadRequest, "No run data provided")
		return
	}

	outcome := h.board.Convene(request.Run)

	h.log.Info().
		Int("agents", len(outcome.PerAgent)).
		Int("skipped", outcome.Consensus.Skipped).
		Msg("Evaluation completed")

	h.writeJSON(w, http.StatusOK, outcome)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
