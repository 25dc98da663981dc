// Package handlers provides HTTP handlers for the scenario registry and the
// multi-year simulation endpoint.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentic-research/boardroom/internal/modules/agents"
	"github.com/agentic-research/boardroom/internal/modules/optimization"
	"github.com/agentic-research/boardroom/internal/modules/runs"
)

// Handler handles simulation HTTP requests
type Handler struct {
	simulator *optimization.Simulator
	loader    *runs.Loader
	log       zerolog.Logger
}

// NewHandler creates a new simulation handler
func NewHandler(simulator *optimization.Simulator, loader *runs.Loader, log zerolog.Logger) *Handler {
	return &Handler{
		simulator: simulator,
		loader:    loader,
		log:       log.With().Str("handler", "optimization").Logger(),
	}
}

// HandleScenarios handles GET /api/scenarios
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"scenarios": optimization.Scenarios(),
	})
}

// simulateRequest is the POST /api/simulate body. Zero values select the
// defaults: first scenario, collaborative board, medium risk, five years.
type simulateRequest struct {
	Scenario           string `json:"scenario"`
	AgentCollaboration *bool  `json:"agent_collaboration"`
	RiskTolerance      string `json:"risk_tolerance"`
	NumYears           int    `json:"num_years"`
}

// HandleSimulate handles POST /api/simulate
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var request simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	scenario, ok := optimization.ScenarioByID(request.Scenario)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "Unknown scenario: "+request.Scenario)
		return
	}

	risk, ok := agents.ParseRiskLevel(request.RiskTolerance)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "Invalid risk_tolerance: "+request.RiskTolerance)
		return
	}

	if request.NumYears < 0 {
		h.writeError(w, http.StatusBadRequest, "num_years cannot be negative")
		return
	}

	collaboration := true
	if request.AgentCollaboration != nil {
		collaboration = *request.AgentCollaboration
	}

	params := optimization.Params{
		Scenario:           scenario,
		AgentCollaboration: collaboration,
		RiskTolerance:      risk,
		NumYears:           request.NumYears,
	}

	start := time.Now()
	results := h.simulator.Run(params, h.loader.Load("", 0))

	h.log.Info().
		Str("scenario", scenario.ID).
		Int("years", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation completed")

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"parameters": map[string]interface{}{
			"scenario":            scenario.ID,
			"agent_collaboration": collaboration,
			"risk_tolerance":      risk,
			"num_years":           len(results),
		},
		"results": results,
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

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
