// Package handlers provides HTTP handlers for simulation run logging and
// threshold compliance reporting.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/agentic-research/boardroom/internal/modules/simulations"
	"github.com/agentic-research/boardroom/internal/modules/thresholds"
)

// Handler handles simulation history HTTP requests
type Handler struct {
	repo       *simulations.Repository
	thresholds *thresholds.Repository
	log        zerolog.Logger
}

// NewHandler creates a new simulation history handler. The thresholds
// repository resolves bounds when a log or comparison references a stored
// threshold.
func NewHandler(repo *simulations.Repository, thresholdRepo *thresholds.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo:       repo,
		thresholds: thresholdRepo,
		log:        log.With().Str("handler", "simulations").Logger(),
	}
}

type logRequest struct {
	ThresholdID string   `json:"threshold_id"`
	AgentName   string   `json:"agent_name"`
	KPIName     string   `json:"kpi_name"`
	ActualValue *float64 `json:"actual_value"`
	TargetValue *float64 `json:"target_value"`
	MinValue    *float64 `json:"min_value"`
	MaxValue    *float64 `json:"max_value"`
}

// HandleLog handles POST /api/simulations/{id}/log. When threshold_id is
// set, bounds are resolved from the stored threshold and override any bounds
// in the body.
func (h *Handler) HandleLog(w http.ResponseWriter, r *http.Request) {
	simulationID := chi.URLParam(r, "id")

	var request logRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if request.ActualValue == nil {
		h.writeError(w, http.StatusBadRequest, "actual_value is required")
		return
	}

	agentName := request.AgentName
	kpiName := request.KPIName
	target, min, max := request.TargetValue, request.MinValue, request.MaxValue

	if request.ThresholdID != "" {
		rec, err := h.thresholds.GetByID(request.ThresholdID)
		if errors.Is(err, thresholds.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Threshold not found")
			return
		}
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to resolve threshold")
			h.writeError(w, http.StatusInternalServerError, "Failed to resolve threshold")
			return
		}
		if agentName == "" {
			agentName = rec.AgentName
		}
		if kpiName == "" {
			kpiName = rec.KPIName
		}
		target, min, max = rec.TargetValue, rec.MinValue, rec.MaxValue
	}

	if agentName == "" || kpiName == "" {
		h.writeError(w, http.StatusBadRequest, "agent_name and kpi_name are required")
		return
	}

	entry, err := h.repo.LogRun(simulationID, request.ThresholdID, agentName, kpiName,
		*request.ActualValue, target, min, max)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to log simulation run")
		h.writeError(w, http.StatusInternalServerError, "Failed to log simulation run")
		return
	}

	h.writeJSON(w, http.StatusCreated, entry)
}

// HandleResults handles GET /api/simulations/{id}/results
func (h *Handler) HandleResults(w http.ResponseWriter, r *http.Request) {
	simulationID := chi.URLParam(r, "id")

	results, err := h.repo.ResultsBySimulation(simulationID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load simulation results")
		h.writeError(w, http.StatusInternalServerError, "Failed to load simulation results")
		return
	}

	if results == nil {
		results = []simulations.RunLog{}
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"simulation_id": simulationID,
		"results":       results,
		"count":         len(results),
	})
}

type compareRequest struct {
	ThresholdID string   `json:"threshold_id"`
	ActualValue *float64 `json:"actual_value"`
	Notes       string   `json:"notes"`
}

// HandleCompare handles POST /api/simulations/{id}/compare: checks a value
// against a stored threshold and records the outcome.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	simulationID := chi.URLParam(r, "id")

	var request compareRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if request.ThresholdID == "" {
		h.writeError(w, http.StatusBadRequest, "threshold_id is required")
		return
	}
	if request.ActualValue == nil {
		h.writeError(w, http.StatusBadRequest, "actual_value is required")
		return
	}

	rec, err := h.thresholds.GetByID(request.ThresholdID)
	if errors.Is(err, thresholds.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Threshold not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to resolve threshold")
		h.writeError(w, http.StatusInternalServerError, "Failed to resolve threshold")
		return
	}

	cmp, err := h.repo.LogComparison(simulationID, rec.ID, *request.ActualValue,
		rec.MinValue, rec.MaxValue, request.Notes)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to log comparison")
		h.writeError(w, http.StatusInternalServerError, "Failed to log comparison")
		return
	}

	h.writeJSON(w, http.StatusCreated, cmp)
}

// HandleComplianceStats handles GET /api/statistics/thresholds. Query
// parameters: threshold_id, agent, days (default 30).
func (h *Handler) HandleComplianceStats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	days := 0
	if raw := query.Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeError(w, http.StatusBadRequest, "Invalid days: "+raw)
			return
		}
		days = parsed
	}

	stats, err := h.repo.Compliance(query.Get("threshold_id"), query.Get("agent"), days)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute compliance statistics")
		h.writeError(w, http.StatusInternalServerError, "Failed to compute compliance statistics")
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
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
