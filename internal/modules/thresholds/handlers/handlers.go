// Package handlers provides HTTP handlers for threshold management.
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

// Handler handles threshold HTTP requests
type Handler struct {
	repo    *thresholds.Repository
	history *simulations.Repository
	log     zerolog.Logger
}

// NewHandler creates a new threshold handler. The simulations repository
// serves the per-threshold comparison history.
func NewHandler(repo *thresholds.Repository, history *simulations.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo:    repo,
		history: history,
		log:     log.With().Str("handler", "thresholds").Logger(),
	}
}

type createRequest struct {
	AgentName   string   `json:"agent_name"`
	KPIName     string   `json:"kpi_name"`
	MinValue    *float64 `json:"min_value"`
	MaxValue    *float64 `json:"max_value"`
	TargetValue *float64 `json:"target_value"`
	Description string   `json:"description"`
}

// HandleCreate handles POST /api/thresholds
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var request createRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if request.AgentName == "" || request.KPIName == "" {
		h.writeError(w, http.StatusBadRequest, "agent_name and kpi_name are required")
		return
	}
	bounds := thresholds.Record{
		MinValue:    request.MinValue,
		MaxValue:    request.MaxValue,
		TargetValue: request.TargetValue,
	}
	if !bounds.HasBounds() {
		h.writeError(w, http.StatusBadRequest, "At least one of min_value, max_value, target_value is required")
		return
	}
	if request.MinValue != nil && request.MaxValue != nil && *request.MinValue > *request.MaxValue {
		h.writeError(w, http.StatusBadRequest, "min_value cannot exceed max_value")
		return
	}

	rec, err := h.repo.Create(request.AgentName, request.KPIName,
		request.MinValue, request.MaxValue, request.TargetValue, request.Description)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create threshold")
		h.writeError(w, http.StatusInternalServerError, "Failed to create threshold")
		return
	}

	h.writeJSON(w, http.StatusCreated, rec)
}

// HandleList handles GET /api/thresholds. The optional agent query parameter
// narrows the list; soft-deleted records are always excluded.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var (
		records []thresholds.Record
		err     error
	)
	if agent := r.URL.Query().Get("agent"); agent != "" {
		records, err = h.repo.ListByAgent(agent)
	} else {
		records, err = h.repo.ListActive()
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list thresholds")
		h.writeError(w, http.StatusInternalServerError, "Failed to list thresholds")
		return
	}

	if records == nil {
		records = []thresholds.Record{}
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"thresholds": records,
		"count":      len(records),
	})
}

// HandleGet handles GET /api/thresholds/{id}. Soft-deleted records are still
// returned, flagged by is_deleted.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.repo.GetByID(chi.URLParam(r, "id"))
	if errors.Is(err, thresholds.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Threshold not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get threshold")
		h.writeError(w, http.StatusInternalServerError, "Failed to get threshold")
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

// HandleUpdate handles PUT /api/thresholds/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var update thresholds.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if update.MinValue != nil && update.MaxValue != nil && *update.MinValue > *update.MaxValue {
		h.writeError(w, http.StatusBadRequest, "min_value cannot exceed max_value")
		return
	}

	rec, err := h.repo.Update(chi.URLParam(r, "id"), update)
	if errors.Is(err, thresholds.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Threshold not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to update threshold")
		h.writeError(w, http.StatusInternalServerError, "Failed to update threshold")
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

// HandleDelete handles DELETE /api/thresholds/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.repo.SoftDelete(id)
	if errors.Is(err, thresholds.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Threshold not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to delete threshold")
		h.writeError(w, http.StatusInternalServerError, "Failed to delete threshold")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
		"id":      id,
	})
}

// HandleHistory handles GET /api/thresholds/{id}/history. The optional limit
// query parameter caps the number of comparisons returned.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.repo.GetByID(id); errors.Is(err, thresholds.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "Threshold not found")
		return
	} else if err != nil {
		h.log.Error().Err(err).Msg("Failed to get threshold")
		h.writeError(w, http.StatusInternalServerError, "Failed to get threshold")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeError(w, http.StatusBadRequest, "Invalid limit: "+raw)
			return
		}
		limit = parsed
	}

	history, err := h.history.HistoryByThreshold(id, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load threshold history")
		h.writeError(w, http.StatusInternalServerError, "Failed to load threshold history")
		return
	}

	if history == nil {
		history = []simulations.Comparison{}
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"threshold_id": id,
		"history":      history,
		"count":        len(history),
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
