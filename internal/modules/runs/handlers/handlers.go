// Package handlers provides HTTP handlers for run data, statistics, and the
// real-vs-bot analysis endpoints.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/agentic-research/boardroom/internal/modules/runs"
)

// Handler handles run data HTTP requests
type Handler struct {
	loader *runs.Loader
	log    zerolog.Logger
}

// NewHandler creates a new runs handler
func NewHandler(loader *runs.Loader, log zerolog.Logger) *Handler {
	return &Handler{
		loader: loader,
		log:    log.With().Str("handler", "runs").Logger(),
	}
}

// HandleBotRuns handles GET /api/runs: simulated runs, manual entries first
// and mock data as fallback.
func (h *Handler) HandleBotRuns(w http.ResponseWriter, r *http.Request) {
	data := h.botRuns()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(data),
		"data":    data,
	})
}

// HandleRealRuns handles GET /api/runs/real: the CSV export. An absent
// export is not an error, just an empty result.
func (h *Handler) HandleRealRuns(w http.ResponseWriter, r *http.Request) {
	data := h.loader.LoadCSV()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": len(data) > 0,
		"count":   len(data),
		"data":    data,
	})
}

// HandleCompare handles GET /api/runs/compare: real data vs bot runs.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	real := h.loader.LoadCSV()
	if len(real) == 0 {
		h.writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "No real data available",
		})
		return
	}

	response := struct {
		Success bool `json:"success"`
		runs.Comparison
	}{
		Success:    true,
		Comparison: runs.Compare(real, h.botRuns()),
	}
	h.writeJSON(w, http.StatusOK, response)
}

// HandleStatistics handles GET /api/statistics: per-source descriptive
// statistics plus source availability.
func (h *Handler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	stats := map[string]interface{}{
		"real_data":    nil,
		"bot_data":     nil,
		"data_sources": h.loader.Info(),
	}

	if real := h.loader.LoadCSV(); len(real) > 0 {
		stats["real_data"] = runs.Summarize(real)
	}
	if bot := h.botRuns(); len(bot) > 0 {
		stats["bot_data"] = runs.Summarize(bot)
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    stats,
	})
}

// HandleBenchmark handles GET /api/analysis/benchmark: an overview of the
// real player data used as the simulation's baseline.
func (h *Handler) HandleBenchmark(w http.ResponseWriter, r *http.Request) {
	real := h.loader.LoadCSV()
	if len(real) == 0 {
		h.writeError(w, http.StatusInternalServerError, "No real data available")
		return
	}

	var profitSum, compromisedSum, monthsSum float64
	dist := map[string]int{
		"with_ransom_payment":    0,
		"without_ransom_payment": 0,
		"level_1":                0,
		"level_2":                0,
	}
	for _, run := range real {
		profitSum += run.AccumulatedProfit
		compromisedSum += run.CompromisedSystems
		monthsSum += run.MonthsCompleted
		if run.PayRansom == 1 {
			dist["with_ransom_payment"]++
		} else {
			dist["without_ransom_payment"]++
		}
		switch run.Level {
		case 1:
			dist["level_1"]++
		case 2:
			dist["level_2"]++
		}
	}
	n := float64(len(real))

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"title":       "Real Data Benchmark - Player Behavior Analysis",
		"description": "Analysis of real player runs in the cyber risk simulation",
		"real_player_data": map[string]interface{}{
			"total_runs":             len(real),
			"avg_profit":             profitSum / n,
			"avg_systems_at_risk":    compromisedSum / n,
			"avg_months":             monthsSum / n,
			"scenarios_distribution": dist,
		},
		"methodology": "Comparison between multi-agent optimization and actual human decision-making",
	})
}

// botRuns loads the simulated side of every comparison: manual entries when
// present, deterministic mock data otherwise.
func (h *Handler) botRuns() []runs.Run {
	if manual := h.loader.LoadManual(); len(manual) > 0 {
		return manual
	}
	return runs.Mock(0)
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
