package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/boardroom/internal/modules/agents"
	"github.com/agentic-research/boardroom/internal/modules/evaluation"
)

func testRouter(t *testing.T) chi.Router {
	t.Helper()

	board := evaluation.NewBoardRoom(agents.DefaultRoster(), zerolog.Nop())
	router := chi.NewRouter()
	NewHandler(board, zerolog.Nop()).RegisterRoutes(router)
	return router
}

func TestHandleEvaluate(t *testing.T) {
	router := testRouter(t)

	body := `{"run": {"accumulated_profit": 1500000, "compromised_systems": 5, "systems_availability": 0.95}}`
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome evaluation.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	require.Len(t, outcome.PerAgent, 5)
	assert.Equal(t, 0, outcome.Consensus.Skipped)
	assert.NotEmpty(t, outcome.Interaction)

	// everyone is satisfied with this run
	assert.Equal(t, 5, outcome.Consensus.StatusCounts[evaluation.StatusOnTarget])
}

func TestHandleEvaluate_PartialRun(t *testing.T) {
	router := testRouter(t)

	body := `{"run": {"accumulated_profit": 1000000}}`
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome evaluation.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, 4, outcome.Consensus.Skipped)
	assert.Equal(t, evaluation.StatusBelowMin, outcome.PerAgent[0].Status)
}

func TestHandleEvaluate_BadRequests(t *testing.T) {
	router := testRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{oops`},
		{"empty body", ``},
		{"no run data", `{"run": {}}`},
		{"missing run key", `{"something_else": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/evaluate", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
