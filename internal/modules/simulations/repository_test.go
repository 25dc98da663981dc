package simulations

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/boardroom/internal/database"
)

func floatPtr(v float64) *float64 { return &v }

func testRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "history.db"),
		Profile: database.ProfileHistory,
		Name:    "history",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	return NewRepository(db.Conn(), zerolog.Nop())
}

func TestLogRun_StatusComputation(t *testing.T) {
	repo := testRepo(t)

	tests := []struct {
		name       string
		actual     float64
		min, max   *float64
		wantStatus string
		wantWithin bool
	}{
		{"below min", 900000, floatPtr(1200000), nil, "below_min", false},
		{"above max", 12, nil, floatPtr(10), "above_max", false},
		{"within bounds", 5, floatPtr(1), floatPtr(10), "on_target", true},
		{"no bounds is permissive", 42, nil, nil, "on_target", true},
		{"at the min bound", 1200000, floatPtr(1200000), nil, "on_target", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := repo.LogRun("sim-1", "", "CFO", "accumulated_profit", tt.actual, nil, tt.min, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, entry.Status)
			assert.Equal(t, tt.wantWithin, entry.IsWithinThreshold)
			assert.NotEmpty(t, entry.ID)
		})
	}
}

func TestResultsBySimulation(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.LogRun("sim-1", "", "CFO", "accumulated_profit", 1000000, nil, floatPtr(1200000), nil)
	require.NoError(t, err)
	_, err = repo.LogRun("sim-1", "", "CRO", "compromised_systems", 5, nil, nil, floatPtr(10))
	require.NoError(t, err)
	_, err = repo.LogRun("sim-2", "", "CFO", "accumulated_profit", 2000000, nil, floatPtr(1200000), nil)
	require.NoError(t, err)

	results, err := repo.ResultsBySimulation("sim-1")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "CFO", results[0].AgentName)
	assert.Equal(t, "below_min", results[0].Status)
	assert.Equal(t, "CRO", results[1].AgentName)
	assert.True(t, results[1].IsWithinThreshold)

	empty, err := repo.ResultsBySimulation("sim-none")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLogComparison_And_History(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.LogComparison("sim-1", "th-1", 5, floatPtr(1), floatPtr(10), "fine")
	require.NoError(t, err)
	_, err = repo.LogComparison("sim-2", "th-1", 15, floatPtr(1), floatPtr(10), "breach")
	require.NoError(t, err)
	_, err = repo.LogComparison("sim-3", "th-other", 5, nil, floatPtr(10), "")
	require.NoError(t, err)

	history, err := repo.HistoryByThreshold("th-1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// newest first
	assert.Equal(t, "sim-2", history[0].SimulationID)
	assert.False(t, history[0].IsWithinThreshold)
	assert.Equal(t, "breach", history[0].Notes)
	assert.True(t, history[1].IsWithinThreshold)

	limited, err := repo.HistoryByThreshold("th-1", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCompliance(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.LogComparison("sim-1", "th-1", 5, floatPtr(1), floatPtr(10), "")
	require.NoError(t, err)
	_, err = repo.LogComparison("sim-2", "th-1", 15, floatPtr(1), floatPtr(10), "")
	require.NoError(t, err)
	_, err = repo.LogComparison("sim-3", "th-2", 20, nil, floatPtr(10), "")
	require.NoError(t, err)

	stats, err := repo.Compliance("", "", 30)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Passed)
	assert.Equal(t, 2, stats.Failed)
	assert.InDelta(t, 1.0/3.0, stats.PassRate, 1e-9)
	assert.Len(t, stats.Failures, 2)

	scoped, err := repo.Compliance("th-1", "", 30)
	require.NoError(t, err)
	assert.Equal(t, 2, scoped.Total)
	assert.Equal(t, 1, scoped.Passed)
}

func TestCompliance_AgentFilter(t *testing.T) {
	repo := testRepo(t)

	// agent filter joins through the run log on (simulation, threshold)
	_, err := repo.LogRun("sim-1", "th-1", "CFO", "accumulated_profit", 1000000, nil, floatPtr(1200000), nil)
	require.NoError(t, err)
	_, err = repo.LogComparison("sim-1", "th-1", 1000000, floatPtr(1200000), nil, "")
	require.NoError(t, err)
	_, err = repo.LogComparison("sim-2", "th-1", 1500000, floatPtr(1200000), nil, "")
	require.NoError(t, err)

	stats, err := repo.Compliance("", "CFO", 30)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 0, stats.Passed)

	none, err := repo.Compliance("", "CRO", 30)
	require.NoError(t, err)
	assert.Equal(t, 0, none.Total)
	assert.Zero(t, none.PassRate)
}

func TestCompliance_Empty(t *testing.T) {
	repo := testRepo(t)

	stats, err := repo.Compliance("", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Zero(t, stats.PassRate)
}
