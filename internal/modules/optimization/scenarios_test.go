package optimization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/boardroom/internal/modules/runs"
)

func TestScenarioByID(t *testing.T) {
	s, ok := ScenarioByID("ransomware")
	require.True(t, ok)
	assert.Equal(t, "Advanced Ransomware Attack", s.Name)

	// empty id defaults to the first scenario
	s, ok = ScenarioByID("")
	require.True(t, ok)
	assert.Equal(t, "simple_deterministic", s.ID)

	_, ok = ScenarioByID("zero_day")
	assert.False(t, ok)
}

func TestScenario_Filter(t *testing.T) {
	data := []runs.Run{
		{ID: "a", Level: 1, Ransomware: 0},
		{ID: "b", Level: 2, Ransomware: 0},
		{ID: "c", Level: 2, Ransomware: 1, PayRansom: 0},
		{ID: "d", Level: 2, Ransomware: 1, PayRansom: 1},
	}

	tests := []struct {
		scenario string
		wantIDs  []string
	}{
		{"simple_deterministic", []string{"a"}},
		// both simple scenarios draw from the level-1 pool
		{"simple_unpredictable", []string{"a"}},
		{"ransomware", []string{"c"}},
		{"ransomware_ransom", []string{"d"}},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			s, ok := ScenarioByID(tt.scenario)
			require.True(t, ok)

			filtered := s.Filter(data)
			ids := make([]string, len(filtered))
			for i, r := range filtered {
				ids[i] = r.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestScenarios_RegistryIsStable(t *testing.T) {
	first := Scenarios()
	first[0].ID = "mutated"

	second := Scenarios()
	assert.Equal(t, "simple_deterministic", second[0].ID)
}
