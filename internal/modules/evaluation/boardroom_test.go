package evaluation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/boardroom/internal/modules/agents"
)

func TestBoardRoom_Convene(t *testing.T) {
	board := NewBoardRoom(agents.DefaultRoster(), zerolog.Nop())

	outcome := board.Convene(map[string]float64{
		"accumulated_profit":   1000000, // below CFO min of 1.2M
		"compromised_systems":  9,       // under CRO max 10, over IT max 8
		"systems_availability": 0.95,    // above both availability floors
	})

	require.Len(t, outcome.PerAgent, 5)
	assert.Equal(t, 0, outcome.Consensus.Skipped)

	assert.Equal(t, 1, outcome.Consensus.StatusCounts[StatusBelowMin])
	assert.Equal(t, 1, outcome.Consensus.StatusCounts[StatusAboveMax])
	assert.Equal(t, 3, outcome.Consensus.StatusCounts[StatusOnTarget])

	// evaluations come back in seating order
	assert.Equal(t, "CFO", outcome.PerAgent[0].AgentName)
	assert.Equal(t, StatusBelowMin, outcome.PerAgent[0].Status)
	assert.Equal(t, "IT_Manager", outcome.PerAgent[3].AgentName)
	assert.Equal(t, StatusAboveMax, outcome.PerAgent[3].Status)

	require.Len(t, outcome.Consensus.Recommendations, 5)
	assert.NotEmpty(t, outcome.Interaction)
}

func TestBoardRoom_Convene_MissingKPIIsLenient(t *testing.T) {
	board := NewBoardRoom(agents.DefaultRoster(), zerolog.Nop())

	outcome := board.Convene(map[string]float64{
		"accumulated_profit": 1500000,
	})

	require.Len(t, outcome.PerAgent, 5)
	assert.Equal(t, 4, outcome.Consensus.Skipped)
	assert.Equal(t, 5, outcome.Consensus.StatusCounts[StatusOnTarget])

	for _, r := range outcome.PerAgent[1:] {
		assert.True(t, r.DataMissing, "agent %s should be flagged", r.AgentName)
		assert.Equal(t, StatusOnTarget, r.Status)
	}
	assert.False(t, outcome.PerAgent[0].DataMissing)
}

func TestBoardRoom_Interaction(t *testing.T) {
	friendly := agents.ApplyVariants(agents.DefaultRoster(), agents.ModeCollaborative, agents.RiskMedium)
	board := NewBoardRoom(friendly, zerolog.Nop())

	// collaborative variants push average friendliness over 0.7
	assert.Equal(t,
		"Bots work together constructively, finding common ground and shared strategy.",
		board.Interaction("collaborative"))

	base := NewBoardRoom(agents.DefaultRoster(), zerolog.Nop())
	assert.Equal(t,
		"Bots align toward compromise, though some tension remains.",
		base.Interaction("collaborative"))

	assert.Equal(t,
		"Bots argue over priorities, each defending their domain. No consensus reached.",
		base.Interaction("hostile"))

	assert.Equal(t,
		"Professional interaction. Each bot focuses on their own KPIs.",
		base.Interaction("neutral"))
}

func TestOrderProfiles_ExtrasAfterRoster(t *testing.T) {
	profiles := []agents.Profile{
		{Name: "Advisor"},
		{Name: "CRO"},
		{Name: "CFO"},
	}

	ordered := orderProfiles(profiles)
	require.Len(t, ordered, 3)
	assert.Equal(t, "CFO", ordered[0].Name)
	assert.Equal(t, "CRO", ordered[1].Name)
	assert.Equal(t, "Advisor", ordered[2].Name)
}
