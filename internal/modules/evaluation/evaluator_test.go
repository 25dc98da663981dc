package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/boardroom/internal/modules/agents"
)

func floatPtr(v float64) *float64 { return &v }

func cfoProfile() agents.Profile {
	return agents.Profile{
		Name:      "CFO",
		KPI:       "accumulated_profit",
		Direction: agents.DirectionMaximize,
		MinValue:  floatPtr(1200000),
		Personality: agents.Personality{
			RiskTolerance: 0.3,
			Friendliness:  0.6,
			Ambition:      0.8,
		},
	}
}

func croProfile() agents.Profile {
	return agents.Profile{
		Name:      "CRO",
		KPI:       "compromised_systems",
		Direction: agents.DirectionMinimize,
		MaxValue:  floatPtr(10),
		Personality: agents.Personality{
			RiskTolerance: 0.2,
			Friendliness:  0.5,
			Ambition:      0.6,
		},
	}
}

func TestEvaluate_MinOnlyProfile(t *testing.T) {
	e := NewEvaluator()
	profile := cfoProfile()

	tests := []struct {
		name      string
		value     float64
		status    Status
		exceeding bool
	}{
		{"well above min", 1500000, StatusOnTarget, true},
		{"exactly at min", 1200000, StatusOnTarget, false},
		{"inside the band", 1250000, StatusOnTarget, false},
		{"just past the band", 1320000.01, StatusOnTarget, true},
		{"below min", 1100000, StatusBelowMin, false},
		{"just below min", 1199999.99, StatusBelowMin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Evaluate(tt.value, profile)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, tt.exceeding, result.Exceeding)
			assert.False(t, result.DataMissing)
		})
	}
}

func TestEvaluate_MaxOnlyProfile(t *testing.T) {
	e := NewEvaluator()
	profile := croProfile()

	tests := []struct {
		name      string
		value     float64
		status    Status
		exceeding bool
	}{
		{"well under max", 3, StatusOnTarget, true},
		{"exactly at max", 10, StatusOnTarget, false},
		{"inside the band", 9.5, StatusOnTarget, false},
		{"above max", 12, StatusAboveMax, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Evaluate(tt.value, profile)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, tt.exceeding, result.Exceeding)
		})
	}
}

func TestEvaluate_MinMaxProfile(t *testing.T) {
	e := NewEvaluator()
	profile := agents.Profile{
		Name:     "COO",
		KPI:      "systems_availability",
		MinValue: floatPtr(0.9),
		MaxValue: floatPtr(1.0),
	}

	assert.Equal(t, StatusBelowMin, e.Evaluate(0.85, profile).Status)
	assert.Equal(t, StatusOnTarget, e.Evaluate(0.95, profile).Status)
	assert.Equal(t, StatusAboveMax, e.Evaluate(1.05, profile).Status)
}

func TestEvaluate_TargetOnlyProfile(t *testing.T) {
	e := NewEvaluator()
	profile := agents.Profile{
		Name:        "CISO",
		KPI:         "security_investment",
		TargetValue: floatPtr(100000),
	}

	// within 10% of target counts as on target
	assert.Equal(t, StatusOnTarget, e.Evaluate(105000, profile).Status)
	assert.Equal(t, StatusOnTarget, e.Evaluate(90000, profile).Status)
	assert.Equal(t, StatusOffTarget, e.Evaluate(115000, profile).Status)
	assert.Equal(t, StatusOffTarget, e.Evaluate(80000, profile).Status)
}

func TestEvaluate_NoBounds(t *testing.T) {
	e := NewEvaluator()
	result := e.Evaluate(42, agents.Profile{Name: "Observer", KPI: "anything"})
	assert.Equal(t, StatusOnTarget, result.Status)
}

func TestEvaluate_SummaryFormatting(t *testing.T) {
	e := NewEvaluator()

	result := e.Evaluate(1500000, cfoProfile())
	assert.Contains(t, result.Summary, "CFO sees accumulated_profit=1,500,000.00")
	assert.Contains(t, result.Summary, "status=on target")

	// fractional KPIs render as percentages
	availability := agents.Profile{Name: "COO", KPI: "systems_availability", MinValue: floatPtr(0.92)}
	result = e.Evaluate(0.95, availability)
	assert.Contains(t, result.Summary, "systems_availability=95.0%")
}

func TestEvaluateMissing(t *testing.T) {
	e := NewEvaluator()
	result := e.EvaluateMissing(cfoProfile())

	assert.Equal(t, StatusOnTarget, result.Status)
	assert.True(t, result.DataMissing)
	assert.Equal(t, "CFO: KPI 'accumulated_profit' not found in results", result.Summary)
	assert.Equal(t, "CFO: Cannot recommend without accumulated_profit data", result.Recommendation)
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1,500,000.00", groupThousands("1500000.00"))
	assert.Equal(t, "999.99", groupThousands("999.99"))
	assert.Equal(t, "-12,345.67", groupThousands("-12345.67"))
	assert.Equal(t, "0.00", groupThousands("0.00"))
}

func TestEvaluate_IsPure(t *testing.T) {
	e := NewEvaluator()
	profile := croProfile()

	first := e.Evaluate(7, profile)
	second := e.Evaluate(7, profile)
	require.Equal(t, first, second)
}
