package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonality_Buckets(t *testing.T) {
	tests := []struct {
		name     string
		p        Personality
		risk     Bucket
		ambition Bucket
		friendly Bucket
	}{
		{
			name:     "all low",
			p:        Personality{RiskTolerance: 0.1, Ambition: 0.2, Friendliness: 0.3},
			risk:     BucketLow,
			ambition: BucketLow,
			friendly: BucketLow,
		},
		{
			name:     "all high",
			p:        Personality{RiskTolerance: 0.9, Ambition: 0.9, Friendliness: 0.9},
			risk:     BucketHigh,
			ambition: BucketHigh,
			friendly: BucketHigh,
		},
		{
			name:     "boundaries are mid",
			p:        Personality{RiskTolerance: 0.3, Ambition: 0.8, Friendliness: 0.7},
			risk:     BucketMid,
			ambition: BucketMid,
			friendly: BucketMid,
		},
		{
			name:     "mid band",
			p:        Personality{RiskTolerance: 0.5, Ambition: 0.6, Friendliness: 0.6},
			risk:     BucketMid,
			ambition: BucketMid,
			friendly: BucketMid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.risk, tt.p.RiskBucket())
			assert.Equal(t, tt.ambition, tt.p.AmbitionBucket())
			assert.Equal(t, tt.friendly, tt.p.FriendlinessBucket())
		})
	}
}

func TestProfile_Variant_Collaborative(t *testing.T) {
	base := Profile{
		Name:        "CFO",
		Personality: Personality{RiskTolerance: 0.3, Friendliness: 0.6, Ambition: 0.8},
	}

	v := base.Variant(ModeCollaborative, RiskMedium)

	assert.InDelta(t, 1.0, v.Personality.Ambition, 1e-9)
	assert.InDelta(t, 0.8, v.Personality.Friendliness, 1e-9)
	assert.InDelta(t, 0.3, v.Personality.RiskTolerance, 1e-9)

	// the original profile is untouched
	assert.InDelta(t, 0.8, base.Personality.Ambition, 1e-9)
}

func TestProfile_Variant_Uncollaborative(t *testing.T) {
	base := Profile{
		Personality: Personality{RiskTolerance: 0.5, Friendliness: 0.1, Ambition: 0.1},
	}

	v := base.Variant(ModeUncollaborative, RiskMedium)

	// clamped at zero
	assert.InDelta(t, 0.0, v.Personality.Ambition, 1e-9)
	assert.InDelta(t, 0.0, v.Personality.Friendliness, 1e-9)
}

func TestProfile_Variant_RiskLevels(t *testing.T) {
	base := Profile{
		Personality: Personality{RiskTolerance: 0.5, Friendliness: 0.5, Ambition: 0.5},
	}

	low := base.Variant("", RiskLow)
	assert.InDelta(t, 0.2, low.Personality.RiskTolerance, 1e-9)

	high := base.Variant("", RiskHigh)
	assert.InDelta(t, 0.8, high.Personality.RiskTolerance, 1e-9)

	// clamping at both ends
	timid := Profile{Personality: Personality{RiskTolerance: 0.1}}
	assert.InDelta(t, 0.0, timid.Variant("", RiskLow).Personality.RiskTolerance, 1e-9)

	bold := Profile{Personality: Personality{RiskTolerance: 0.9}}
	assert.InDelta(t, 1.0, bold.Variant("", RiskHigh).Personality.RiskTolerance, 1e-9)
}

func TestParseRiskLevel(t *testing.T) {
	level, ok := ParseRiskLevel("")
	assert.True(t, ok)
	assert.Equal(t, RiskMedium, level)

	level, ok = ParseRiskLevel("low")
	assert.True(t, ok)
	assert.Equal(t, RiskLow, level)

	_, ok = ParseRiskLevel("extreme")
	assert.False(t, ok)
}
