// Package agents defines the executive agent roster and its configuration.
// Each agent is a value object: a KPI focus, threshold bounds, and three
// personality scalars that flavor evaluations and recommendations.
package agents

// Direction indicates whether an agent wants its KPI high or low.
type Direction string

const (
	DirectionMaximize Direction = "maximize"
	DirectionMinimize Direction = "minimize"
)

// Bucket classifies a personality scalar into a coarse band used by the
// recommendation rule tables.
type Bucket string

const (
	BucketLow  Bucket = "low"
	BucketMid  Bucket = "mid"
	BucketHigh Bucket = "high"
)

// Personality holds the three scalars that drive an agent's tone.
// All values are in [0,1].
type Personality struct {
	RiskTolerance float64 `json:"risk_tolerance"`
	Friendliness  float64 `json:"friendliness"`
	Ambition      float64 `json:"ambition"`
}

// RiskBucket classifies risk tolerance: low < 0.3, high > 0.7.
func (p Personality) RiskBucket() Bucket {
	switch {
	case p.RiskTolerance < 0.3:
		return BucketLow
	case p.RiskTolerance > 0.7:
		return BucketHigh
	default:
		return BucketMid
	}
}

// AmbitionBucket classifies ambition: low < 0.5, high > 0.8.
func (p Personality) AmbitionBucket() Bucket {
	switch {
	case p.Ambition < 0.5:
		return BucketLow
	case p.Ambition > 0.8:
		return BucketHigh
	default:
		return BucketMid
	}
}

// FriendlinessBucket classifies friendliness: low < 0.5, high > 0.7.
func (p Personality) FriendlinessBucket() Bucket {
	switch {
	case p.Friendliness < 0.5:
		return BucketLow
	case p.Friendliness > 0.7:
		return BucketHigh
	default:
		return BucketMid
	}
}

// Profile is the static per-agent configuration. Immutable during a run;
// variants produce adjusted copies before the run starts.
type Profile struct {
	Name        string      `json:"name"`
	KPI         string      `json:"kpi"`
	Direction   Direction   `json:"direction"`
	MinValue    *float64    `json:"min_value,omitempty"`
	MaxValue    *float64    `json:"max_value,omitempty"`
	TargetValue *float64    `json:"target_value,omitempty"`
	Personality Personality `json:"personality"`
}

// HasMin reports whether the profile carries a lower bound.
func (p Profile) HasMin() bool { return p.MinValue != nil }

// HasMax reports whether the profile carries an upper bound.
func (p Profile) HasMax() bool { return p.MaxValue != nil }

// HasTarget reports whether the profile carries a point target.
func (p Profile) HasTarget() bool { return p.TargetValue != nil }

// CollaborationMode selects how agent personalities are perturbed for a run.
type CollaborationMode string

const (
	ModeCollaborative   CollaborationMode = "collaborative"
	ModeUncollaborative CollaborationMode = "uncollaborative"
)

// RiskLevel selects the run-wide risk tolerance perturbation.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ParseRiskLevel validates a risk level string, defaulting empty to medium.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh:
		return RiskLevel(s), true
	case "":
		return RiskMedium, true
	default:
		return "", false
	}
}

// Variant returns a copy of the profile with personality offsets applied.
// Collaborative runs add 0.2 to ambition and friendliness, uncollaborative
// runs subtract 0.2; risk level shifts risk tolerance by 0.3 either way.
// All scalars stay clamped to [0,1].
func (p Profile) Variant(mode CollaborationMode, risk RiskLevel) Profile {
	out := p
	switch mode {
	case ModeCollaborative:
		out.Personality.Ambition = clamp01(out.Personality.Ambition + 0.2)
		out.Personality.Friendliness = clamp01(out.Personality.Friendliness + 0.2)
	case ModeUncollaborative:
		out.Personality.Ambition = clamp01(out.Personality.Ambition - 0.2)
		out.Personality.Friendliness = clamp01(out.Personality.Friendliness - 0.2)
	}

	switch risk {
	case RiskLow:
		out.Personality.RiskTolerance = clamp01(out.Personality.RiskTolerance - 0.3)
	case RiskHigh:
		out.Personality.RiskTolerance = clamp01(out.Personality.RiskTolerance + 0.3)
	}

	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func floatPtr(v float64) *float64 { return &v }
