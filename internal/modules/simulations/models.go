// Package simulations persists per-simulation evaluation logs and threshold
// comparisons in history.db. Rows are append-only; the log is an audit trail
// of what the board saw, with the bounds copied in at log time so later
// threshold edits do not rewrite history.
package simulations

// RunLog is one logged agent evaluation inside a simulation. The status is
// computed from the bounds as supplied at log time.
type RunLog struct {
	ID                string   `json:"id"`
	SimulationID      string   `json:"simulation_id"`
	ThresholdID       string   `json:"threshold_id,omitempty"`
	AgentName         string   `json:"agent_name"`
	KPIName           string   `json:"kpi_name"`
	ActualValue       float64  `json:"actual_value"`
	TargetValue       *float64 `json:"target_value,omitempty"`
	MinValue          *float64 `json:"min_value,omitempty"`
	MaxValue          *float64 `json:"max_value,omitempty"`
	Status            string   `json:"status"`
	IsWithinThreshold bool     `json:"is_within_threshold"`
	CreatedAt         int64    `json:"created_at"`
}

// Comparison records a single actual-vs-threshold check.
type Comparison struct {
	ID                string   `json:"id"`
	SimulationID      string   `json:"simulation_id"`
	ThresholdID       string   `json:"threshold_id"`
	IsWithinThreshold bool     `json:"is_within_threshold"`
	ActualValue       float64  `json:"actual_value"`
	ThresholdMin      *float64 `json:"threshold_min,omitempty"`
	ThresholdMax      *float64 `json:"threshold_max,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	CreatedAt         int64    `json:"created_at"`
}

// ComplianceStats summarizes pass/fail counts over a window of comparisons.
type ComplianceStats struct {
	Total    int          `json:"total"`
	Passed   int          `json:"passed"`
	Failed   int          `json:"failed"`
	PassRate float64      `json:"pass_rate"`
	Failures []Comparison `json:"failures,omitempty"`
}
