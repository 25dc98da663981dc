// Package evaluation implements per-agent KPI evaluation and board-level
// consensus aggregation.
package evaluation

import "github.com/agentic-research/boardroom/internal/modules/agents"

// Status is the outcome of comparing a KPI value against an agent's bounds.
type Status string

const (
	StatusBelowMin  Status = "below_min"
	StatusOnTarget  Status = "on_target"
	StatusAboveMax  Status = "above_max"
	StatusOffTarget Status = "off_target"
)

// Human returns the board-meeting wording for a status.
func (s Status) Human() string {
	switch s {
	case StatusBelowMin:
		return "below target"
	case StatusAboveMax:
		return "above target"
	case StatusOffTarget:
		return "off target"
	default:
		return "on target"
	}
}

// Result is one agent's evaluation of one simulation-year result.
// Immutable once produced.
type Result struct {
	AgentName      string  `json:"agent_name"`
	KPI            string  `json:"kpi"`
	KPIValue       float64 `json:"kpi_value"`
	Status         Status  `json:"status"`
	Exceeding      bool    `json:"exceeding,omitempty"`    // beyond the 10% band on the favorable side
	DataMissing    bool    `json:"data_missing,omitempty"` // KPI absent from the run; status defaulted
	Summary        string  `json:"summary"`
	Recommendation string  `json:"recommendation"`
}

// ConsensusSummary aggregates one year's evaluations across the board.
// Counting only - no weighting or voting arithmetic.
type ConsensusSummary struct {
	StatusCounts    map[Status]int `json:"status_counts"`
	Recommendations []string       `json:"recommendations"`
	Skipped         int            `json:"skipped"` // agents evaluated without comparator data
}

// Outcome is the full product of one board meeting.
type Outcome struct {
	PerAgent    []Result         `json:"per_agent"`
	Consensus   ConsensusSummary `json:"consensus_summary"`
	Interaction string           `json:"interaction"`
}

// orderProfiles returns profiles in fixed roster order for the named five
// agents, then the remaining profiles in their supplied order.
func orderProfiles(profiles []agents.Profile) []agents.Profile {
	byName := make(map[string]int, len(profiles))
	for i, p := range profiles {
		byName[p.Name] = i
	}

	ordered := make([]agents.Profile, 0, len(profiles))
	taken := make(map[string]bool, len(profiles))
	for _, name := range agents.RosterOrder {
		if i, ok := byName[name]; ok {
			ordered = append(ordered, profiles[i])
			taken[name] = true
		}
	}
	for _, p := range profiles {
		if !taken[p.Name] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}
