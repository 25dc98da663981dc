package optimization

import "github.com/agentic-research/boardroom/internal/modules/runs"

// Scenario selects which slice of the historical data a simulation draws
// from.
type Scenario struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	filter      func(runs.Run) bool
}

// Matches reports whether the run belongs to this scenario's data slice.
func (s Scenario) Matches(r runs.Run) bool {
	if s.filter == nil {
		return true
	}
	return s.filter(r)
}

// Filter returns the subset of rs belonging to this scenario.
func (s Scenario) Filter(rs []runs.Run) []runs.Run {
	out := make([]runs.Run, 0, len(rs))
	for _, r := range rs {
		if s.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// scenarios is the fixed registry, in menu order.
var scenarios = []Scenario{
	{
		ID:          "simple_deterministic",
		Name:        "Simple Cyber Threats - Deterministic Attacker",
		Description: "Facing simple cyber threats with a predictable attacker",
		filter:      func(r runs.Run) bool { return r.Level == 1 && r.Ransomware == 0 },
	},
	{
		// Shares simple_deterministic's level-1 pool: attacker
		// unpredictability is not recorded in the run data.
		ID:          "simple_unpredictable",
		Name:        "Simple Cyber Threats - Unpredictable Attacker",
		Description: "Facing simple cyber threats with an unpredictable attacker",
		filter:      func(r runs.Run) bool { return r.Level == 1 && r.Ransomware == 0 },
	},
	{
		ID:          "ransomware",
		Name:        "Advanced Ransomware Attack",
		Description: "Facing advanced cyber attacks (ransomware)",
		filter:      func(r runs.Run) bool { return r.Ransomware == 1 && r.PayRansom == 0 },
	},
	{
		ID:          "ransomware_ransom",
		Name:        "Advanced Ransomware - With Ransom Payment",
		Description: "Facing advanced ransomware attacks with ransom payment option",
		filter:      func(r runs.Run) bool { return r.Ransomware == 1 && r.PayRansom == 1 },
	},
}

// Scenarios lists the registry in declaration order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// ScenarioByID looks up a scenario. The empty id resolves to the first
// registered scenario.
func ScenarioByID(id string) (Scenario, bool) {
	if id == "" {
		return scenarios[0], true
	}
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}
