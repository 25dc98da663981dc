package optimization

import (
	"github.com/rs/zerolog"

	"github.com/agentic-research/boardroom/internal/modules/evaluation"
)

// Optimizer turns a year's board evaluations into next year's allocation.
// Three breach rules each contribute a fixed delta when their condition is
// met; deltas accumulate, then the result is clamped and renormalized.
type Optimizer struct {
	log zerolog.Logger
}

// NewOptimizer creates an optimizer.
func NewOptimizer(log zerolog.Logger) *Optimizer {
	return &Optimizer{log: log.With().Str("component", "optimizer").Logger()}
}

var (
	// CFO sees profit under its floor: invest in the cheap front of the
	// kill chain, pull back on the expensive tail.
	profitDelta = Delta{Prevention: 2, Detection: 1, Response: -1.5, Recovery: -1.5}

	// CRO or IT sees too many compromised systems: shift hard toward
	// prevention and detection.
	compromiseDelta = Delta{Prevention: 3, Detection: 2, Response: -2, Recovery: -3}

	// COO or CHRO sees availability under its floor.
	availabilityDelta = Delta{Prevention: 1.5, Detection: 1, Response: -1, Recovery: -1.5}
)

// NextAllocation computes the allocation for the following year. Each rule
// fires at most once regardless of how many agents tripped it. The returned
// bool reports whether the clamp/normalize fixpoint converged.
func (o *Optimizer) NextAllocation(prev Allocation, results []evaluation.Result) (Allocation, bool) {
	var total Delta

	if triggered(results, "accumulated_profit", evaluation.StatusBelowMin, "CFO") {
		total = total.add(profitDelta)
	}
	if triggered(results, "compromised_systems", evaluation.StatusAboveMax, "CRO", "IT_Manager") {
		total = total.add(compromiseDelta)
	}
	if triggered(results, "systems_availability", evaluation.StatusBelowMin, "COO", "CHRO") {
		total = total.add(availabilityDelta)
	}

	next, converged := prev.Add(total).Settle()

	o.log.Debug().
		Float64("prevention", next.Prevention).
		Float64("detection", next.Detection).
		Float64("response", next.Response).
		Float64("recovery", next.Recovery).
		Bool("converged", converged).
		Msg("Computed next allocation")

	return next, converged
}

// triggered reports whether any of the named agents flagged the KPI with the
// given status.
func triggered(results []evaluation.Result, kpi string, status evaluation.Status, names ...string) bool {
	for _, r := range results {
		if r.KPI != kpi || r.Status != status || r.DataMissing {
			continue
		}
		for _, name := range names {
			if r.AgentName == name {
				return true
			}
		}
	}
	return false
}
