// Package optimization adjusts the security budget allocation between years
// based on the board's verdict, and drives multi-year what-if simulations
// over the historical run data.
package optimization

import "math"

// Allocation splits the security budget across the four defense functions,
// expressed as percentages that sum to 100.
type Allocation struct {
	Prevention float64 `json:"prevention"` // F1
	Detection  float64 `json:"detection"`  // F2
	Response   float64 `json:"response"`   // F3
	Recovery   float64 `json:"recovery"`   // F4
}

// Budget bounds per function. Prevention and detection carry the bulk of the
// budget, response and recovery have wider floors.
const (
	minMajor = 10.0
	maxMajor = 60.0
	minMinor = 5.0
	maxMinor = 50.0
)

// settleRounds caps the clamp/normalize fixpoint iteration.
const settleRounds = 10

// settleEpsilon is the per-field convergence tolerance.
const settleEpsilon = 0.01

// DefaultSeed is the allocation used when no historical data is available.
func DefaultSeed() Allocation {
	return Allocation{Prevention: 30, Detection: 30, Response: 25, Recovery: 15}
}

// Clamp forces each function into its allowed band without renormalizing.
func (a Allocation) Clamp() Allocation {
	return Allocation{
		Prevention: clampRange(a.Prevention, minMajor, maxMajor),
		Detection:  clampRange(a.Detection, minMajor, maxMajor),
		Response:   clampRange(a.Response, minMinor, maxMinor),
		Recovery:   clampRange(a.Recovery, minMinor, maxMinor),
	}
}

// Normalize rescales the allocation proportionally so it sums to 100. A zero
// allocation falls back to the default seed.
func (a Allocation) Normalize() Allocation {
	total := a.Prevention + a.Detection + a.Response + a.Recovery
	if total <= 0 {
		return DefaultSeed()
	}
	factor := 100 / total
	return Allocation{
		Prevention: a.Prevention * factor,
		Detection:  a.Detection * factor,
		Response:   a.Response * factor,
		Recovery:   a.Recovery * factor,
	}
}

// Settle alternates clamp and normalize until the allocation stops moving.
// Normalizing can push a field back out of its band, so the two operations
// are iterated to a fixpoint; the iteration is capped and the bool reports
// whether convergence was reached within the cap.
func (a Allocation) Settle() (Allocation, bool) {
	current := a
	for i := 0; i < settleRounds; i++ {
		next := current.Clamp().Normalize()
		if current.almostEqual(next) {
			return next, true
		}
		current = next
	}
	return current, false
}

// Sum returns the allocation total.
func (a Allocation) Sum() float64 {
	return a.Prevention + a.Detection + a.Response + a.Recovery
}

// Add applies a delta to every function.
func (a Allocation) Add(d Delta) Allocation {
	return Allocation{
		Prevention: a.Prevention + d.Prevention,
		Detection:  a.Detection + d.Detection,
		Response:   a.Response + d.Response,
		Recovery:   a.Recovery + d.Recovery,
	}
}

func (a Allocation) almostEqual(b Allocation) bool {
	return math.Abs(a.Prevention-b.Prevention) < settleEpsilon &&
		math.Abs(a.Detection-b.Detection) < settleEpsilon &&
		math.Abs(a.Response-b.Response) < settleEpsilon &&
		math.Abs(a.Recovery-b.Recovery) < settleEpsilon
}

// Delta is an additive adjustment to an allocation.
type Delta struct {
	Prevention float64
	Detection  float64
	Response   float64
	Recovery   float64
}

func (d Delta) add(other Delta) Delta {
	return Delta{
		Prevention: d.Prevention + other.Prevention,
		Detection:  d.Detection + other.Detection,
		Response:   d.Response + other.Response,
		Recovery:   d.Recovery + other.Recovery,
	}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
