package evaluation

import (
	"fmt"
	"math"
	"strings"

	"github.com/agentic-research/boardroom/internal/modules/agents"
)

// toleranceBand is the fraction of a bound used to classify a result as
// "exceeding" (min-only / max-only profiles) or off target (target-only
// profiles). Bound comparisons themselves are exact.
const toleranceBand = 0.10

// Evaluator turns (kpi value, profile) pairs into Results. It is stateless;
// Evaluate is a pure function of its inputs.
type Evaluator struct{}

// NewEvaluator creates an evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate compares a KPI value against the profile's bounds and produces a
// status plus a personality-flavored recommendation.
func (e *Evaluator) Evaluate(kpiValue float64, profile agents.Profile) Result {
	status, exceeding := classify(kpiValue, profile)

	result := Result{
		AgentName: profile.Name,
		KPI:       profile.KPI,
		KPIValue:  kpiValue,
		Status:    status,
		Exceeding: exceeding,
	}

	result.Summary = summaryLine(result, profile)
	result.Recommendation = recommend(result, profile)
	return result
}

// EvaluateMissing produces the lenient default result for an agent whose KPI
// is absent from the run: on_target, flagged so callers can tell.
func (e *Evaluator) EvaluateMissing(profile agents.Profile) Result {
	result := Result{
		AgentName:   profile.Name,
		KPI:         profile.KPI,
		Status:      StatusOnTarget,
		DataMissing: true,
		Summary:     fmt.Sprintf("%s: KPI '%s' not found in results", profile.Name, profile.KPI),
	}
	result.Recommendation = fmt.Sprintf("%s: Cannot recommend without %s data", profile.Name, profile.KPI)
	return result
}

// classify maps a value onto the status taxonomy. Bound checks are exact;
// the tolerance band only flags "exceeding" on the favorable side, and
// decides on/off target for target-only profiles.
func classify(value float64, p agents.Profile) (Status, bool) {
	switch {
	case p.HasMin() && p.HasMax():
		if value < *p.MinValue {
			return StatusBelowMin, false
		}
		if value > *p.MaxValue {
			return StatusAboveMax, false
		}
		return StatusOnTarget, false

	case p.HasMin():
		if value < *p.MinValue {
			return StatusBelowMin, false
		}
		exceeding := value > *p.MinValue*(1+toleranceBand)
		return StatusOnTarget, exceeding

	case p.HasMax():
		if value > *p.MaxValue {
			return StatusAboveMax, false
		}
		exceeding := value < *p.MaxValue*(1-toleranceBand)
		return StatusOnTarget, exceeding

	case p.HasTarget():
		band := math.Abs(*p.TargetValue) * toleranceBand
		if math.Abs(value-*p.TargetValue) <= band {
			return StatusOnTarget, false
		}
		return StatusOffTarget, false

	default:
		// No bounds configured - nothing to violate.
		return StatusOnTarget, false
	}
}

// summaryLine builds the "CFO sees accumulated_profit=1,500,000.00,
// status=on target (...)" meeting line.
func summaryLine(r Result, profile agents.Profile) string {
	line := fmt.Sprintf("%s sees %s=%s, status=%s",
		profile.Name, profile.KPI, formatKPIValue(r.KPIValue), r.Status.Human())
	if comment := commentary(r, profile.Personality); comment != "" {
		line += comment
	}
	return line
}

// formatKPIValue formats values the way the board reads them: fractions as
// percentages, everything else with thousands separators.
func formatKPIValue(v float64) string {
	if v > 0 && v < 1 {
		return fmt.Sprintf("%.1f%%", v*100)
	}
	return groupThousands(fmt.Sprintf("%.2f", v))
}

// groupThousands inserts comma separators into the integer part of a
// formatted decimal ("1500000.00" -> "1,500,000.00").
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
