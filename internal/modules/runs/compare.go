package runs

import "math"

// RunDigest is the KPI triple reported for a "best" run in comparisons.
type RunDigest struct {
	AccumulatedProfit   float64 `json:"accumulated_profit"`
	CompromisedSystems  float64 `json:"compromised_systems"`
	SystemsAvailability float64 `json:"systems_availability"`
}

// MetricComparison is the per-KPI real-vs-bot delta.
type MetricComparison struct {
	RealAvg     float64 `json:"real_avg"`
	BotAvg      float64 `json:"bot_avg"`
	Difference  float64 `json:"difference"`
	PctDistance float64 `json:"pct_difference"` // relative to the real average
}

// Comparison is the full real-vs-bot report.
type Comparison struct {
	BestRealProfit       RunDigest                   `json:"best_real_profit"`
	BestRealSecurity     RunDigest                   `json:"best_real_security"`
	BestRealAvailability RunDigest                   `json:"best_real_availability"`
	BestBotProfit        RunDigest                   `json:"best_bot_profit"`
	BestBotSecurity      RunDigest                   `json:"best_bot_security"`
	BestBotAvailability  RunDigest                   `json:"best_bot_availability"`
	RealAvg              RunDigest                   `json:"real_avg"`
	BotAvg               RunDigest                   `json:"bot_avg"`
	Metrics              map[string]MetricComparison `json:"detailed_comparison"`
	RealRuns             int                         `json:"real_runs"`
	BotRuns              int                         `json:"bot_runs"`
}

// Compare builds the real-vs-bot comparison report. Both inputs must be
// non-empty; callers enforce that.
func Compare(real, bot []Run) Comparison {
	cmp := Comparison{
		BestRealProfit:       digest(BestByProfit(real)),
		BestRealSecurity:     digest(BestBySecurity(real)),
		BestRealAvailability: digest(bestByAvailability(real)),
		BestBotProfit:        digest(BestByProfit(bot)),
		BestBotSecurity:      digest(BestBySecurity(bot)),
		BestBotAvailability:  digest(bestByAvailability(bot)),
		RealAvg:              average(real),
		BotAvg:               average(bot),
		RealRuns:             len(real),
		BotRuns:              len(bot),
	}

	cmp.Metrics = map[string]MetricComparison{
		"accumulated_profit":   metricComparison(cmp.RealAvg.AccumulatedProfit, cmp.BotAvg.AccumulatedProfit),
		"compromised_systems":  metricComparison(cmp.RealAvg.CompromisedSystems, cmp.BotAvg.CompromisedSystems),
		"systems_availability": metricComparison(cmp.RealAvg.SystemsAvailability, cmp.BotAvg.SystemsAvailability),
	}

	return cmp
}

// BestByProfit returns the run with the highest accumulated profit.
func BestByProfit(rs []Run) Run {
	best := rs[0]
	for _, r := range rs[1:] {
		if r.AccumulatedProfit > best.AccumulatedProfit {
			best = r
		}
	}
	return best
}

// BestBySecurity returns the run with the fewest compromised systems.
func BestBySecurity(rs []Run) Run {
	best := rs[0]
	for _, r := range rs[1:] {
		if r.CompromisedSystems < best.CompromisedSystems {
			best = r
		}
	}
	return best
}

func bestByAvailability(rs []Run) Run {
	best := rs[0]
	for _, r := range rs[1:] {
		if r.SystemsAvailability > best.SystemsAvailability {
			best = r
		}
	}
	return best
}

func digest(r Run) RunDigest {
	return RunDigest{
		AccumulatedProfit:   r.AccumulatedProfit,
		CompromisedSystems:  r.CompromisedSystems,
		SystemsAvailability: r.SystemsAvailability,
	}
}

func average(rs []Run) RunDigest {
	if len(rs) == 0 {
		return RunDigest{}
	}
	var out RunDigest
	for _, r := range rs {
		out.AccumulatedProfit += r.AccumulatedProfit
		out.CompromisedSystems += r.CompromisedSystems
		out.SystemsAvailability += r.SystemsAvailability
	}
	n := float64(len(rs))
	out.AccumulatedProfit /= n
	out.CompromisedSystems /= n
	out.SystemsAvailability /= n
	return out
}

func metricComparison(realAvg, botAvg float64) MetricComparison {
	out := MetricComparison{
		RealAvg:    realAvg,
		BotAvg:     botAvg,
		Difference: botAvg - realAvg,
	}
	if math.Abs(realAvg) > 0 {
		out.PctDistance = (botAvg - realAvg) / math.Abs(realAvg) * 100
	}
	return out
}
