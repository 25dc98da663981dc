package runs

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MetricStats is the descriptive summary of one KPI across a set of runs.
type MetricStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"avg"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// Statistics summarizes the three board KPIs across a set of runs.
type Statistics struct {
	Count               int         `json:"count"`
	AccumulatedProfit   MetricStats `json:"accumulated_profit"`
	CompromisedSystems  MetricStats `json:"compromised_systems"`
	SystemsAvailability MetricStats `json:"systems_availability"`
}

// Summarize computes descriptive statistics for a run set. Returns the zero
// value for an empty input.
func Summarize(rs []Run) Statistics {
	if len(rs) == 0 {
		return Statistics{}
	}

	profit := make([]float64, len(rs))
	compromised := make([]float64, len(rs))
	availability := make([]float64, len(rs))
	for i, r := range rs {
		profit[i] = r.AccumulatedProfit
		compromised[i] = r.CompromisedSystems
		availability[i] = r.SystemsAvailability
	}

	return Statistics{
		Count:               len(rs),
		AccumulatedProfit:   metricStats(profit),
		CompromisedSystems:  metricStats(compromised),
		SystemsAvailability: metricStats(availability),
	}
}

func metricStats(values []float64) MetricStats {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return MetricStats{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDev: stat.StdDev(sorted, nil),
	}
}
