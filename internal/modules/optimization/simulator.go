package optimization

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/agentic-research/boardroom/internal/modules/agents"
	"github.com/agentic-research/boardroom/internal/modules/evaluation"
	"github.com/agentic-research/boardroom/internal/modules/runs"
)

const (
	defaultYears = 5
	maxYears     = 10
)

// Params configures one simulation.
type Params struct {
	Scenario           Scenario
	AgentCollaboration bool
	RiskTolerance      agents.RiskLevel
	NumYears           int
}

// YearResult is one year of the simulated time series.
type YearResult struct {
	Year        int                         `json:"year"`
	Allocation  Allocation                  `json:"allocation"`
	KPIValues   map[string]float64          `json:"kpi_values"`
	Evaluations []evaluation.Result         `json:"evaluations"`
	Consensus   evaluation.ConsensusSummary `json:"consensus"`
	Interaction string                      `json:"interaction"`
	Degraded    bool                        `json:"degraded"` // this year's allocation came from a settle that hit its iteration cap
}

// Simulator plays the board through N years of budget adjustment against the
// historical run data.
type Simulator struct {
	roster    []agents.Profile
	optimizer *Optimizer
	log       zerolog.Logger
}

// NewSimulator creates a simulator over the base roster. Personality
// variants are applied per run from the params.
func NewSimulator(roster []agents.Profile, log zerolog.Logger) *Simulator {
	return &Simulator{
		roster:    roster,
		optimizer: NewOptimizer(log),
		log:       log.With().Str("component", "simulator").Logger(),
	}
}

// Run simulates NumYears of board meetings. Year 1 replays the best
// historical run in the scenario slice, with its budget split back-estimated
// from the run's outcomes; each following year the board evaluates, the
// optimizer adjusts the allocation, and the nearest historical run to the new
// prevention level supplies the outcome. Lookup is deterministic, so
// identical params always produce identical series.
func (s *Simulator) Run(params Params, data []runs.Run) []YearResult {
	years := params.NumYears
	if years <= 0 {
		years = defaultYears
	}
	if years > maxYears {
		years = maxYears
	}

	mode := agents.ModeUncollaborative
	setting := "hostile"
	if params.AgentCollaboration {
		mode = agents.ModeCollaborative
		setting = "collaborative"
	}

	roster := agents.ApplyVariants(s.roster, mode, params.RiskTolerance)
	board := evaluation.NewBoardRoom(roster, s.log)

	pool := params.Scenario.Filter(data)
	if len(pool) == 0 {
		pool = data
	}

	allocation := DefaultSeed()
	kpis := defaultKPIs()
	if best, ok := bestRun(pool, params.RiskTolerance); ok {
		allocation = seedAllocation(best)
		kpis = best.KPIValues()
	}

	degraded := false
	results := make([]YearResult, 0, years)
	for year := 1; year <= years; year++ {
		outcome := board.Convene(kpis)

		results = append(results, YearResult{
			Year:        year,
			Allocation:  allocation,
			KPIValues:   kpis,
			Evaluations: outcome.PerAgent,
			Consensus:   outcome.Consensus,
			Interaction: board.Interaction(setting),
			Degraded:    degraded,
		})

		next, converged := s.optimizer.NextAllocation(allocation, outcome.PerAgent)
		degraded = !converged
		allocation = next
		kpis = s.lookupKPIs(pool, allocation)
	}

	s.log.Info().
		Int("years", len(results)).
		Str("scenario", params.Scenario.ID).
		Bool("collaboration", params.AgentCollaboration).
		Msg("Simulation complete")

	return results
}

// bestRun picks year 1's historical run: the best composite score, or the
// fewest compromised systems when the board is running risk-averse.
func bestRun(pool []runs.Run, risk agents.RiskLevel) (runs.Run, bool) {
	if len(pool) == 0 {
		return runs.Run{}, false
	}

	best := pool[0]
	for _, r := range pool[1:] {
		if risk == agents.RiskLow {
			if r.CompromisedSystems < best.CompromisedSystems {
				best = r
			}
			continue
		}
		if runScore(r) > runScore(best) {
			best = r
		}
	}
	return best, true
}

// seedAllocation back-estimates the budget split that produced a historical
// run. Few compromised systems imply the budget went to prevention and
// detection, heavy breaches imply response and recovery carried it, and a
// weak profit year shifts weight toward the reactive functions unless a paid
// ransom drained the whole budget.
func seedAllocation(r runs.Run) Allocation {
	a := DefaultSeed()

	if r.CompromisedSystems < 10 {
		a.Prevention += 10
		a.Detection += 5
		a.Response -= 5
		a.Recovery -= 10
	} else if r.CompromisedSystems > 30 {
		a.Prevention -= 10
		a.Detection -= 5
		a.Response += 10
		a.Recovery += 5
	}

	if r.AccumulatedProfit < 1000000 {
		if r.Ransomware == 1 && r.PayRansom == 1 {
			a.Prevention -= 5
			a.Detection -= 5
			a.Response -= 5
			a.Recovery -= 5
		} else {
			a.Response += 5
			a.Recovery += 5
		}
	}

	return a.Normalize().Clamp().Normalize()
}

// lookupKPIs selects the historical run whose compromised count is closest
// to what the new prevention budget predicts. Higher prevention spend maps
// linearly to fewer compromised systems.
func (s *Simulator) lookupKPIs(pool []runs.Run, allocation Allocation) map[string]float64 {
	if len(pool) == 0 {
		return defaultKPIs()
	}

	predicted := 100 - 2*allocation.Prevention

	best := pool[0]
	bestDist := math.Abs(best.CompromisedSystems - predicted)
	for _, r := range pool[1:] {
		if d := math.Abs(r.CompromisedSystems - predicted); d < bestDist {
			best = r
			bestDist = d
		}
	}
	return best.KPIValues()
}

// runScore weighs profit against breach impact.
func runScore(r runs.Run) float64 {
	return r.AccumulatedProfit/1000 - 10*r.CompromisedSystems
}

func defaultKPIs() map[string]float64 {
	return map[string]float64{
		"accumulated_profit":   1000000,
		"compromised_systems":  20,
		"systems_availability": runs.AvailabilityFor(20),
	}
}
