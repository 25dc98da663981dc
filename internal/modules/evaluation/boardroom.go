package evaluation

import (
	"github.com/rs/zerolog"

	"github.com/agentic-research/boardroom/internal/modules/agents"
)

// BoardRoom aggregates individual agent evaluations for one simulated year
// into a consensus summary. It does no weighting: the summary is status
// counts plus the concatenated recommendation list.
type BoardRoom struct {
	evaluator *Evaluator
	profiles  []agents.Profile
	log       zerolog.Logger
}

// NewBoardRoom creates a board over the given roster. Profiles are fixed for
// the lifetime of the board; per-run personality variants are applied by the
// caller before construction.
func NewBoardRoom(profiles []agents.Profile, log zerolog.Logger) *BoardRoom {
	return &BoardRoom{
		evaluator: NewEvaluator(),
		profiles:  orderProfiles(profiles),
		log:       log.With().Str("component", "boardroom").Logger(),
	}
}

// Profiles returns the roster in board seating order.
func (b *BoardRoom) Profiles() []agents.Profile {
	return b.profiles
}

// Convene evaluates one year's KPI values with every agent and builds the
// consensus summary. Agents whose KPI is missing from the input are given
// the lenient on_target default and counted as skipped.
func (b *BoardRoom) Convene(yearResults map[string]float64) Outcome {
	perAgent := make([]Result, 0, len(b.profiles))
	counts := make(map[Status]int)
	recommendations := make([]string, 0, len(b.profiles))
	skipped := 0

	for _, profile := range b.profiles {
		var result Result
		if value, ok := yearResults[profile.KPI]; ok {
			result = b.evaluator.Evaluate(value, profile)
		} else {
			result = b.evaluator.EvaluateMissing(profile)
			skipped++
		}

		perAgent = append(perAgent, result)
		counts[result.Status]++
		recommendations = append(recommendations, result.Recommendation)
	}

	if skipped > 0 {
		b.log.Debug().Int("skipped", skipped).Msg("Agents evaluated without comparator data")
	}

	return Outcome{
		PerAgent: perAgent,
		Consensus: ConsensusSummary{
			StatusCounts:    counts,
			Recommendations: recommendations,
			Skipped:         skipped,
		},
		Interaction: b.Interaction("collaborative"),
	}
}

// Interaction describes the board dynamics for a meeting setting:
// collaborative, hostile, or neutral.
func (b *BoardRoom) Interaction(setting string) string {
	switch setting {
	case "collaborative":
		if b.averageFriendliness() > 0.7 {
			return "Bots work together constructively, finding common ground and shared strategy."
		}
		return "Bots align toward compromise, though some tension remains."
	case "hostile":
		return "Bots argue over priorities, each defending their domain. No consensus reached."
	default:
		return "Professional interaction. Each bot focuses on their own KPIs."
	}
}

func (b *BoardRoom) averageFriendliness() float64 {
	if len(b.profiles) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range b.profiles {
		sum += p.Personality.Friendliness
	}
	return sum / float64(len(b.profiles))
}
