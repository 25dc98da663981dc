package runs

import (
	"fmt"
	"math/rand"
)

const defaultMockCount = 20

// mockSeed keeps generated data stable across calls so the mock fallback is
// reproducible (and the endpoints built on it are idempotent).
const mockSeed = 42

// Mock generates deterministic mock runs in the same ranges as the real
// export. Used as the last-resort data source.
func Mock(count int) []Run {
	if count <= 0 {
		count = defaultMockCount
	}

	rng := rand.New(rand.NewSource(mockSeed))
	out := make([]Run, 0, count)
	for i := 0; i < count; i++ {
		compromised := float64(rng.Intn(26))
		run := Run{
			ID:                  fmt.Sprintf("mock_%d", i+1),
			Source:              SourceMock,
			Strategy:            fmt.Sprintf("Mock strategy %d", i+1),
			AccumulatedProfit:   float64(800000 + rng.Intn(1200001)),
			CompromisedSystems:  compromised,
			SystemsAvailability: round3(0.85 + rng.Float64()*0.14),
			SecurityInvestment:  float64(100000 + rng.Intn(400001)),
			RecoveryCost:        float64(50000 + rng.Intn(250001)),
			MonthsCompleted:     60,
			Level:               1 + rng.Intn(2),
			Ransomware:          rng.Intn(2),
		}
		if run.Ransomware == 1 {
			run.PayRansom = rng.Intn(2)
		}
		out = append(out, run)
	}
	return out
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}
