// Package runs loads historical simulation runs from the available data
// sources: the real CSV export, manually entered JSON runs, or generated
// mock data. Missing sources are never an error - loading degrades down the
// priority list csv -> manual -> mock.
package runs

// Source identifies where a run came from.
type Source string

const (
	SourceCSV    Source = "real_data"
	SourceManual Source = "manual"
	SourceMock   Source = "mock"
)

// Run is one complete simulation run (a 5-year game played to completion).
type Run struct {
	ID                  string  `json:"id"`
	Source              Source  `json:"source"`
	Timestamp           string  `json:"timestamp,omitempty"`
	Strategy            string  `json:"strategy,omitempty"`
	AccumulatedProfit   float64 `json:"accumulated_profit"`
	CompromisedSystems  float64 `json:"compromised_systems"`
	SystemsAvailability float64 `json:"systems_availability"`
	SecurityInvestment  float64 `json:"security_investment,omitempty"`
	RecoveryCost        float64 `json:"recovery_cost,omitempty"`
	MonthsCompleted     float64 `json:"months_completed,omitempty"`
	Level               int     `json:"level,omitempty"`
	Ransomware          int     `json:"ransomware,omitempty"`
	PayRansom           int     `json:"pay_ransom,omitempty"`
}

// KPIValues exposes the run as the KPI map the board evaluates.
func (r Run) KPIValues() map[string]float64 {
	return map[string]float64{
		"accumulated_profit":   r.AccumulatedProfit,
		"compromised_systems":  r.CompromisedSystems,
		"systems_availability": r.SystemsAvailability,
	}
}

// SourceInfo describes the availability of each data source.
type SourceInfo struct {
	CSV struct {
		Available bool   `json:"available"`
		Path      string `json:"path,omitempty"`
		Count     int    `json:"count"`
	} `json:"csv"`
	Manual struct {
		Available bool     `json:"available"`
		Files     []string `json:"files,omitempty"`
		Count     int      `json:"count"`
	} `json:"manual"`
	Mock bool `json:"mock"` // always available as fallback
}
