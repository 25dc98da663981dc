package runs

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Loader reads runs from the configured sources.
type Loader struct {
	csvPath string
	dataDir string
	log     zerolog.Logger
}

// NewLoader creates a loader. csvPath is the historical export; dataDir is
// scanned for manually entered run_*.json files.
func NewLoader(csvPath, dataDir string, log zerolog.Logger) *Loader {
	return &Loader{
		csvPath: csvPath,
		dataDir: dataDir,
		log:     log.With().Str("component", "runs").Logger(),
	}
}

// Load returns runs from the best available source. prefer forces a single
// source; empty means the csv -> manual -> mock priority. limit of 0 means
// no limit.
func (l *Loader) Load(prefer Source, limit int) []Run {
	var out []Run

	if prefer == SourceCSV || prefer == "" {
		out = append(out, l.LoadCSV()...)
	}
	if prefer == SourceManual || (prefer == "" && len(out) == 0) {
		out = append(out, l.LoadManual()...)
	}
	if prefer == SourceMock || (prefer == "" && len(out) == 0) {
		out = append(out, Mock(defaultMockCount)...)
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// LoadCSV loads the real simulation export. Profit values are recorded in
// thousands with comma separators; they are cleaned and scaled to absolute
// currency here. A missing file returns an empty slice, not an error.
func (l *Loader) LoadCSV() []Run {
	f, err := os.Open(l.csvPath)
	if err != nil {
		if !os.IsNotExist(err) {
			l.log.Warn().Err(err).Str("path", l.csvPath).Msg("Could not open CSV data")
		}
		return nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err != nil {
		l.log.Warn().Err(err).Str("path", l.csvPath).Msg("Could not read CSV header")
		return nil
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	var out []Run
	for idx := 0; ; idx++ {
		record, err := reader.Read()
		if err != nil {
			break
		}

		run := Run{
			ID:     fmt.Sprintf("real_%d", idx+1),
			Source: SourceCSV,
		}

		if v, ok := field(record, col, "Cum. Profits"); ok {
			// stored in thousands
			run.AccumulatedProfit = parseNumber(v) * 1000
		} else if v, ok := field(record, col, "accumulated_profit"); ok {
			run.AccumulatedProfit = parseNumber(v)
		}

		if v, ok := field(record, col, "Comp. Systems"); ok {
			run.CompromisedSystems = parseNumber(v)
		} else if v, ok := field(record, col, "compromised_systems"); ok {
			run.CompromisedSystems = parseNumber(v)
		}

		if v, ok := field(record, col, "systems_availability"); ok {
			run.SystemsAvailability = parseNumber(v)
		} else {
			// availability is not in the export; derive it from the
			// compromised count the same way the simulator does
			run.SystemsAvailability = AvailabilityFor(run.CompromisedSystems)
		}

		if v, ok := field(record, col, "Months Completed"); ok {
			run.MonthsCompleted = parseNumber(v)
		}
		if v, ok := field(record, col, "Level"); ok {
			run.Level = int(parseNumber(v))
		}
		if v, ok := field(record, col, "Ransomware"); ok {
			run.Ransomware = int(parseNumber(v))
		}
		if v, ok := field(record, col, "Pay Ransom"); ok {
			run.PayRansom = int(parseNumber(v))
		}
		if v, ok := field(record, col, "timestamp"); ok {
			run.Timestamp = v
		}

		out = append(out, run)
	}

	l.log.Info().Int("runs", len(out)).Str("path", l.csvPath).Msg("Loaded CSV runs")
	return out
}

// LoadManual loads manually entered runs from run_*.json files in the data
// directory. Unreadable files are skipped with a warning.
func (l *Loader) LoadManual() []Run {
	entries, err := os.ReadDir(l.dataDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, "run_") && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var out []Run
	for _, name := range names {
		path := filepath.Join(l.dataDir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			l.log.Warn().Err(err).Str("path", path).Msg("Could not read manual run")
			continue
		}

		var run Run
		if err := json.Unmarshal(raw, &run); err != nil {
			l.log.Warn().Err(err).Str("path", path).Msg("Could not parse manual run")
			continue
		}
		run.Source = SourceManual
		if run.ID == "" {
			run.ID = strings.TrimSuffix(name, ".json")
		}
		out = append(out, run)
	}

	if len(out) > 0 {
		l.log.Info().Int("runs", len(out)).Msg("Loaded manual runs")
	}
	return out
}

// Info reports the availability of each source.
func (l *Loader) Info() SourceInfo {
	var info SourceInfo
	info.Mock = true

	if csvRuns := l.LoadCSV(); len(csvRuns) > 0 {
		info.CSV.Available = true
		info.CSV.Path = l.csvPath
		info.CSV.Count = len(csvRuns)
	}

	manual := l.LoadManual()
	if len(manual) > 0 {
		info.Manual.Available = true
		info.Manual.Count = len(manual)
		for _, r := range manual {
			info.Manual.Files = append(info.Manual.Files, r.ID)
		}
	}

	return info
}

// AvailabilityFor derives systems availability from a compromised-systems
// count: 1 - compromised/100, clamped to [0,1].
func AvailabilityFor(compromised float64) float64 {
	availability := 1.0 - compromised/100
	if availability < 0 {
		return 0
	}
	if availability > 1 {
		return 1
	}
	return availability
}

func field(record []string, col map[string]int, name string) (string, bool) {
	i, ok := col[name]
	if !ok || i >= len(record) {
		return "", false
	}
	v := strings.TrimSpace(record[i])
	if v == "" {
		return "", false
	}
	return v, true
}

// parseNumber parses a numeric cell, tolerating thousands separators.
// Unparseable cells become 0.
func parseNumber(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
