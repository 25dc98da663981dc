package agents

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
)

// RosterOrder is the fixed board seating order. Output that lists agents
// follows this order for the named agents, then insertion order for extras.
var RosterOrder = []string{"CFO", "CRO", "COO", "IT_Manager", "CHRO"}

// DefaultRoster returns the built-in five-agent board.
func DefaultRoster() []Profile {
	return []Profile{
		{
			Name:      "CFO",
			KPI:       "accumulated_profit",
			Direction: DirectionMaximize,
			MinValue:  floatPtr(1200000),
			Personality: Personality{
				RiskTolerance: 0.3,
				Friendliness:  0.6,
				Ambition:      0.8,
			},
		},
		{
			Name:      "CRO",
			KPI:       "compromised_systems",
			Direction: DirectionMinimize,
			MaxValue:  floatPtr(10),
			Personality: Personality{
				RiskTolerance: 0.2,
				Friendliness:  0.5,
				Ambition:      0.6,
			},
		},
		{
			Name:      "COO",
			KPI:       "systems_availability",
			Direction: DirectionMaximize,
			MinValue:  floatPtr(0.92),
			Personality: Personality{
				RiskTolerance: 0.5,
				Friendliness:  0.7,
				Ambition:      0.7,
			},
		},
		{
			Name:      "IT_Manager",
			KPI:       "compromised_systems",
			Direction: DirectionMinimize,
			MaxValue:  floatPtr(8),
			Personality: Personality{
				RiskTolerance: 0.25,
				Friendliness:  0.6,
				Ambition:      0.7,
			},
		},
		{
			Name:      "CHRO",
			KPI:       "systems_availability",
			Direction: DirectionMaximize,
			MinValue:  floatPtr(0.93),
			Personality: Personality{
				RiskTolerance: 0.4,
				Friendliness:  0.75,
				Ambition:      0.65,
			},
		},
	}
}

// configEntry is the on-disk per-agent shape, kept compatible with the
// historical agent_config.json layout.
type configEntry struct {
	KPI    string `json:"kpi"`
	Target struct {
		Min    *float64 `json:"min,omitempty"`
		Max    *float64 `json:"max,omitempty"`
		Target *float64 `json:"target,omitempty"`
	} `json:"target"`
	Personality Personality `json:"personality"`
}

type configFile struct {
	Agents map[string]configEntry `json:"agents"`
}

// LoadRoster loads the agent roster from a JSON config file. A missing or
// unreadable file is not an error: the built-in defaults are used instead.
func LoadRoster(path string, log zerolog.Logger) []Profile {
	log = log.With().Str("component", "agents").Logger()

	if path == "" {
		return DefaultRoster()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Could not read agent config, using defaults")
		}
		return DefaultRoster()
	}

	entries, err := parseConfig(raw)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Could not parse agent config, using defaults")
		return DefaultRoster()
	}

	profiles := profilesFromEntries(entries)
	log.Info().Int("agents", len(profiles)).Str("path", path).Msg("Loaded agent roster from config")
	return profiles
}

// parseConfig accepts both the {"agents": {...}} wrapper and a bare map.
func parseConfig(raw []byte) (map[string]configEntry, error) {
	var wrapped configFile
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Agents) > 0 {
		return wrapped.Agents, nil
	}

	var bare map[string]configEntry
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("failed to parse agent config: %w", err)
	}
	if len(bare) == 0 {
		return nil, fmt.Errorf("agent config contains no agents")
	}
	return bare, nil
}

func profilesFromEntries(entries map[string]configEntry) []Profile {
	profiles := make([]Profile, 0, len(entries))

	appendProfile := func(name string) {
		entry, ok := entries[name]
		if !ok {
			return
		}
		direction := DirectionMaximize
		if entry.Target.Max != nil && entry.Target.Min == nil {
			direction = DirectionMinimize
		}
		profiles = append(profiles, Profile{
			Name:        name,
			KPI:         entry.KPI,
			Direction:   direction,
			MinValue:    entry.Target.Min,
			MaxValue:    entry.Target.Max,
			TargetValue: entry.Target.Target,
			Personality: entry.Personality,
		})
	}

	// Roster-ordered agents first, then any extras in name order.
	seen := make(map[string]bool, len(RosterOrder))
	for _, name := range RosterOrder {
		appendProfile(name)
		seen[name] = true
	}
	var extras []string
	for name := range entries {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		appendProfile(name)
	}

	return profiles
}

// SaveRoster writes the roster back out in the {"agents": ...} wrapper shape.
func SaveRoster(path string, profiles []Profile) error {
	out := configFile{Agents: make(map[string]configEntry, len(profiles))}
	for _, p := range profiles {
		var entry configEntry
		entry.KPI = p.KPI
		entry.Target.Min = p.MinValue
		entry.Target.Max = p.MaxValue
		entry.Target.Target = p.TargetValue
		entry.Personality = p.Personality
		out.Agents[p.Name] = entry
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal agent config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write agent config: %w", err)
	}
	return nil
}

// ApplyVariants returns adjusted copies of all profiles for a run.
func ApplyVariants(profiles []Profile, mode CollaborationMode, risk RiskLevel) []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = p.Variant(mode, risk)
	}
	return out
}
