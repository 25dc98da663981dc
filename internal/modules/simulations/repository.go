package simulations

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository handles the append-only simulation history in history.db.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a simulation history repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "simulations").Logger(),
	}
}

// LogRun records one agent evaluation against its bounds. Status and the
// within-threshold flag are computed here from the supplied bounds so the
// stored row is self-contained.
func (r *Repository) LogRun(simulationID, thresholdID, agentName, kpiName string, actual float64, target, min, max *float64) (RunLog, error) {
	entry := RunLog{
		ID:           uuid.NewString(),
		SimulationID: simulationID,
		ThresholdID:  thresholdID,
		AgentName:    agentName,
		KPIName:      kpiName,
		ActualValue:  actual,
		TargetValue:  target,
		MinValue:     min,
		MaxValue:     max,
		CreatedAt:    time.Now().Unix(),
	}
	entry.Status, entry.IsWithinThreshold = classify(actual, min, max)

	_, err := r.db.Exec(`
		INSERT INTO simulation_runs (id, simulation_id, threshold_id, agent_name, kpi_name,
			actual_value, target_value, min_value, max_value, status, is_within_threshold, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SimulationID, nullIfEmpty(entry.ThresholdID), entry.AgentName, entry.KPIName,
		entry.ActualValue, entry.TargetValue, entry.MinValue, entry.MaxValue,
		entry.Status, boolToInt(entry.IsWithinThreshold), entry.CreatedAt)
	if err != nil {
		return RunLog{}, fmt.Errorf("failed to log simulation run: %w", err)
	}

	return entry, nil
}

// ResultsBySimulation returns all logged evaluations for one simulation in
// insertion order.
func (r *Repository) ResultsBySimulation(simulationID string) ([]RunLog, error) {
	rows, err := r.db.Query(`
		SELECT id, simulation_id, threshold_id, agent_name, kpi_name, actual_value,
			target_value, min_value, max_value, status, is_within_threshold, created_at
		FROM simulation_runs
		WHERE simulation_id = ?
		ORDER BY created_at, rowid
	`, simulationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation results: %w", err)
	}
	defer rows.Close()

	var out []RunLog
	for rows.Next() {
		var entry RunLog
		var thresholdID sql.NullString
		var within int
		err := rows.Scan(&entry.ID, &entry.SimulationID, &thresholdID, &entry.AgentName,
			&entry.KPIName, &entry.ActualValue, &entry.TargetValue, &entry.MinValue,
			&entry.MaxValue, &entry.Status, &within, &entry.CreatedAt)
		if err != nil {
			r.log.Warn().Err(err).Msg("Failed to scan simulation run row")
			continue
		}
		entry.ThresholdID = thresholdID.String
		entry.IsWithinThreshold = within != 0
		out = append(out, entry)
	}
	return out, rows.Err()
}

// LogComparison records one actual-vs-threshold check.
func (r *Repository) LogComparison(simulationID, thresholdID string, actual float64, min, max *float64, notes string) (Comparison, error) {
	_, within := classify(actual, min, max)
	cmp := Comparison{
		ID:                uuid.NewString(),
		SimulationID:      simulationID,
		ThresholdID:       thresholdID,
		IsWithinThreshold: within,
		ActualValue:       actual,
		ThresholdMin:      min,
		ThresholdMax:      max,
		Notes:             notes,
		CreatedAt:         time.Now().Unix(),
	}

	_, err := r.db.Exec(`
		INSERT INTO comparisons (id, simulation_id, threshold_id, is_within_threshold,
			actual_value, threshold_min, threshold_max, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, cmp.ID, cmp.SimulationID, cmp.ThresholdID, boolToInt(cmp.IsWithinThreshold),
		cmp.ActualValue, cmp.ThresholdMin, cmp.ThresholdMax, cmp.Notes, cmp.CreatedAt)
	if err != nil {
		return Comparison{}, fmt.Errorf("failed to log comparison: %w", err)
	}

	return cmp, nil
}

// HistoryByThreshold returns the most recent comparisons against one
// threshold, newest first. limit <= 0 means no limit.
func (r *Repository) HistoryByThreshold(thresholdID string, limit int) ([]Comparison, error) {
	query := `
		SELECT id, simulation_id, threshold_id, is_within_threshold, actual_value,
			threshold_min, threshold_max, notes, created_at
		FROM comparisons
		WHERE threshold_id = ?
		ORDER BY created_at DESC, rowid DESC`
	args := []interface{}{thresholdID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query threshold history: %w", err)
	}
	defer rows.Close()

	return scanComparisons(rows, r.log)
}

// Compliance summarizes pass/fail counts over the last `days` days.
// thresholdID and agent narrow the window when non-empty; agent filters via
// the run log's agent_name on the same simulation and threshold.
func (r *Repository) Compliance(thresholdID, agent string, days int) (ComplianceStats, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days).Unix()

	query := `
		SELECT c.id, c.simulation_id, c.threshold_id, c.is_within_threshold, c.actual_value,
			c.threshold_min, c.threshold_max, c.notes, c.created_at
		FROM comparisons c
		WHERE c.created_at >= ?`
	args := []interface{}{since}

	if thresholdID != "" {
		query += ` AND c.threshold_id = ?`
		args = append(args, thresholdID)
	}
	if agent != "" {
		query += ` AND EXISTS (
			SELECT 1 FROM simulation_runs sr
			WHERE sr.simulation_id = c.simulation_id
			  AND sr.threshold_id = c.threshold_id
			  AND sr.agent_name = ?
		)`
		args = append(args, agent)
	}
	query += ` ORDER BY c.created_at DESC, c.rowid DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return ComplianceStats{}, fmt.Errorf("failed to query compliance window: %w", err)
	}
	defer rows.Close()

	comparisons, err := scanComparisons(rows, r.log)
	if err != nil {
		return ComplianceStats{}, err
	}

	stats := ComplianceStats{Total: len(comparisons)}
	for _, cmp := range comparisons {
		if cmp.IsWithinThreshold {
			stats.Passed++
		} else {
			stats.Failed++
			stats.Failures = append(stats.Failures, cmp)
		}
	}
	if stats.Total > 0 {
		stats.PassRate = float64(stats.Passed) / float64(stats.Total)
	}
	return stats, nil
}

func scanComparisons(rows *sql.Rows, log zerolog.Logger) ([]Comparison, error) {
	var out []Comparison
	for rows.Next() {
		var cmp Comparison
		var within int
		err := rows.Scan(&cmp.ID, &cmp.SimulationID, &cmp.ThresholdID, &within,
			&cmp.ActualValue, &cmp.ThresholdMin, &cmp.ThresholdMax, &cmp.Notes, &cmp.CreatedAt)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to scan comparison row")
			continue
		}
		cmp.IsWithinThreshold = within != 0
		out = append(out, cmp)
	}
	return out, rows.Err()
}

// classify computes the stored status and within flag from the bounds that
// accompany the value. Missing bounds are permissive.
func classify(actual float64, min, max *float64) (string, bool) {
	if min != nil && actual < *min {
		return "below_min", false
	}
	if max != nil && actual > *max {
		return "above_max", false
	}
	return "on_target", true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
