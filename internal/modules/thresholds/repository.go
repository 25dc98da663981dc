package thresholds

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentic-research/boardroom/internal/database"
)

// ErrNotFound is returned when a threshold id does not exist at all.
// Soft-deleted records are still found; callers decide what to do with them.
var ErrNotFound = fmt.Errorf("threshold not found")

// Repository handles threshold persistence in config.db. Writes are
// last-writer-wins; there is no application-level locking.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a threshold repository over config.db.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "thresholds").Logger(),
	}
}

const recordColumns = `id, agent_name, kpi_name, min_value, max_value, target_value,
	description, is_deleted, created_at, updated_at`

// Create inserts a new threshold and returns it with its generated id.
func (r *Repository) Create(agentName, kpiName string, min, max, target *float64, description string) (Record, error) {
	now := time.Now().Unix()
	rec := Record{
		ID:          uuid.NewString(),
		AgentName:   agentName,
		KPIName:     kpiName,
		MinValue:    min,
		MaxValue:    max,
		TargetValue: target,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.Exec(`
		INSERT INTO thresholds (id, agent_name, kpi_name, min_value, max_value, target_value,
			description, is_deleted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
	`, rec.ID, rec.AgentName, rec.KPIName, rec.MinValue, rec.MaxValue, rec.TargetValue,
		rec.Description, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("failed to create threshold: %w", err)
	}

	r.log.Info().Str("id", rec.ID).Str("agent", agentName).Str("kpi", kpiName).Msg("Threshold created")
	return rec, nil
}

// GetByID fetches a threshold by id, including soft-deleted records.
func (r *Repository) GetByID(id string) (Record, error) {
	row := r.db.QueryRow(`SELECT `+recordColumns+` FROM thresholds WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to get threshold %s: %w", id, err)
	}
	return rec, nil
}

// ListActive returns all thresholds that have not been soft-deleted.
func (r *Repository) ListActive() ([]Record, error) {
	return r.list(`SELECT ` + recordColumns + ` FROM thresholds WHERE is_deleted = 0 ORDER BY created_at`)
}

// ListByAgent returns the active thresholds for one agent.
func (r *Repository) ListByAgent(agentName string) ([]Record, error) {
	return r.list(`SELECT `+recordColumns+` FROM thresholds WHERE is_deleted = 0 AND agent_name = ? ORDER BY created_at`, agentName)
}

// Update applies a partial update to an active threshold and bumps
// updated_at. The read and write run in one transaction so a concurrent
// update cannot interleave between the merge and the write.
func (r *Repository) Update(id string, upd Update) (Record, error) {
	var existing Record

	err := database.WithTransaction(r.db, func(tx *sql.Tx) error {
		row := tx.QueryRow(`SELECT `+recordColumns+` FROM thresholds WHERE id = ?`, id)
		rec, err := scanRecord(row)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if rec.IsDeleted {
			return ErrNotFound
		}

		if upd.MinValue != nil {
			rec.MinValue = upd.MinValue
		}
		if upd.MaxValue != nil {
			rec.MaxValue = upd.MaxValue
		}
		if upd.TargetValue != nil {
			rec.TargetValue = upd.TargetValue
		}
		if upd.Description != nil {
			rec.Description = *upd.Description
		}
		rec.UpdatedAt = time.Now().Unix()

		_, err = tx.Exec(`
			UPDATE thresholds
			SET min_value = ?, max_value = ?, target_value = ?, description = ?, updated_at = ?
			WHERE id = ? AND is_deleted = 0
		`, rec.MinValue, rec.MaxValue, rec.TargetValue, rec.Description, rec.UpdatedAt, id)
		if err != nil {
			return fmt.Errorf("failed to update threshold %s: %w", id, err)
		}

		existing = rec
		return nil
	})
	if err != nil {
		return Record{}, err
	}

	r.log.Info().Str("id", id).Msg("Threshold updated")
	return existing, nil
}

// SoftDelete flags a threshold as deleted. The row stays so run logs that
// reference it keep resolving.
func (r *Repository) SoftDelete(id string) error {
	res, err := r.db.Exec(`
		UPDATE thresholds SET is_deleted = 1, updated_at = ?
		WHERE id = ? AND is_deleted = 0
	`, time.Now().Unix(), id)
	if err != nil {
		return fmt.Errorf("failed to delete threshold %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete of threshold %s: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	r.log.Info().Str("id", id).Msg("Threshold soft-deleted")
	return nil
}

func (r *Repository) list(query string, args ...interface{}) ([]Record, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list thresholds: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			r.log.Warn().Err(err).Msg("Failed to scan threshold row")
			continue
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (Record, error) {
	var rec Record
	var deleted int
	err := s.Scan(&rec.ID, &rec.AgentName, &rec.KPIName, &rec.MinValue, &rec.MaxValue,
		&rec.TargetValue, &rec.Description, &deleted, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return Record{}, err
	}
	rec.IsDeleted = deleted != 0
	return rec, nil
}
