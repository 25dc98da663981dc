// Package thresholds manages the persisted KPI thresholds that back the
// board's evaluations. Thresholds live in config.db and are soft-deleted:
// rows are flagged, never removed, so historical run logs keep resolving.
package thresholds

// Record is one stored threshold. Any of the three bounds may be absent.
type Record struct {
	ID          string   `json:"id"`
	AgentName   string   `json:"agent_name"`
	KPIName     string   `json:"kpi_name"`
	MinValue    *float64 `json:"min_value,omitempty"`
	MaxValue    *float64 `json:"max_value,omitempty"`
	TargetValue *float64 `json:"target_value,omitempty"`
	Description string   `json:"description,omitempty"`
	IsDeleted   bool     `json:"is_deleted"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
}

// HasBounds reports whether the record carries at least one usable bound.
func (r Record) HasBounds() bool {
	return r.MinValue != nil || r.MaxValue != nil || r.TargetValue != nil
}

// Update is a partial update: nil fields are left untouched.
type Update struct {
	MinValue    *float64 `json:"min_value"`
	MaxValue    *float64 `json:"max_value"`
	TargetValue *float64 `json:"target_value"`
	Description *string  `json:"description"`
}
