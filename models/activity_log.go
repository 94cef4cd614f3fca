package models

import (
	"time"

	"github.com/google/uuid"
)

// EntityActivityLog represents one entry in the append-only activity feed.
// Entries are written once and never mutated; every view over them is a
// filtered/sorted projection.
type EntityActivityLog struct {
	ID           uuid.UUID        `json:"id"`
	Timestamp    time.Time        `json:"timestamp"`
	UserID       string           `json:"user_id"`
	UserName     string           `json:"user_name"`
	EntityType   string           `json:"entity_type"` // lead, deal, customer, task, product, report
	EntityID     string           `json:"entity_id"`
	ActivityType string           `json:"activity_type"`
	Description  string           `json:"description"`
	Details      *ActivityDetails `json:"details,omitempty"`
}

// ActivityDetails carries optional structured context for an entry.
// All fields are optional; absent fields are simply omitted from summaries.
type ActivityDetails struct {
	Field          string `json:"field,omitempty"`
	OldValue       string `json:"old_value,omitempty"`
	NewValue       string `json:"new_value,omitempty"`
	TaskTitle      string `json:"task_title,omitempty"`
	FileName       string `json:"file_name,omitempty"`
	TargetUserName string `json:"target_user_name,omitempty"`
}

// ════════════════════════════════════════════════════════════
// Activity Type Constants
// ════════════════════════════════════════════════════════════

const (
	ActivityCreated       = "created"
	ActivityUpdated       = "updated"
	ActivityDeleted       = "deleted"
	ActivityStatusChanged = "status_changed"
	ActivityStageChanged  = "stage_changed"
	ActivityNoteAdded     = "note_added"
	ActivityTaskAssigned  = "task_assigned"
	ActivityFileAttached  = "file_attached"
	ActivityExported      = "exported"
	ActivityInsightsRun   = "insights_generated"
	ActivityForecastRun   = "forecast_generated"

	// Entity Types
	EntityTypeLead     = "lead"
	EntityTypeDeal     = "deal"
	EntityTypeCustomer = "customer"
	EntityTypeTask     = "task"
	EntityTypeProduct  = "product"
	EntityTypeReport   = "report"
)
