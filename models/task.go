package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// Task represents a to-do item assigned to a user.
// Tasks feed the "my tasks" view only; they take no part in report aggregation.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	DueDate     time.Time    `json:"due_date"` // zero value means no due date set
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AssignedTo  string       `json:"assigned_to"`
	RelatedType string       `json:"related_type,omitempty"` // lead, deal, customer
	RelatedID   string       `json:"related_id,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}
