package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus is the funnel stage a lead currently occupies
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "New"
	LeadStatusContacted   LeadStatus = "Contacted"
	LeadStatusQualified   LeadStatus = "Qualified"
	LeadStatusProposal    LeadStatus = "Proposal Sent"
	LeadStatusNegotiation LeadStatus = "Negotiation"
	LeadStatusConverted   LeadStatus = "Converted to Customer"
	LeadStatusLost        LeadStatus = "Lost"
)

// LeadStatusOrder is the canonical funnel progression. Funnel charts bucket
// in this order, never in count or insertion order.
var LeadStatusOrder = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusProposal,
	LeadStatusNegotiation,
	LeadStatusConverted,
	LeadStatusLost,
}

// Lead represents a sales lead
type Lead struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Company     string     `json:"company"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Status      LeadStatus `json:"status"`
	Source      string     `json:"source"` // free text, empty means unknown
	AssignedTo  string     `json:"assigned_to"`
	CreatedAt   time.Time  `json:"created_at"`
	LastContact time.Time  `json:"last_contact"`
}
