package models

import (
	"time"

	"github.com/google/uuid"
)

// DealStage is the pipeline bucket a deal currently occupies
type DealStage string

const (
	DealStageProspecting   DealStage = "Prospecting"
	DealStageQualification DealStage = "Qualification"
	DealStageNeedsAnalysis DealStage = "Needs Analysis"
	DealStageProposal      DealStage = "Proposal"
	DealStageNegotiation   DealStage = "Negotiation"
	DealStageClosedWon     DealStage = "Closed Won"
	DealStageClosedLost    DealStage = "Closed Lost"
)

// DealStageOrder is the declared stage order used by pipeline charts.
var DealStageOrder = []DealStage{
	DealStageProspecting,
	DealStageQualification,
	DealStageNeedsAnalysis,
	DealStageProposal,
	DealStageNegotiation,
	DealStageClosedWon,
	DealStageClosedLost,
}

// LineItem is one product line on a deal
type LineItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

// Deal represents a sales opportunity
type Deal struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Stage      DealStage  `json:"stage"`
	Value      float64    `json:"value"`
	Currency   string     `json:"currency"`
	CloseDate  time.Time  `json:"close_date"`
	Owner      string     `json:"owner"`
	LeadID     *uuid.UUID `json:"lead_id,omitempty"`     // originating lead, if any
	CustomerID *uuid.UUID `json:"customer_id,omitempty"` // set once won
	LineItems  []LineItem `json:"line_items,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
