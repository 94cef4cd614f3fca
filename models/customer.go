package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a converted account
type Customer struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Company          string    `json:"company"`
	Email            string    `json:"email"`
	AccountManager   string    `json:"account_manager"`
	TotalRevenue     float64   `json:"total_revenue"`
	LastPurchaseDate time.Time `json:"last_purchase_date"`
	CreatedAt        time.Time `json:"created_at"`
}
