package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

// Seed loads the demo dataset. Dates are laid out relative to now so the
// period-filtered reports have data in every window (today, this month,
// last month, last 90 days). Every lead status, deal stage and activity
// type is represented, including a lead with no source.
func Seed(s *Store) {
	now := time.Now()
	id := func() uuid.UUID { return uuid.Must(uuid.NewV7()) }
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	// ================================
	// Leads — one per funnel status plus extras on the busy sources
	// ================================
	leadNames := []struct {
		name, company, source string
		status                models.LeadStatus
		createdDaysAgo        int
	}{
		{"Maya Chen", "Northwind Traders", "Web", models.LeadStatusNew, 0},
		{"Omar Haddad", "Contoso Ltd", "Web", models.LeadStatusNew, 12},
		{"Priya Nair", "Fabrikam Inc", "Web", models.LeadStatusContacted, 25},
		{"Lucas Moreau", "Adventure Works", "Referral", models.LeadStatusQualified, 40},
		{"Sofia Rossi", "Tailspin Toys", "Referral", models.LeadStatusProposal, 55},
		{"Ethan Brooks", "Wingtip Corp", "Trade Show", models.LeadStatusNegotiation, 70},
		{"Hana Sato", "Proseware", "Email Campaign", models.LeadStatusConverted, 95},
		{"Diego Alvarez", "Litware", "", models.LeadStatusLost, 120}, // source never captured
		{"Ingrid Berg", "Woodgrove Bank", "Web", models.LeadStatusConverted, 130},
	}

	leads := make([]models.Lead, 0, len(leadNames))
	for i, ln := range leadNames {
		leads = append(leads, models.Lead{
			ID:          id(),
			Name:        ln.name,
			Company:     ln.company,
			Email:       fmt.Sprintf("lead%d@example.com", i+1),
			Status:      ln.status,
			Source:      ln.source,
			AssignedTo:  "dana.reyes",
			CreatedAt:   daysAgo(ln.createdDaysAgo),
			LastContact: daysAgo(ln.createdDaysAgo / 2),
		})
	}

	// ================================
	// Products
	// ================================
	products := []models.Product{
		{ID: id(), Name: "CRM Suite License", SKU: "CRM-STD", Category: "Software", Price: 1200},
		{ID: id(), Name: "Onboarding Package", SKU: "SRV-ONB", Category: "Services", Price: 2500},
		{ID: id(), Name: "Premium Support", SKU: "SUP-PRM", Category: "Support", Price: 800},
	}

	// ================================
	// Customers
	// ================================
	customers := []models.Customer{
		{ID: id(), Name: "Hana Sato", Company: "Proseware", Email: "hana@proseware.example", AccountManager: "dana.reyes", TotalRevenue: 18400, LastPurchaseDate: daysAgo(20), CreatedAt: daysAgo(95)},
		{ID: id(), Name: "Ingrid Berg", Company: "Woodgrove Bank", Email: "ingrid@woodgrove.example", AccountManager: "alex.kim", TotalRevenue: 9200, LastPurchaseDate: daysAgo(60), CreatedAt: daysAgo(130)},
	}

	// ================================
	// Deals — every stage represented, linked back to originating leads
	// ================================
	stageLayout := []struct {
		name         string
		stage        models.DealStage
		value        float64
		owner        string
		leadIdx      int // -1 for no originating lead
		closeDaysAgo int // negative means a future expected close
	}{
		{"Northwind pilot", models.DealStageProspecting, 4800, "dana.reyes", 0, -30},
		{"Fabrikam rollout", models.DealStageQualification, 9600, "alex.kim", 2, -45},
		{"Adventure Works eval", models.DealStageNeedsAnalysis, 7200, "dana.reyes", 3, -20},
		{"Tailspin suite", models.DealStageProposal, 15000, "alex.kim", 4, -15},
		{"Wingtip expansion", models.DealStageNegotiation, 22500, "dana.reyes", 5, -7},
		{"Proseware suite", models.DealStageClosedWon, 18400, "dana.reyes", 6, 20},
		{"Woodgrove onboarding", models.DealStageClosedWon, 9200, "alex.kim", 8, 60},
		{"Litware renewal", models.DealStageClosedLost, 5100, "alex.kim", 7, 90},
		{"Inbound upgrade", models.DealStageClosedWon, 3600, "dana.reyes", -1, 35}, // walk-in, no lead
	}

	deals := make([]models.Deal, 0, len(stageLayout))
	for _, dl := range stageLayout {
		d := models.Deal{
			ID:        id(),
			Name:      dl.name,
			Stage:     dl.stage,
			Value:     dl.value,
			Currency:  "USD",
			CloseDate: daysAgo(dl.closeDaysAgo),
			Owner:     dl.owner,
			CreatedAt: daysAgo(dl.closeDaysAgo + 30),
			LineItems: []models.LineItem{
				{ProductID: products[0].ID, Quantity: 2, UnitPrice: products[0].Price},
			},
		}
		if dl.leadIdx >= 0 {
			leadID := leads[dl.leadIdx].ID
			d.LeadID = &leadID
		}
		deals = append(deals, d)
	}

	// ================================
	// Tasks — mixed priorities, one without a due date
	// ================================
	tasks := []models.Task{
		{ID: id(), Title: "Call Maya Chen back", DueDate: now.AddDate(0, 0, 1), Status: models.TaskStatusPending, Priority: models.TaskPriorityHigh, AssignedTo: "dana.reyes", RelatedType: models.EntityTypeLead, CreatedAt: daysAgo(1)},
		{ID: id(), Title: "Prepare Tailspin proposal deck", DueDate: now.AddDate(0, 0, 3), Status: models.TaskStatusInProgress, Priority: models.TaskPriorityHigh, AssignedTo: "alex.kim", RelatedType: models.EntityTypeDeal, CreatedAt: daysAgo(4)},
		{ID: id(), Title: "Quarterly account review", DueDate: now.AddDate(0, 0, 14), Status: models.TaskStatusPending, Priority: models.TaskPriorityMedium, AssignedTo: "dana.reyes", RelatedType: models.EntityTypeCustomer, CreatedAt: daysAgo(10)},
		{ID: id(), Title: "Clean up stale leads", Status: models.TaskStatusPending, Priority: models.TaskPriorityLow, AssignedTo: "dana.reyes", CreatedAt: daysAgo(30)}, // no due date yet
	}

	// ================================
	// Activity feed — every activity type, some with structured details
	// ================================
	logs := []models.EntityActivityLog{
		{ID: id(), Timestamp: daysAgo(12), UserID: "u-dana", UserName: "Dana Reyes", EntityType: models.EntityTypeLead, EntityID: leads[1].ID.String(), ActivityType: models.ActivityCreated, Description: "Created lead Omar Haddad (Contoso Ltd)"},
		{ID: id(), Timestamp: daysAgo(10), UserID: "u-dana", UserName: "Dana Reyes", EntityType: models.EntityTypeLead, EntityID: leads[2].ID.String(), ActivityType: models.ActivityStatusChanged, Description: "Moved Priya Nair to Contacted", Details: &models.ActivityDetails{Field: "status", OldValue: "New", NewValue: "Contacted"}},
		{ID: id(), Timestamp: daysAgo(8), UserID: "u-alex", UserName: "Alex Kim", EntityType: models.EntityTypeDeal, EntityID: deals[3].ID.String(), ActivityType: models.ActivityStageChanged, Description: "Advanced Tailspin suite to Proposal", Details: &models.ActivityDetails{Field: "stage", OldValue: "Needs Analysis", NewValue: "Proposal"}},
		{ID: id(), Timestamp: daysAgo(7), UserID: "u-alex", UserName: "Alex Kim", EntityType: models.EntityTypeDeal, EntityID: deals[3].ID.String(), ActivityType: models.ActivityFileAttached, Description: "Attached proposal document", Details: &models.ActivityDetails{FileName: "tailspin-proposal-v2.pdf"}},
		{ID: id(), Timestamp: daysAgo(6), UserID: "u-dana", UserName: "Dana Reyes", EntityType: models.EntityTypeTask, EntityID: tasks[1].ID.String(), ActivityType: models.ActivityTaskAssigned, Description: "Assigned proposal deck task", Details: &models.ActivityDetails{TaskTitle: "Prepare Tailspin proposal deck", TargetUserName: "Alex Kim"}},
		{ID: id(), Timestamp: daysAgo(5), UserID: "u-dana", UserName: "Dana Reyes", EntityType: models.EntityTypeCustomer, EntityID: customers[0].ID.String(), ActivityType: models.ActivityNoteAdded, Description: "Logged renewal call notes for Proseware"},
		{ID: id(), Timestamp: daysAgo(3), UserID: "u-alex", UserName: "Alex Kim", EntityType: models.EntityTypeProduct, EntityID: products[2].ID.String(), ActivityType: models.ActivityUpdated, Description: "Updated Premium Support pricing", Details: &models.ActivityDetails{Field: "price", OldValue: "750", NewValue: "800"}},
		{ID: id(), Timestamp: daysAgo(2), UserID: "u-dana", UserName: "Dana Reyes", EntityType: models.EntityTypeLead, EntityID: leads[7].ID.String(), ActivityType: models.ActivityDeleted, Description: "Archived lost lead Diego Alvarez"},
	}

	s.Load(leads, deals, customers, products, tasks, logs)
}
