package reports

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

func TestBuildLeadFunnelCanonicalOrder(t *testing.T) {
	// deliberately scrambled input order
	leads := []models.Lead{
		{Status: models.LeadStatusLost},
		{Status: models.LeadStatusNew},
		{Status: models.LeadStatusNegotiation},
		{Status: models.LeadStatusNew},
		{Status: models.LeadStatusConverted},
	}
	got := BuildLeadFunnel(leads)
	names := make([]string, len(got))
	for i, b := range got {
		names[i] = b.Name
	}
	assert.Equal(t, []string{"New", "Negotiation", "Converted to Customer", "Lost"}, names)
	assert.Equal(t, 2.0, got[0].Value)
}

func TestBuildLeadFunnelOmitsEmptyStatuses(t *testing.T) {
	got := BuildLeadFunnel([]models.Lead{{Status: models.LeadStatusQualified}})
	require.Len(t, got, 1)
	assert.Equal(t, "Qualified", got[0].Name)
}

func TestBuildDealPipelineStageOrder(t *testing.T) {
	deals := []models.Deal{
		{Stage: models.DealStageClosedWon, Value: 500},
		{Stage: models.DealStageProspecting, Value: 100},
		{Stage: models.DealStageNegotiation, Value: 250},
		{Stage: models.DealStageProspecting, Value: 50},
	}
	got := BuildDealPipeline(deals)
	require.Equal(t, []models.ChartDataItem{
		{Name: "Prospecting", Value: 150},
		{Name: "Negotiation", Value: 250},
		{Name: "Closed Won", Value: 500},
	}, got)
}

func TestBuildPipelineTotals(t *testing.T) {
	deals := []models.Deal{
		{Stage: models.DealStageProspecting, Value: 100},
		{Stage: models.DealStageProposal, Value: 200},
		{Stage: models.DealStageClosedWon, Value: 500},
		{Stage: models.DealStageClosedLost, Value: 900},
	}
	got := BuildPipelineTotals(deals)
	assert.Equal(t, 300.0, got.ActivePipelineValue, "open stages only")
	assert.Equal(t, 500.0, got.TotalClosedWonValue, "Closed Won only")
}

func TestBuildSourceEffectivenessScenario(t *testing.T) {
	l1, l2, l3 := uuid.New(), uuid.New(), uuid.New()
	leads := []models.Lead{
		{ID: l1, Source: "Web"},
		{ID: l2, Source: "Web"},
		{ID: l3, Source: "Referral"},
	}
	deals := []models.Deal{
		{LeadID: &l1, Stage: models.DealStageClosedWon, Value: 500},
	}

	rows := BuildSourceEffectiveness(leads, deals)
	require.Len(t, rows, 2)

	web := rows[0]
	assert.Equal(t, "Web", web.Source)
	assert.Equal(t, 2, web.TotalLeads)
	assert.Equal(t, 1, web.DealsCreated)
	assert.Equal(t, 50.0, web.LeadToDealRate)
	assert.Equal(t, 1, web.WonDeals)
	assert.Equal(t, 50.0, web.LeadToWonDealRate)
	assert.Equal(t, 500.0, web.TotalWonValue)

	referral := rows[1]
	assert.Equal(t, "Referral", referral.Source)
	assert.Equal(t, 1, referral.TotalLeads)
	assert.Equal(t, 0, referral.DealsCreated)
	assert.Equal(t, 0.0, referral.LeadToDealRate)
	assert.Equal(t, 0, referral.WonDeals)
	assert.Equal(t, 0.0, referral.TotalWonValue)
}

func TestBuildSourceEffectivenessExcludesUnmatchedDeals(t *testing.T) {
	l1 := uuid.New()
	ghost := uuid.New() // never appears as a lead
	leads := []models.Lead{{ID: l1, Source: "Web"}}
	deals := []models.Deal{
		{LeadID: &ghost, Stage: models.DealStageClosedWon, Value: 1000},
		{Stage: models.DealStageClosedWon, Value: 2000}, // no lead link at all
	}
	rows := BuildSourceEffectiveness(leads, deals)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].DealsCreated, "unmatched deals attributed nowhere")
	assert.Equal(t, 0.0, rows[0].TotalWonValue)
}

func TestBuildSourceEffectivenessRatesNeverNaN(t *testing.T) {
	rows := BuildSourceEffectiveness(nil, nil)
	assert.Empty(t, rows)

	rows = BuildSourceEffectiveness([]models.Lead{{ID: uuid.New(), Source: "Email"}}, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].LeadToDealRate)
	assert.Equal(t, 0.0, rows[0].LeadToWonDealRate)
}

func TestBuildSourceEffectivenessStableTieOrder(t *testing.T) {
	leads := []models.Lead{
		{ID: uuid.New(), Source: "Web"},
		{ID: uuid.New(), Source: "Referral"},
		{ID: uuid.New(), Source: "Email"},
	}
	rows := BuildSourceEffectiveness(leads, nil)
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Source
	}
	assert.Equal(t, []string{"Web", "Referral", "Email"}, names,
		"equal lead counts keep first-seen order")
}

func TestBuildDealStats(t *testing.T) {
	deals := []models.Deal{
		{Stage: models.DealStageProspecting, Value: 100},
		{Stage: models.DealStageClosedWon, Value: 300},
		{Stage: models.DealStageClosedLost, Value: 200},
	}
	got := BuildDealStats(deals)
	assert.Equal(t, 3, got.TotalDeals)
	assert.Equal(t, 1, got.OpenDeals)
	assert.Equal(t, 200.0, got.AverageDealValue)

	assert.Equal(t, models.DealStats{}, BuildDealStats(nil))
}
