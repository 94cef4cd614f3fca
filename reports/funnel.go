package reports

import (
	"sort"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

// BuildLeadFunnel counts leads per status, emitted in the canonical funnel
// order (models.LeadStatusOrder). Statuses with zero leads are omitted.
func BuildLeadFunnel(leads []models.Lead) []models.ChartDataItem {
	counts := make(map[models.LeadStatus]float64)
	for _, l := range leads {
		counts[l.Status]++
	}
	out := make([]models.ChartDataItem, 0, len(models.LeadStatusOrder))
	for _, status := range models.LeadStatusOrder {
		if n := counts[status]; n > 0 {
			out = append(out, models.ChartDataItem{Name: string(status), Value: n})
		}
	}
	return out
}

// BuildDealPipeline sums deal value per stage, emitted in the declared
// stage order (models.DealStageOrder). Zero-value stages are omitted.
func BuildDealPipeline(deals []models.Deal) []models.ChartDataItem {
	sums := make(map[models.DealStage]float64)
	for _, d := range deals {
		sums[d.Stage] += d.Value
	}
	out := make([]models.ChartDataItem, 0, len(models.DealStageOrder))
	for _, stage := range models.DealStageOrder {
		if v := sums[stage]; v != 0 {
			out = append(out, models.ChartDataItem{Name: string(stage), Value: v})
		}
	}
	return out
}

// PipelineTotals holds the two scalar pipeline aggregates. Both are
// all-time figures, never period-filtered.
type PipelineTotals struct {
	ActivePipelineValue float64 `json:"active_pipeline_value"`
	TotalClosedWonValue float64 `json:"total_closed_won_value"`
}

// BuildPipelineTotals sums value over open deals (neither closed stage) and
// over Closed Won deals.
func BuildPipelineTotals(deals []models.Deal) PipelineTotals {
	var t PipelineTotals
	for _, d := range deals {
		switch d.Stage {
		case models.DealStageClosedWon:
			t.TotalClosedWonValue += d.Value
		case models.DealStageClosedLost:
			// closed without revenue, counts toward neither total
		default:
			t.ActivePipelineValue += d.Value
		}
	}
	return t
}

// BuildSourceEffectiveness produces one row per distinct lead source with
// lead-to-deal conversion stats. Deals are attributed to a source through
// their originating lead; deals with no LeadID, or whose lead is not in the
// snapshot, are silently excluded from the stats. Rows sort descending by
// TotalLeads with ties kept in first-seen source order.
func BuildSourceEffectiveness(leads []models.Lead, deals []models.Deal) []models.SourceEffectivenessRow {
	index := make(map[string]int)
	rows := []models.SourceEffectivenessRow{}

	sourceOf := func(l models.Lead) string {
		if l.Source == "" {
			return UnknownSource
		}
		return l.Source
	}

	for _, l := range leads {
		src := sourceOf(l)
		i, ok := index[src]
		if !ok {
			i = len(rows)
			index[src] = i
			rows = append(rows, models.SourceEffectivenessRow{Source: src})
		}
		rows[i].TotalLeads++
	}

	leadByID := make(map[string]models.Lead, len(leads))
	for _, l := range leads {
		if _, seen := leadByID[l.ID.String()]; !seen {
			leadByID[l.ID.String()] = l // first match by id wins
		}
	}

	for _, d := range deals {
		if d.LeadID == nil {
			continue
		}
		lead, ok := leadByID[d.LeadID.String()]
		if !ok {
			continue
		}
		i := index[sourceOf(lead)]
		rows[i].DealsCreated++
		if d.Stage == models.DealStageClosedWon {
			rows[i].WonDeals++
			rows[i].TotalWonValue += d.Value
		}
	}

	for i := range rows {
		if rows[i].TotalLeads > 0 {
			rows[i].LeadToDealRate = 100 * float64(rows[i].DealsCreated) / float64(rows[i].TotalLeads)
			rows[i].LeadToWonDealRate = 100 * float64(rows[i].WonDeals) / float64(rows[i].TotalLeads)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalLeads > rows[j].TotalLeads })
	return rows
}

// BuildDealStats summarizes a deal set for the AI insights payload.
func BuildDealStats(deals []models.Deal) models.DealStats {
	stats := models.DealStats{TotalDeals: len(deals)}
	var total float64
	for _, d := range deals {
		total += d.Value
		if d.Stage != models.DealStageClosedWon && d.Stage != models.DealStageClosedLost {
			stats.OpenDeals++
		}
	}
	if len(deals) > 0 {
		stats.AverageDealValue = total / float64(len(deals))
	}
	return stats
}
