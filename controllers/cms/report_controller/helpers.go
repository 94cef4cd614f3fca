package report_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
	"github.com/Venus2Mice/crm-ad-dash-sub001/reports"
	"github.com/Venus2Mice/crm-ad-dash-sub001/store"
)

var entityStore *store.Store

// Init wires the entity store; call once from main before serving.
func Init(s *store.Store) {
	entityStore = s
}

// resolvePeriodParam reads the period query param (default all_time) and
// resolves it. On an unknown tag it writes a 400 and returns ok=false —
// unrecognized periods fail loudly instead of widening to all-time.
func resolvePeriodParam(c *gin.Context) (reports.Period, reports.DateRange, bool) {
	period := reports.Period(c.DefaultQuery("period", string(reports.PeriodAllTime)))
	dateRange, err := reports.ResolvePeriod(period)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown period: "+string(period)))
		return period, reports.DateRange{}, false
	}
	return period, dateRange, true
}

// dealsClosedIn filters deals whose close date falls inside the range.
// Deals without a close date only survive an unbounded range.
func dealsClosedIn(deals []models.Deal, r reports.DateRange) []models.Deal {
	out := []models.Deal{}
	for _, d := range deals {
		if r.Contains(d.CloseDate) {
			out = append(out, d)
		}
	}
	return out
}

func leadsCreatedIn(leads []models.Lead, r reports.DateRange) []models.Lead {
	out := []models.Lead{}
	for _, l := range leads {
		if r.Contains(l.CreatedAt) {
			out = append(out, l)
		}
	}
	return out
}

func wonDeals(deals []models.Deal) []models.Deal {
	out := []models.Deal{}
	for _, d := range deals {
		if d.Stage == models.DealStageClosedWon {
			out = append(out, d)
		}
	}
	return out
}

func dealCloseDate(d models.Deal) time.Time { return d.CloseDate }
func dealValue(d models.Deal) float64       { return d.Value }
