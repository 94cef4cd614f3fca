package report_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
	"github.com/Venus2Mice/crm-ad-dash-sub001/reports"
)

// GetLeadReport godoc
// @Summary Get lead report for a period
// @Description Returns the lead funnel, leads by source and leads by month for leads created in the selected period
// @Tags Reports
// @Produce json
// @Param period query string false "Period tag (default: all_time)"
// @Success 200 {object} models.ApiResponse{data=models.LeadReport}
// @Failure 400 {object} models.ApiResponse "Unknown period"
// @Router /reports/leads [get]
func GetLeadReport(c *gin.Context) {
	log.Printf("[reports.leads] start")

	period, dateRange, ok := resolvePeriodParam(c)
	if !ok {
		return
	}

	leads := leadsCreatedIn(entityStore.Leads(), dateRange)

	leadsByMonth := reports.GroupByMonth(leads,
		func(l models.Lead) time.Time { return l.CreatedAt },
		func(models.Lead) float64 { return 1 })

	report := models.LeadReport{
		Period: string(period),
		Funnel: models.ChartSeries{
			Kind: models.ChartKindBar,
			Data: reports.BuildLeadFunnel(leads),
		},
		Sources: models.ChartSeries{
			Kind: models.ChartKindPie,
			Data: reports.GroupBySource(leads),
		},
		LeadsByMonth: models.ChartSeries{
			Kind:   models.ChartKindLine,
			Data:   leadsByMonth,
			Series: []models.SeriesDescriptor{{Key: "value", Color: "#059669"}},
		},
		TotalLeads: len(leads),
	}

	log.Printf("[reports.leads] respond 200 period=%s leads=%d", period, len(leads))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Lead report retrieved successfully", report))
}
