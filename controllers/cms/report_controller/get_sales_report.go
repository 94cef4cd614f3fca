package report_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
	"github.com/Venus2Mice/crm-ad-dash-sub001/reports"
)

// GetSalesReport godoc
// @Summary Get sales report for a period
// @Description Returns won revenue by month (chart), sales by owner (table), and deal stats for the selected period
// @Tags Reports
// @Produce json
// @Param period query string false "Period tag: all_time, today, this_month, last_month, last_90_days, year_to_date (default: all_time)"
// @Success 200 {object} models.ApiResponse{data=models.SalesReport}
// @Failure 400 {object} models.ApiResponse "Unknown period"
// @Router /reports/sales [get]
func GetSalesReport(c *gin.Context) {
	log.Printf("[reports.sales] start")

	period, dateRange, ok := resolvePeriodParam(c)
	if !ok {
		return
	}

	deals := dealsClosedIn(entityStore.Deals(), dateRange)
	won := wonDeals(deals)

	var totalWon float64
	for _, d := range won {
		totalWon += d.Value
	}

	// Chart surfaces drop zero buckets; the owner table keeps every owner.
	salesByMonth := reports.FilterZeroBuckets(reports.GroupByMonth(won, dealCloseDate, dealValue))
	salesByOwner := reports.GroupByOwner(deals, func(d models.Deal) string { return d.Owner }, dealValue)

	report := models.SalesReport{
		Period: string(period),
		SalesByMonth: models.ChartSeries{
			Kind:   models.ChartKindLine,
			Data:   salesByMonth,
			Series: []models.SeriesDescriptor{{Key: "value", Color: "#4f46e5"}},
		},
		SalesByOwner:  salesByOwner,
		DealStats:     reports.BuildDealStats(deals),
		TotalWonValue: totalWon,
		DealsInPeriod: len(deals),
	}

	log.Printf("[reports.sales] respond 200 period=%s deals=%d won=%d", period, len(deals), len(won))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales report retrieved successfully", report))
}
