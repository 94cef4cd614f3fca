package dashboard_controller

import (
	"log"
	"net/http"

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

// GetDashboardStats godoc
// @Summary Get dashboard overview
// @Description Returns entity counts, pipeline value aggregates, lead funnel, lead sources and deal pipeline charts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.DashboardStats}
// @Router /dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	log.Printf("[dashboard.stats] start")

	leads := entityStore.Leads()
	deals := entityStore.Deals()
	customers := entityStore.Customers()
	tasks := entityStore.Tasks()

	openTasks := 0
	for _, t := range tasks {
		if t.Status != models.TaskStatusCompleted {
			openTasks++
		}
	}

	totals := reports.BuildPipelineTotals(deals)

	stats := models.DashboardStats{
		TotalLeads:          len(leads),
		TotalCustomers:      len(customers),
		TotalDeals:          len(deals),
		OpenTasks:           openTasks,
		ActivePipelineValue: totals.ActivePipelineValue,
		TotalClosedWonValue: totals.TotalClosedWonValue,
		LeadFunnel:          reports.BuildLeadFunnel(leads),
		LeadSources:         reports.GroupBySource(leads),
		DealPipeline:        reports.BuildDealPipeline(deals),
	}

	log.Printf("[dashboard.stats] respond 200 leads=%d deals=%d customers=%d",
		stats.TotalLeads, stats.TotalDeals, stats.TotalCustomers)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats retrieved successfully", stats))
}
