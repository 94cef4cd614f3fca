package report_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
	"github.com/Venus2Mice/crm-ad-dash-sub001/reports"
)

// GetSourceEffectiveness godoc
// @Summary Get lead source effectiveness table
// @Description Returns one row per lead source with lead-to-deal and lead-to-won conversion stats, sorted by lead count
// @Tags Reports
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.SourceEffectivenessRow}
// @Router /reports/source-effectiveness [get]
func GetSourceEffectiveness(c *gin.Context) {
	log.Printf("[reports.source-effectiveness] start")

	rows := reports.BuildSourceEffectiveness(entityStore.Leads(), entityStore.Deals())

	log.Printf("[reports.source-effectiveness] respond 200 sources=%d", len(rows))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Source effectiveness retrieved successfully", rows))
}
