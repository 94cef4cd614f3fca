package cms_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Venus2Mice/crm-ad-dash-sub001/controllers/cms/insights_controller"
	"github.com/Venus2Mice/crm-ad-dash-sub001/middleware"
)

func SetupInsightsRoutes(rg *gin.RouterGroup) {
	insights := rg.Group("/insights")

	// AI routes are rate limited: provider calls bill against quota
	insights.Use(middleware.RateLimiter(10, time.Minute))
	{
		insights.POST("/generate", insights_controller.GenerateInsights)
		insights.POST("/forecast", insights_controller.GenerateForecast)
	}
}
