package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Venus2Mice/crm-ad-dash-sub001/controllers/cms/activity_controller"
)

func SetupActivityRoutes(rg *gin.RouterGroup) {
	activity := rg.Group("/activity-logs")

	activity.GET("", activity_controller.SearchActivityLogs)
	activity.GET("/export", activity_controller.ExportActivityLogsCSV)
}
