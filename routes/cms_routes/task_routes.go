package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Venus2Mice/crm-ad-dash-sub001/controllers/cms/task_controller"
)

func SetupTaskRoutes(rg *gin.RouterGroup) {
	task := rg.Group("/tasks")

	task.GET("/my", task_controller.GetMyTasks)
}
