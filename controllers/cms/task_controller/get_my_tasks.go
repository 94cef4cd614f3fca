package task_controller

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

// GetMyTasks godoc
// @Summary Get tasks for a user, soonest due first
// @Description Returns the tasks assigned to the given user ordered by due date; tasks without a due date sort last
// @Tags Tasks
// @Produce json
// @Param assignee query string false "Assignee user id (empty returns all tasks)"
// @Success 200 {object} models.ApiResponse{data=[]models.Task}
// @Router /tasks/my [get]
func GetMyTasks(c *gin.Context) {
	assignee := c.Query("assignee")
	log.Printf("[tasks.my] start assignee=%q", assignee)

	tasks := reports.SortTasksByDueDate(
		reports.FilterTasksByAssignee(entityStore.Tasks(), assignee))

	log.Printf("[tasks.my] respond 200 tasks=%d", len(tasks))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tasks retrieved successfully", tasks))
}
