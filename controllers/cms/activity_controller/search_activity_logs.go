package activity_controller

import (
	"log"
	"net/http"
	"strconv"

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

// filterFromQuery reads the activity feed filters; empty values mean
// "match all" for that dimension. Returns ok=false after writing a 400 for
// an unknown period tag.
func filterFromQuery(c *gin.Context) (reports.ActivityLogFilter, bool) {
	f := reports.ActivityLogFilter{
		SearchTerm:   c.Query("query"),
		UserID:       c.Query("user_id"),
		EntityType:   c.Query("entity_type"),
		ActivityType: c.Query("activity_type"),
	}
	if period := c.Query("period"); period != "" {
		dateRange, err := reports.ResolvePeriod(reports.Period(period))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown period: "+period))
			return f, false
		}
		f.Range = dateRange
	}
	return f, true
}

// SearchActivityLogs godoc
// @Summary Search the activity feed
// @Description Filters by free-text query, user, entity type, activity type and period; newest entries first
// @Tags Activity Logs
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param query query string false "Search term (description, user name, entity id, file name, target user)"
// @Param user_id query string false "Filter by user id"
// @Param entity_type query string false "Filter by entity type (lead, deal, customer, task, product, report)"
// @Param activity_type query string false "Filter by activity type"
// @Param period query string false "Period tag (default: all time)"
// @Success 200 {object} models.ApiResponse{data=map[string]interface{}}
// @Failure 400 {object} models.ApiResponse "Unknown period"
// @Router /activity-logs [get]
func SearchActivityLogs(c *gin.Context) {
	log.Printf("[activity.search] start")

	// ===== Pagination =====
	page := 1
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit := 20
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			if parsed > 100 {
				parsed = 100
			}
			limit = parsed
		}
	}

	// ===== Filters =====
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	// filter, then sort, then paginate — in that order
	matched := reports.FilterActivityLogs(entityStore.ActivityLogs(), filter)
	sorted := reports.SortLogsByTimestampDesc(matched)
	pageResult := reports.Paginate(sorted, page, limit)

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      pageResult.TotalItems,
		TotalPages: pageResult.TotalPages,
	}

	log.Printf("[activity.search] respond 200 query=%q matched=%d page=%d/%d",
		filter.SearchTerm, pageResult.TotalItems, page, pageResult.TotalPages)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved",
		gin.H{"logs": pageResult.PageItems}, meta))
}
