package activity_controller

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
	"github.com/Venus2Mice/crm-ad-dash-sub001/reports"
)

// ExportActivityLogsCSV godoc
// @Summary Export the filtered activity feed as CSV
// @Description Applies the same filters as the search endpoint and downloads every matching entry, newest first
// @Tags Activity Logs
// @Produce text/csv
// @Param query query string false "Search term"
// @Param user_id query string false "Filter by user id"
// @Param entity_type query string false "Filter by entity type"
// @Param activity_type query string false "Filter by activity type"
// @Param period query string false "Period tag"
// @Success 200 "CSV file"
// @Failure 400 {object} models.ApiResponse "Unknown period"
// @Failure 422 {object} models.ApiResponse "Nothing to export"
// @Router /activity-logs/export [get]
func ExportActivityLogsCSV(c *gin.Context) {
	log.Printf("[activity.export] start")

	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	matched := reports.SortLogsByTimestampDesc(reports.FilterActivityLogs(entityStore.ActivityLogs(), filter))

	cols := []reports.ExportColumn[models.EntityActivityLog]{
		{Header: "Timestamp", Value: func(l models.EntityActivityLog) string { return reports.FormatTimestamp(l.Timestamp) }},
		{Header: "User", Value: func(l models.EntityActivityLog) string { return l.UserName }},
		{Header: "Entity Type", Value: func(l models.EntityActivityLog) string { return l.EntityType }},
		{Header: "Entity ID", Value: func(l models.EntityActivityLog) string { return l.EntityID }},
		{Header: "Activity", Value: func(l models.EntityActivityLog) string { return l.ActivityType }},
		{Header: "Description", Value: func(l models.EntityActivityLog) string { return l.Description }},
		{Header: "Details", Value: func(l models.EntityActivityLog) string { return reports.SummarizeDetails(l.Details) }},
	}
	header, rows := reports.ToExportRows(matched, cols)

	var buf bytes.Buffer
	if err := reports.WriteCSV(&buf, header, rows); err != nil {
		if errors.Is(err, reports.ErrEmptyExportSet) {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "No activity to export for the current filters"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build export"))
		return
	}

	filename := "activity-log.csv"
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "text/csv")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())

	entityStore.AppendActivityLog(models.EntityActivityLog{
		ID:           uuid.Must(uuid.NewV7()),
		Timestamp:    time.Now(),
		UserID:       "system",
		UserName:     "System",
		EntityType:   models.EntityTypeReport,
		EntityID:     filename,
		ActivityType: models.ActivityExported,
		Description:  "Exported activity log CSV",
		Details:      &models.ActivityDetails{FileName: filename},
	})

	log.Printf("[activity.export] exported rows=%d", len(rows))
}
