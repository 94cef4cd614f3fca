package report_controller

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

// writeCSVDownload serializes rows and streams them as an attachment. A
// zero-row set is surfaced as a notice, never as a headers-only file.
func writeCSVDownload(c *gin.Context, basename string, header []string, rows [][]string) bool {
	var buf bytes.Buffer
	if err := reports.WriteCSV(&buf, header, rows); err != nil {
		if errors.Is(err, reports.ErrEmptyExportSet) {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "No data to export for the current selection"))
			return false
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build export"))
		return false
	}

	filename := basename + ".csv"
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "text/csv")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
	return true
}

// recordExport appends an audit entry for a completed download.
func recordExport(filename, description string) {
	entityStore.AppendActivityLog(models.EntityActivityLog{
		ID:           uuid.Must(uuid.NewV7()),
		Timestamp:    time.Now(),
		UserID:       "system",
		UserName:     "System",
		EntityType:   models.EntityTypeReport,
		EntityID:     filename,
		ActivityType: models.ActivityExported,
		Description:  description,
		Details:      &models.ActivityDetails{FileName: filename},
	})
}

// ExportSalesReportCSV godoc
// @Summary Export deals for a period as CSV
// @Description Downloads the deals closed in the selected period, preserving report order
// @Tags Reports
// @Produce text/csv
// @Param period query string false "Period tag (default: all_time)"
// @Success 200 "CSV file"
// @Failure 400 {object} models.ApiResponse "Unknown period"
// @Failure 422 {object} models.ApiResponse "Nothing to export"
// @Router /reports/sales/export [get]
func ExportSalesReportCSV(c *gin.Context) {
	log.Printf("[reports.sales-export] start")

	period, dateRange, ok := resolvePeriodParam(c)
	if !ok {
		return
	}

	deals := dealsClosedIn(entityStore.Deals(), dateRange)

	cols := []reports.ExportColumn[models.Deal]{
		{Header: "Deal", Value: func(d models.Deal) string { return d.Name }},
		{Header: "Owner", Value: func(d models.Deal) string { return d.Owner }},
		{Header: "Stage", Value: func(d models.Deal) string { return string(d.Stage) }},
		{Header: "Value", Value: func(d models.Deal) string { return reports.FormatMoney(d.Value) }},
		{Header: "Currency", Value: func(d models.Deal) string { return d.Currency }},
		{Header: "Close Date", Value: func(d models.Deal) string { return reports.FormatDate(d.CloseDate) }},
	}
	header, rows := reports.ToExportRows(deals, cols)

	basename := "sales-report-" + string(period)
	if !writeCSVDownload(c, basename, header, rows) {
		return
	}
	recordExport(basename+".csv", "Exported sales report CSV")

	log.Printf("[reports.sales-export] exported rows=%d period=%s", len(rows), period)
}

// ExportSourceEffectivenessCSV godoc
// @Summary Export the source effectiveness table as CSV
// @Tags Reports
// @Produce text/csv
// @Success 200 "CSV file"
// @Failure 422 {object} models.ApiResponse "Nothing to export"
// @Router /reports/source-effectiveness/export [get]
func ExportSourceEffectivenessCSV(c *gin.Context) {
	log.Printf("[reports.source-export] start")

	table := reports.BuildSourceEffectiveness(entityStore.Leads(), entityStore.Deals())

	cols := []reports.ExportColumn[models.SourceEffectivenessRow]{
		{Header: "Source", Value: func(r models.SourceEffectivenessRow) string { return r.Source }},
		{Header: "Total Leads", Value: func(r models.SourceEffectivenessRow) string { return fmt.Sprintf("%d", r.TotalLeads) }},
		{Header: "Deals Created", Value: func(r models.SourceEffectivenessRow) string { return fmt.Sprintf("%d", r.DealsCreated) }},
		{Header: "Lead to Deal Rate (%)", Value: func(r models.SourceEffectivenessRow) string { return reports.FormatMoney(r.LeadToDealRate) }},
		{Header: "Won Deals", Value: func(r models.SourceEffectivenessRow) string { return fmt.Sprintf("%d", r.WonDeals) }},
		{Header: "Lead to Won Rate (%)", Value: func(r models.SourceEffectivenessRow) string { return reports.FormatMoney(r.LeadToWonDealRate) }},
		{Header: "Total Won Value", Value: func(r models.SourceEffectivenessRow) string { return reports.FormatMoney(r.TotalWonValue) }},
	}
	header, rows := reports.ToExportRows(table, cols)

	if !writeCSVDownload(c, "source-effectiveness", header, rows) {
		return
	}
	recordExport("source-effectiveness.csv", "Exported source effectiveness CSV")

	log.Printf("[reports.source-export] exported rows=%d", len(rows))
}
