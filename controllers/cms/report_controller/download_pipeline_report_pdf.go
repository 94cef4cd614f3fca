package report_controller

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
	"github.com/Venus2Mice/crm-ad-dash-sub001/reports"
)

// DownloadPipelineReportPDF godoc
// @Summary Download the deal pipeline report as PDF
// @Description Generates a PDF with per-stage pipeline value and the active/won totals
// @Tags Reports
// @Produce octet-stream
// @Success 200 "PDF file"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /reports/pipeline/download-pdf [get]
func DownloadPipelineReportPDF(c *gin.Context) {
	log.Printf("[reports.pipeline-pdf] start")

	deals := entityStore.Deals()
	pipeline := reports.BuildDealPipeline(deals)
	totals := reports.BuildPipelineTotals(deals)

	pdfBuffer, err := generatePipelineReportPDF(pipeline, totals)
	if err != nil {
		log.Printf("[reports.pipeline-pdf] generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate PDF"))
		return
	}

	filename := fmt.Sprintf("pipeline-report-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
	recordExport(filename, "Downloaded pipeline report PDF")

	log.Printf("[reports.pipeline-pdf] downloaded stages=%d", len(pipeline))
}

func generatePipelineReportPDF(pipeline []models.ChartDataItem, totals reports.PipelineTotals) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("DEAL PIPELINE REPORT", props.Text{
				Size:  20,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generated %s", time.Now().Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	// Table header
	m.Row(6, func() {
		m.Col(8, func() {
			m.Text("Stage", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(4, func() {
			m.Text("Value", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	for _, stage := range pipeline {
		stage := stage
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text(stage.Name, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(4, func() {
				m.Text(fmt.Sprintf("$%.2f", stage.Value), props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(8, func() {
			m.Text("Active Pipeline Value", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("$%.2f", totals.ActivePipelineValue), props.Text{
				Size:  9,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(5, func() {
		m.Col(8, func() {
			m.Text("Total Closed Won Value", props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(4, func() {
			m.Text(fmt.Sprintf("$%.2f", totals.TotalClosedWonValue), props.Text{
				Size:  9,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
