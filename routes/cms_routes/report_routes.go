package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Venus2Mice/crm-ad-dash-sub001/controllers/cms/report_controller"
)

func SetupReportRoutes(rg *gin.RouterGroup) {
	report := rg.Group("/reports")

	// Reports
	report.GET("/sales", report_controller.GetSalesReport)
	report.GET("/leads", report_controller.GetLeadReport)
	report.GET("/source-effectiveness", report_controller.GetSourceEffectiveness)

	// Downloads
	report.GET("/sales/export", report_controller.ExportSalesReportCSV)
	report.GET("/source-effectiveness/export", report_controller.ExportSourceEffectivenessCSV)
	report.GET("/pipeline/download-pdf", report_controller.DownloadPipelineReportPDF)
}
