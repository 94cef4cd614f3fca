package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
	"github.com/Venus2Mice/crm-ad-dash-sub001/reports"
	"github.com/Venus2Mice/crm-ad-dash-sub001/store"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main writes the report CSVs for a period to an output directory
// Usage: go run cmd/reportgen/main.go -period all_time -out ./out
// This is a standalone CLI tool, not part of the main application
func main() {
	periodFlag := flag.String("period", string(reports.PeriodAllTime), "period tag (all_time, today, this_month, last_month, last_90_days, year_to_date)")
	outDir := flag.String("out", ".", "output directory for the generated CSV files")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CRM REPORTING - Report Generator")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	period := reports.Period(*periodFlag)
	dateRange, err := reports.ResolvePeriod(period)
	if err != nil {
		fmt.Printf("❌ Unknown period '%s'\n", *periodFlag)
		os.Exit(1)
	}
	log.Printf("✓ Period '%s' resolved", period)

	entityStore := store.NewStore()
	store.Seed(entityStore)
	log.Println("✓ Entity store seeded")

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// ===== Sales report =====
	periodDeals := []models.Deal{}
	for _, d := range entityStore.Deals() {
		if dateRange.Contains(d.CloseDate) {
			periodDeals = append(periodDeals, d)
		}
	}
	salesCols := []reports.ExportColumn[models.Deal]{
		{Header: "Deal", Value: func(d models.Deal) string { return d.Name }},
		{Header: "Owner", Value: func(d models.Deal) string { return d.Owner }},
		{Header: "Stage", Value: func(d models.Deal) string { return string(d.Stage) }},
		{Header: "Value", Value: func(d models.Deal) string { return reports.FormatMoney(d.Value) }},
		{Header: "Currency", Value: func(d models.Deal) string { return d.Currency }},
		{Header: "Close Date", Value: func(d models.Deal) string { return reports.FormatDate(d.CloseDate) }},
	}
	salesPath := filepath.Join(*outDir, fmt.Sprintf("sales-report-%s.csv", period))
	writeReport(salesPath, periodDeals, salesCols)

	// ===== Source effectiveness =====
	table := reports.BuildSourceEffectiveness(entityStore.Leads(), entityStore.Deals())
	sourceCols := []reports.ExportColumn[models.SourceEffectivenessRow]{
		{Header: "Source", Value: func(r models.SourceEffectivenessRow) string { return r.Source }},
		{Header: "Total Leads", Value: func(r models.SourceEffectivenessRow) string { return fmt.Sprintf("%d", r.TotalLeads) }},
		{Header: "Deals Created", Value: func(r models.SourceEffectivenessRow) string { return fmt.Sprintf("%d", r.DealsCreated) }},
		{Header: "Lead to Deal Rate (%)", Value: func(r models.SourceEffectivenessRow) string { return reports.FormatMoney(r.LeadToDealRate) }},
		{Header: "Won Deals", Value: func(r models.SourceEffectivenessRow) string { return fmt.Sprintf("%d", r.WonDeals) }},
		{Header: "Lead to Won Rate (%)", Value: func(r models.SourceEffectivenessRow) string { return reports.FormatMoney(r.LeadToWonDealRate) }},
		{Header: "Total Won Value", Value: func(r models.SourceEffectivenessRow) string { return reports.FormatMoney(r.TotalWonValue) }},
	}
	sourcePath := filepath.Join(*outDir, "source-effectiveness.csv")
	writeReport(sourcePath, table, sourceCols)

	// ===== Activity log =====
	logs := reports.SortLogsByTimestampDesc(entityStore.ActivityLogs())
	logCols := []reports.ExportColumn[models.EntityActivityLog]{
		{Header: "Timestamp", Value: func(l models.EntityActivityLog) string { return reports.FormatTimestamp(l.Timestamp) }},
		{Header: "User", Value: func(l models.EntityActivityLog) string { return l.UserName }},
		{Header: "Entity Type", Value: func(l models.EntityActivityLog) string { return l.EntityType }},
		{Header: "Activity", Value: func(l models.EntityActivityLog) string { return l.ActivityType }},
		{Header: "Description", Value: func(l models.EntityActivityLog) string { return l.Description }},
		{Header: "Details", Value: func(l models.EntityActivityLog) string { return reports.SummarizeDetails(l.Details) }},
	}
	logPath := filepath.Join(*outDir, "activity-log.csv")
	writeReport(logPath, logs, logCols)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Reports generated")
	fmt.Println("════════════════════════════════════════════════════════════")
}

func writeReport[T any](path string, records []T, cols []reports.ExportColumn[T]) {
	header, rows := reports.ToExportRows(records, cols)

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := reports.WriteCSV(f, header, rows); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	log.Printf("✓ Wrote %s (%d rows)", path, len(rows))
}
