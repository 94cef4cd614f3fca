package models

// ChartDataItem is one named aggregation bucket in a chart-ready series
type ChartDataItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ChartKind tags how a series is meant to be rendered
type ChartKind string

const (
	ChartKindLine ChartKind = "line"
	ChartKindBar  ChartKind = "bar"
	ChartKindPie  ChartKind = "pie"
)

// ChartSeries pairs a bucket array with its render hints for the front end
type ChartSeries struct {
	Kind   ChartKind          `json:"kind"`
	Data   []ChartDataItem    `json:"data"`
	Series []SeriesDescriptor `json:"series,omitempty"`
}

// SeriesDescriptor describes one plotted key and its color
type SeriesDescriptor struct {
	Key   string `json:"key"`
	Color string `json:"color"`
}

// SourceEffectivenessRow is one table row of lead-source conversion stats
type SourceEffectivenessRow struct {
	Source            string  `json:"source"`
	TotalLeads        int     `json:"total_leads"`
	DealsCreated      int     `json:"deals_created"`
	LeadToDealRate    float64 `json:"lead_to_deal_rate"` // percent
	WonDeals          int     `json:"won_deals"`
	LeadToWonDealRate float64 `json:"lead_to_won_deal_rate"` // percent
	TotalWonValue     float64 `json:"total_won_value"`
}

// DealStats summarizes the deal set handed to the AI insights provider
type DealStats struct {
	TotalDeals       int     `json:"total_deals"`
	OpenDeals        int     `json:"open_deals"`
	AverageDealValue float64 `json:"average_deal_value"`
}

// DashboardStats is the dashboard overview payload
type DashboardStats struct {
	TotalLeads          int             `json:"total_leads"`
	TotalCustomers      int             `json:"total_customers"`
	TotalDeals          int             `json:"total_deals"`
	OpenTasks           int             `json:"open_tasks"`
	ActivePipelineValue float64         `json:"active_pipeline_value"`
	TotalClosedWonValue float64         `json:"total_closed_won_value"`
	LeadFunnel          []ChartDataItem `json:"lead_funnel"`
	LeadSources         []ChartDataItem `json:"lead_sources"`
	DealPipeline        []ChartDataItem `json:"deal_pipeline"`
}

// SalesReport is the sales report payload for one period
type SalesReport struct {
	Period        string          `json:"period"`
	SalesByMonth  ChartSeries     `json:"sales_by_month"`
	SalesByOwner  []ChartDataItem `json:"sales_by_owner"` // table surface, zero buckets retained
	DealStats     DealStats       `json:"deal_stats"`
	TotalWonValue float64         `json:"total_won_value"`
	DealsInPeriod int             `json:"deals_in_period"`
}

// LeadReport is the lead report payload for one period
type LeadReport struct {
	Period       string      `json:"period"`
	Funnel       ChartSeries `json:"funnel"`
	Sources      ChartSeries `json:"sources"`
	LeadsByMonth ChartSeries `json:"leads_by_month"`
	TotalLeads   int         `json:"total_leads"`
}
