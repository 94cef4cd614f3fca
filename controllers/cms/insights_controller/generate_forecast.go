package insights_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	insights_cache "github.com/Venus2Mice/crm-ad-dash-sub001/cache"
	"github.com/Venus2Mice/crm-ad-dash-sub001/config"
	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
	"github.com/Venus2Mice/crm-ad-dash-sub001/reports"
	"github.com/Venus2Mice/crm-ad-dash-sub001/services"
)

// GenerateForecast godoc
// @Summary Generate a sales forecast
// @Description Feeds closed-won history, open pipeline and recent lead volume to the AI provider; responses are cached for 5 minutes per period
// @Tags AI Insights
// @Produce json
// @Param period query string false "Period tag for the won-deal history (default: all_time)"
// @Param refresh query bool false "Bypass the cache and re-generate"
// @Success 200 {object} models.ApiResponse{data=services.ForecastResult}
// @Failure 400 {object} models.ApiResponse "Unknown period"
// @Failure 502 {object} models.ApiResponse "AI provider error"
// @Failure 503 {object} models.ApiResponse "AI features disabled"
// @Router /insights/forecast [post]
func GenerateForecast(c *gin.Context) {
	log.Printf("[insights.forecast] start")

	period, dateRange, ok := resolvePeriodParam(c)
	if !ok {
		return
	}

	cacheKey := "forecast:" + string(period)
	if c.Query("refresh") != "true" {
		if text, hit := insights_cache.Get(cacheKey); hit {
			log.Printf("[insights.forecast] cache hit period=%s", period)
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Forecast retrieved from cache",
				gin.H{"forecast": services.ForecastResult{ForecastText: text}, "cached": true}))
			return
		}
	}

	historical := []services.HistoricalDeal{}
	open := []services.OpenDeal{}
	for _, d := range entityStore.Deals() {
		switch d.Stage {
		case models.DealStageClosedWon:
			if dateRange.Contains(d.CloseDate) {
				historical = append(historical, services.HistoricalDeal{
					Value:     d.Value,
					CloseDate: reports.FormatDate(d.CloseDate),
					Currency:  d.Currency,
				})
			}
		case models.DealStageClosedLost:
			// lost deals carry no forecast signal
		default:
			open = append(open, services.OpenDeal{
				Value:             d.Value,
				Stage:             string(d.Stage),
				ExpectedCloseDate: reports.FormatDate(d.CloseDate),
				Currency:          d.Currency,
			})
		}
	}

	// Lead volume over the trailing 90 days, independent of the chosen period.
	recentRange, _ := reports.ResolvePeriod(reports.PeriodLast90Days)
	recentLeads := 0
	for _, l := range entityStore.Leads() {
		if recentRange.Contains(l.CreatedAt) {
			recentLeads++
		}
	}

	req := services.ForecastRequest{
		HistoricalWonDeals: historical,
		OpenDeals:          open,
		RecentLeadVolume:   recentLeads,
		ForecastPeriod:     "next quarter",
	}

	ctx, cancel := config.WithCustomTimeout(providerTimeout)
	defer cancel()

	result, err := gemini.GenerateForecast(ctx, req)
	if err != nil {
		log.Printf("[insights.forecast] provider error: %v", err)
		respondProviderError(c, err)
		return
	}

	insights_cache.Set(cacheKey, result.ForecastText)
	recordAIRun(models.ActivityForecastRun, "Generated sales forecast for period "+string(period))

	log.Printf("[insights.forecast] respond 200 period=%s history=%d open=%d", period, len(historical), len(open))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Forecast generated successfully",
		gin.H{"forecast": result, "cached": false}))
}
