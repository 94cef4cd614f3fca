package insights_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	insights_cache "github.com/Venus2Mice/crm-ad-dash-sub001/cache"
	"github.com/Venus2Mice/crm-ad-dash-sub001/config"
	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
	"github.com/Venus2Mice/crm-ad-dash-sub001/reports"
	"github.com/Venus2Mice/crm-ad-dash-sub001/services"
	"github.com/Venus2Mice/crm-ad-dash-sub001/store"
)

var (
	entityStore *store.Store
	gemini      *services.GeminiClient
)

// providerTimeout bounds one generateContent round trip end to end
const providerTimeout = 45 * time.Second

// Init wires the entity store and the AI client; call once from main.
func Init(s *store.Store, client *services.GeminiClient) {
	entityStore = s
	gemini = client
}

// resolvePeriodParam reads the period query param (default all_time) and
// writes a 400 for an unknown tag.
func resolvePeriodParam(c *gin.Context) (reports.Period, reports.DateRange, bool) {
	period := reports.Period(c.DefaultQuery("period", string(reports.PeriodAllTime)))
	dateRange, err := reports.ResolvePeriod(period)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown period: "+string(period)))
		return period, reports.DateRange{}, false
	}
	return period, dateRange, true
}

// respondProviderError maps AI client failures to HTTP statuses: a missing
// key is a 503 (feature disabled), everything else is a 502 (upstream).
func respondProviderError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNoAPIKey) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, err.Error()))
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse(c, err.Error()))
}

func recordAIRun(activityType, description string) {
	entityStore.AppendActivityLog(models.EntityActivityLog{
		ID:           uuid.Must(uuid.NewV7()),
		Timestamp:    time.Now(),
		UserID:       "system",
		UserName:     "System",
		EntityType:   models.EntityTypeReport,
		EntityID:     activityType,
		ActivityType: activityType,
		Description:  description,
	})
}

// GenerateInsights godoc
// @Summary Generate smart insights for a period
// @Description Summarizes the period's report aggregates through the AI provider; responses are cached for 5 minutes per period
// @Tags AI Insights
// @Produce json
// @Param period query string false "Period tag (default: all_time)"
// @Param refresh query bool false "Bypass the cache and re-generate"
// @Success 200 {object} models.ApiResponse{data=map[string]interface{}}
// @Failure 400 {object} models.ApiResponse "Unknown period"
// @Failure 502 {object} models.ApiResponse "AI provider error"
// @Failure 503 {object} models.ApiResponse "AI features disabled"
// @Router /insights/generate [post]
func GenerateInsights(c *gin.Context) {
	log.Printf("[insights.generate] start")

	period, dateRange, ok := resolvePeriodParam(c)
	if !ok {
		return
	}

	cacheKey := "insights:" + string(period)
	if c.Query("refresh") != "true" {
		if text, hit := insights_cache.Get(cacheKey); hit {
			log.Printf("[insights.generate] cache hit period=%s", period)
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Insights retrieved from cache",
				gin.H{"insights": text, "cached": true}))
			return
		}
	}

	deals := entityStore.Deals()
	periodDeals := []models.Deal{}
	won := []models.Deal{}
	for _, d := range deals {
		if !dateRange.Contains(d.CloseDate) {
			continue
		}
		periodDeals = append(periodDeals, d)
		if d.Stage == models.DealStageClosedWon {
			won = append(won, d)
		}
	}

	periodLeads := []models.Lead{}
	for _, l := range entityStore.Leads() {
		if dateRange.Contains(l.CreatedAt) {
			periodLeads = append(periodLeads, l)
		}
	}

	stats := reports.BuildDealStats(periodDeals)
	req := services.InsightsRequest{
		SalesData: reports.FilterZeroBuckets(reports.GroupByMonth(won,
			func(d models.Deal) time.Time { return d.CloseDate },
			func(d models.Deal) float64 { return d.Value })),
		LeadSources: reports.GroupBySource(periodLeads),
		DealStats:   &stats,
	}

	ctx, cancel := config.WithCustomTimeout(providerTimeout)
	defer cancel()

	text, err := gemini.GenerateInsights(ctx, req)
	if err != nil {
		log.Printf("[insights.generate] provider error: %v", err)
		respondProviderError(c, err)
		return
	}

	insights_cache.Set(cacheKey, text)
	recordAIRun(models.ActivityInsightsRun, "Generated smart insights for period "+string(period))

	log.Printf("[insights.generate] respond 200 period=%s chars=%d", period, len(text))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Insights generated successfully",
		gin.H{"insights": text, "cached": false}))
}
