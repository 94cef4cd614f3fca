package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Venus2Mice/crm-ad-dash-sub001/config"
	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

// ErrNoAPIKey is returned when an AI operation runs without a configured
// credential. The operation fails; the rest of the application is unaffected.
var ErrNoAPIKey = errors.New("AI features are disabled: no API key is configured")

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the Gemini generateContent API for smart insights and
// sales forecasts. One request, one response: no retry, no streaming —
// callers re-invoke manually on demand.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewGeminiClient builds a client from the environment. A missing key does
// not fail construction; requests fail with ErrNoAPIKey instead.
func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		apiKey:  config.GeminiAPIKey(),
		model:   config.GeminiModel(),
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewGeminiClientWithBaseURL is used by tests to point at a fake server.
func NewGeminiClientWithBaseURL(apiKey, model, baseURL string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ════════════════════════════════════════════════════════════
// Request Shapes
// ════════════════════════════════════════════════════════════

// InsightsRequest carries the summarized numbers behind the smart insights
// prompt. Only aggregates cross the wire, never raw entity records.
type InsightsRequest struct {
	SalesData   []models.ChartDataItem `json:"sales_data"`
	LeadSources []models.ChartDataItem `json:"lead_sources"`
	DealStats   *models.DealStats      `json:"deal_stats,omitempty"`
}

// HistoricalDeal is one closed-won data point for the forecast prompt
type HistoricalDeal struct {
	Value     float64 `json:"value"`
	CloseDate string  `json:"close_date"`
	Currency  string  `json:"currency"`
}

// OpenDeal is one in-flight data point for the forecast prompt
type OpenDeal struct {
	Value             float64 `json:"value"`
	Stage             string  `json:"stage"`
	ExpectedCloseDate string  `json:"expected_close_date"`
	Currency          string  `json:"currency"`
}

// ForecastRequest carries the forecast inputs; both deal lists are capped
// at 50 entries to bound the prompt size.
type ForecastRequest struct {
	HistoricalWonDeals []HistoricalDeal `json:"historical_won_deals"`
	OpenDeals          []OpenDeal       `json:"open_deals"`
	RecentLeadVolume   int              `json:"recent_lead_volume"`
	ForecastPeriod     string           `json:"forecast_period"`
}

// ForecastResult wraps the loosely structured forecast text
type ForecastResult struct {
	ForecastText string `json:"forecast_text"`
}

const maxForecastDeals = 50

// ════════════════════════════════════════════════════════════
// Operations
// ════════════════════════════════════════════════════════════

// GenerateInsights asks the model for a plain-prose reading of the report
// aggregates. The response is free text, paragraph-delimited by blank lines.
func (g *GeminiClient) GenerateInsights(ctx context.Context, req InsightsRequest) (string, error) {
	prompt := buildInsightsPrompt(req)
	return g.generate(ctx, prompt)
}

// GenerateForecast asks the model for a sales forecast in the fixed
// "Forecasted Revenue / Confidence Level / Key Factors" layout.
func (g *GeminiClient) GenerateForecast(ctx context.Context, req ForecastRequest) (ForecastResult, error) {
	if len(req.HistoricalWonDeals) > maxForecastDeals {
		req.HistoricalWonDeals = req.HistoricalWonDeals[:maxForecastDeals]
	}
	if len(req.OpenDeals) > maxForecastDeals {
		req.OpenDeals = req.OpenDeals[:maxForecastDeals]
	}
	prompt := buildForecastPrompt(req)
	text, err := g.generate(ctx, prompt)
	if err != nil {
		return ForecastResult{}, err
	}
	return ForecastResult{ForecastText: text}, nil
}

// ════════════════════════════════════════════════════════════
// Prompt Builders
// ════════════════════════════════════════════════════════════

func buildInsightsPrompt(req InsightsRequest) string {
	var b strings.Builder
	b.WriteString("You are a CRM analyst. Given the aggregated sales data below, ")
	b.WriteString("write 2-3 short paragraphs of actionable insights, separated by blank lines. ")
	b.WriteString("Plain prose only, no markdown headings.\n\n")

	b.WriteString("Sales by month:\n")
	for _, item := range req.SalesData {
		fmt.Fprintf(&b, "- %s: %.2f\n", item.Name, item.Value)
	}
	b.WriteString("\nLeads by source:\n")
	for _, item := range req.LeadSources {
		fmt.Fprintf(&b, "- %s: %.0f\n", item.Name, item.Value)
	}
	if req.DealStats != nil {
		fmt.Fprintf(&b, "\nDeals: %d total, %d open, average value %.2f\n",
			req.DealStats.TotalDeals, req.DealStats.OpenDeals, req.DealStats.AverageDealValue)
	}
	return b.String()
}

func buildForecastPrompt(req ForecastRequest) string {
	var b strings.Builder
	b.WriteString("You are a sales forecasting analyst. Produce a revenue forecast for the period ")
	b.WriteString(req.ForecastPeriod)
	b.WriteString(" in exactly this layout:\n")
	b.WriteString("Forecasted Revenue: <amount>\n")
	b.WriteString("Confidence Level: <High|Medium|Low>\n")
	b.WriteString("Key Factors:\n- <factor>\n- <factor>\n\n")

	b.WriteString("Historical won deals:\n")
	for _, d := range req.HistoricalWonDeals {
		fmt.Fprintf(&b, "- %.2f %s closed %s\n", d.Value, d.Currency, d.CloseDate)
	}
	b.WriteString("\nOpen deals:\n")
	for _, d := range req.OpenDeals {
		fmt.Fprintf(&b, "- %.2f %s in %s, expected close %s\n", d.Value, d.Currency, d.Stage, d.ExpectedCloseDate)
	}
	fmt.Fprintf(&b, "\nRecent lead volume: %d\n", req.RecentLeadVolume)
	return b.String()
}

// ════════════════════════════════════════════════════════════
// Transport
// ════════════════════════════════════════════════════════════

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrNoAPIKey
	}

	payload := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		log.Printf("[gemini] request failed: %v", err)
		return "", fmt.Errorf("the AI service could not be reached: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[gemini] api returned status %d: %s", resp.StatusCode, string(body))
		return "", mapProviderError(resp.StatusCode, string(body))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("the AI service returned a malformed response: %w", err)
	}

	text := extractText(parsed)
	if text == "" {
		return "", errors.New("the AI service returned an empty response, please try again")
	}
	return text, nil
}

// mapProviderError turns known provider error substrings into user-facing
// messages; everything else surfaces as a generic retryable failure.
func mapProviderError(status int, body string) error {
	switch {
	case strings.Contains(body, "API key not valid"):
		return errors.New("the configured AI API key is not valid, check GEMINI_API_KEY")
	case strings.Contains(body, "quota"):
		return errors.New("the AI service quota has been exceeded, try again later")
	default:
		return fmt.Errorf("the AI service returned an error (status %d), please try again", status)
	}
}

func extractText(resp geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}
