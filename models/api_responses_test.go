package models

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/api/v1/reports/sales", nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestSuccessResponseEnvelope(t *testing.T) {
	c := testContext(t)

	resp := SuccessResponse(c, "Sales report retrieved successfully", gin.H{"period": "all_time"})

	assert.Equal(t, "Sales report retrieved successfully", resp.Message)
	assert.False(t, resp.Error)
	assert.Nil(t, resp.Meta)
	assert.Nil(t, resp.Rate)
	assert.NotNil(t, resp.Data)
}

func TestErrorResponseSetsErrorFlag(t *testing.T) {
	c := testContext(t)

	resp := ErrorResponse(c, "Unknown period: yesterday")

	assert.True(t, resp.Error)
	assert.Equal(t, "Unknown period: yesterday", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestPaginatedResponseCarriesMeta(t *testing.T) {
	c := testContext(t)
	meta := &Pagination{Page: 2, Limit: 20, Total: 45, TotalPages: 3}

	resp := PaginatedResponse(c, "Activity logs retrieved", gin.H{"logs": []string{}}, meta)

	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestRateMetaEchoedFromContext(t *testing.T) {
	c := testContext(t)
	c.Set("rateLimiter", &RateLimiter{Limit: 10, Remaining: 9})

	resp := SuccessResponse(c, "Insights generated successfully", nil)

	require.NotNil(t, resp.Rate)
	assert.Equal(t, 10, resp.Rate.Limit)
	assert.Equal(t, 9, resp.Rate.Remaining)
}
