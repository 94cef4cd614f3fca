package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCustomTimeoutSetsDeadline(t *testing.T) {
	ctx, cancel := WithCustomTimeout(45 * time.Second)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(45*time.Second), deadline, time.Second)
}

func TestWithCustomTimeoutCancel(t *testing.T) {
	ctx, cancel := WithCustomTimeout(time.Minute)
	cancel()

	assert.Error(t, ctx.Err())
}

func TestPortDefault(t *testing.T) {
	t.Setenv("PORT", "")

	assert.Equal(t, "8081", Port())
}

func TestGeminiModelDefault(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "")

	assert.Equal(t, "gemini-1.5-flash", GeminiModel())
}

func TestAllowedOriginsFromEnv(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://crm.example.com, https://staging.example.com ,")

	origins := AllowedOrigins()

	assert.Equal(t, []string{"https://crm.example.com", "https://staging.example.com"}, origins)
}

func TestAllowedOriginsDefault(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")

	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, AllowedOrigins())
}
