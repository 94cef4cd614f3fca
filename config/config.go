package config

import (
	"context"
	"os"
	"strings"
	"time"
)

// WithCustomTimeout returns a deadline-bounded context for outbound calls;
// the AI provider round trips run under it
func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

// Port returns the HTTP listen port
func Port() string {
	return getEnv("PORT", "8081")
}

// GeminiAPIKey returns the AI provider credential; empty means AI features
// are disabled
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// GeminiModel returns the generation model name
func GeminiModel() string {
	return getEnv("GEMINI_MODEL", "gemini-1.5-flash")
}

// AllowedOrigins returns the CORS allowlist
func AllowedOrigins() []string {
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return []string{"http://localhost:3000", "http://localhost:3001"}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
