package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultModel   = "llama-3.2-90b-text-preview"
	defaultBaseURL = "https://api.groq.com/openai/v1"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Enabled reports whether the limit should be enforced.
func (r RateLimitConfig) Enabled() bool {
	return r.Requests > 0 && r.Interval > 0
}

// ModelConfig describes how the hosted chat-completion model is reached.
type ModelConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	Timeout   time.Duration
	RateLimit RateLimitConfig
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	Model     ModelConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8000"),
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "console")),
		Model: ModelConfig{
			APIKey:  strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
			Model:   getEnv("GROQ_MODEL", defaultModel),
			BaseURL: strings.TrimRight(getEnv("GROQ_BASE_URL", defaultBaseURL), "/"),
		},
	}

	if cfg.Model.APIKey == "" {
		return nil, errors.New("GROQ_API_KEY is required")
	}

	timeout, err := time.ParseDuration(getEnv("GROQ_TIMEOUT", "60s"))
	if err != nil || timeout < 0 {
		return nil, fmt.Errorf("invalid GROQ_TIMEOUT value: %q", os.Getenv("GROQ_TIMEOUT"))
	}
	cfg.Model.Timeout = timeout

	if raw := getEnv("GROQ_RATE_LIMIT", ""); raw != "" {
		rl, err := parseRateLimit(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid GROQ_RATE_LIMIT value: %w", err)
		}
		cfg.Model.RateLimit = rl
	}

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
