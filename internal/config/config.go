package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	HTTPAddr       string
	LogLevel       string
	RequestTimeout time.Duration
	OpenRouter     OpenRouterConfig
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load reads configuration from the environment. A missing API key is
// an error here so the process fails at startup instead of per request.
func Load() (Config, error) {
	var cfg Config

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	reqTimeout, err := parseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "90s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_CLIENT_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = reqTimeout

	cfg.OpenRouter = OpenRouterConfig{
		APIKey:  getEnv("OPENROUTER_API_KEY", ""),
		BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		Model:   getEnv("OPENROUTER_MODEL", "openai/gpt-5-nano"),
	}
	if cfg.OpenRouter.APIKey == "" {
		return Config{}, fmt.Errorf("OPENROUTER_API_KEY is required")
	}

	return cfg, nil
}

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	return time.ParseDuration(value)
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}
