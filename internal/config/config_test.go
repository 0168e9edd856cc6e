package config

import (
	"testing"
	"time"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without OPENROUTER_API_KEY")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.RequestTimeout != 90*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.OpenRouter.BaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("BaseURL = %q", cfg.OpenRouter.BaseURL)
	}
	if cfg.OpenRouter.Model != "openai/gpt-5-nano" {
		t.Fatalf("Model = %q", cfg.OpenRouter.Model)
	}
}
