package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if cfg.Gemini.ChatModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected chat model %q", cfg.Gemini.ChatModel)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Fatalf("expected session ttl 2h, got %v", cfg.Session.TTL)
	}
	if cfg.Redis.Enabled() {
		t.Fatal("redis should be disabled without an endpoint")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TACWORLD_APP_ENV", "prod")
	t.Setenv("TACWORLD_APP_PORT", "9090")
	t.Setenv("TACWORLD_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("TACWORLD_GEMINI_CALL_TIMEOUT", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("unexpected port %q", cfg.App.Port)
	}
	if !cfg.Redis.Enabled() {
		t.Fatal("redis should be enabled with a url")
	}
	if cfg.Gemini.CallTimeout != 10*time.Second {
		t.Fatalf("unexpected call timeout %v", cfg.Gemini.CallTimeout)
	}
}
