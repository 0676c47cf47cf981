package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.Addr)
	}
	if cfg.DefaultCurrency != "RON" {
		t.Fatalf("expected default currency RON, got %s", cfg.DefaultCurrency)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS origin, got %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.RunMigrations {
		t.Fatal("expected migrations enabled by default")
	}
}

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := Load()
	cfg.DatabaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestValidateRejectsBadLimits(t *testing.T) {
	cfg := Load()
	cfg.DatabaseURL = "postgres://localhost/tippool"
	cfg.MaxBodyBytes = 100
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for tiny body limit")
	}

	cfg.MaxBodyBytes = 1048576
	cfg.RateLimitPerMinute = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero rate limit")
	}
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	cfg := Load()
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("expected trimmed origin, got %q", cfg.CORSAllowedOrigins[1])
	}
}
