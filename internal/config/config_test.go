package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "SESSION_TTL_HOURS", "RATE_LIMIT_PER_MIN",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.SessionTTL != 168*time.Hour {
		t.Fatalf("expected 7 day session TTL, got %v", cfg.SessionTTL)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Fatalf("expected default rate limit 120, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.OTLPEndpoint != "" || cfg.OTLPInsecure {
		t.Fatalf("expected tracing disabled by default, got endpoint=%q insecure=%v", cfg.OTLPEndpoint, cfg.OTLPInsecure)
	}
	if cfg.Production() {
		t.Fatalf("empty ENV must not be production")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_HOURS", "24")
	t.Setenv("ENV", "production")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "true")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected 24h session TTL, got %v", cfg.SessionTTL)
	}
	if !cfg.Production() {
		t.Fatalf("ENV=production must report production")
	}
	if cfg.OTLPEndpoint != "collector:4317" {
		t.Fatalf("expected OTLP endpoint, got %q", cfg.OTLPEndpoint)
	}
	if !cfg.OTLPInsecure {
		t.Fatalf("expected insecure OTLP flag set")
	}
}

func TestReadIntIgnoresGarbage(t *testing.T) {
	t.Setenv("NOTIFY_BATCH_SIZE", "not-a-number")
	if cfg := Load(); cfg.NotifyBatchSize != 50 {
		t.Fatalf("expected fallback batch size 50, got %d", cfg.NotifyBatchSize)
	}
}
