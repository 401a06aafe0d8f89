package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DatabaseURL        string
	Env                string
	SessionTTL         time.Duration
	EmailProvider      string
	ResendAPIKey       string
	SendgridAPIKey     string
	EmailFrom          string
	NotifyInterval     time.Duration
	NotifyBatchSize    int
	NotifyMaxAttempts  int
	RateLimitPerMinute int
	RateLimitBurst     int
	OTLPEndpoint       string
	OTLPInsecure       bool
}

func Load() Config {
	// Missing .env is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("dotenv load: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Port:               port,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Env:                os.Getenv("ENV"),
		SessionTTL:         time.Duration(readInt("SESSION_TTL_HOURS", 168)) * time.Hour,
		EmailProvider:      os.Getenv("EMAIL_PROVIDER"),
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		SendgridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		EmailFrom:          os.Getenv("EMAIL_FROM"),
		NotifyInterval:     time.Duration(readInt("NOTIFY_INTERVAL_SECONDS", 15)) * time.Second,
		NotifyBatchSize:    readInt("NOTIFY_BATCH_SIZE", 50),
		NotifyMaxAttempts:  readInt("NOTIFY_MAX_ATTEMPTS", 3),
		RateLimitPerMinute: readInt("RATE_LIMIT_PER_MIN", 120),
		RateLimitBurst:     readInt("RATE_LIMIT_BURST", 30),
		OTLPEndpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure:       os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true",
	}
}

func (c Config) Production() bool {
	return c.Env == "production"
}

func readInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
