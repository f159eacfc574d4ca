package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"marketplace-backend/mailer"
	"marketplace-backend/services"
)

// Config holds all runtime configuration, read from the environment.
type Config struct {
	Port        string
	Environment string

	MongoURI  string
	MongoDB   string
	RedisURL  string
	JWTSecret string
	TokenTTL  time.Duration

	// DispatchPolicy controls when an order moves to Dispatched:
	// "all-items" waits for every line, "vendor-items" dispatches as soon
	// as one vendor's own lines are accepted.
	DispatchPolicy string

	SMTP mailer.SMTPConfig
}

// LoadConfig reads configuration from the environment, with .env as a
// development convenience.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("APP_ENV", "development"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "marketplace"),
		RedisURL:       os.Getenv("REDIS_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       time.Hour,
		DispatchPolicy: getEnv("DISPATCH_POLICY", services.DispatchAllItems),
		SMTP: mailer.SMTPConfig{
			Host:       os.Getenv("SMTP_HOST"),
			Port:       getEnv("SMTP_PORT", "587"),
			Username:   os.Getenv("SMTP_USERNAME"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			SenderName: getEnv("SMTP_SENDER_NAME", "Marketplace"),
		},
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		cfg.TokenTTL = ttl
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DispatchPolicy != services.DispatchAllItems && cfg.DispatchPolicy != services.DispatchVendorItems {
		return nil, fmt.Errorf("invalid DISPATCH_POLICY %q", cfg.DispatchPolicy)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
