package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything read from the environment at startup.
type Config struct {
	MongoURI         string
	MongoDatabase    string
	Port             string
	CORSOrigins      []string
	LowStockSchedule string
}

// Load reads configuration from environment variables. MONGO_URI is the only
// required setting; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "ruralhealth"),
		Port:             getEnv("PORT", "8000"),
		LowStockSchedule: getEnv("LOW_STOCK_SCHEDULE", "0 6 * * *"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	origins := getEnv("CORS_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
