package config

import (
	"os"
	"strings"
)

// Config collects the environment-backed settings. godotenv is loaded by main
// before this runs, so a local .env file works the same as real env vars.
type Config struct {
	Port           string
	DBURL          string
	LogLevel       string
	AllowedOrigins []string
	// Cron expression for the nightly appointment completion sweep.
	SweepSchedule string
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DBURL:         os.Getenv("DB_URL"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SweepSchedule: getEnv("SWEEP_SCHEDULE", "0 3 * * *"),
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
