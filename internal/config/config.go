package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDsn string

	AdminUsername string
	AdminPassword string

	SweepSchedule string
}

func Load() *Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		DBDsn: getEnvOrDefault("DB_DSN", "sanse-desk.db"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SweepSchedule: getEnvOrDefault("SWEEP_SCHEDULE", "10 0 * * *"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
