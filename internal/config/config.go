package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port           string
	DBPath         string
	ScannerEnabled bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8585"),
		DBPath:         getEnv("DB_PATH", "./inventory.db"),
		ScannerEnabled: getEnv("SCANNER_ENABLED", "true") == "true",
	}

	// Make sure port is valid
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = "8585"
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
