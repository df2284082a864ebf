package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries all process configuration. Components receive the values they
// need at construction time; nothing reads the environment after Load.
type Config struct {
	Port              string
	DatabaseURL       string
	LowStockThreshold int
	JWTSecret         string
	LogLevel          string
	AdminEmail        string
	AdminPassword     string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 10),
		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_NAME", "stocktrack"),
			getEnv("DB_PORT", "5432"),
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
