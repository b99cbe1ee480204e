package config

import (
	"fmt"
	"os"
	"time"

	"derdiedas/internal/domain"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Env          string
	WordsFile    string
	Orientation  domain.Orientation
	SheetName    string
	AdvanceDelay time.Duration
	LogFile      string
}

// LogDisabled is the LOG_FILE value that turns logging off
const LogDisabled = "off"

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	orientation, err := domain.ParseOrientation(getEnv("ORIENTATION", string(domain.OrientationAuto)))
	if err != nil {
		return nil, fmt.Errorf("ORIENTATION: %w", err)
	}

	delay, err := time.ParseDuration(getEnv("ADVANCE_DELAY", "150ms"))
	if err != nil {
		return nil, fmt.Errorf("ADVANCE_DELAY: %w", err)
	}
	if delay <= 0 {
		return nil, fmt.Errorf("ADVANCE_DELAY must be positive, got %s", delay)
	}

	cfg := &Config{
		Env:          getEnv("APP_ENV", "production"),
		WordsFile:    getEnv("WORDS_FILE", "words.xlsx"),
		Orientation:  orientation,
		SheetName:    os.Getenv("SHEET_NAME"),
		AdvanceDelay: delay,
		LogFile:      getEnv("LOG_FILE", "derdiedas.log"),
	}

	// Validate fields
	if cfg.Env != "production" && cfg.Env != "development" {
		return nil, fmt.Errorf("APP_ENV must be production or development, got %q", cfg.Env)
	}

	return cfg, nil
}

// LoggingEnabled reports whether a log file is configured
func (c *Config) LoggingEnabled() bool {
	return c.LogFile != "" && c.LogFile != LogDisabled
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
