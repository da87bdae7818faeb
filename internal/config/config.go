package config

import (
	"os"

	"tapereport/internal/logger"
)

// Config holds the application settings, read from the environment. The
// classification code sets live in their own rules file (see
// classify.LoadRules); this covers everything around the core.
type Config struct {
	// RulesFile is an optional path to a classification rules file.
	RulesFile string

	// InputFile is the default tape export to read when no --input flag is
	// given.
	InputFile string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the configuration from the environment. Every setting has a
// default; a report can always be built from flags alone.
func Load() (*Config, error) {
	config := &Config{
		RulesFile:     getEnv("TAPEREPORT_RULES_FILE", ""),
		InputFile:     getEnv("TAPEREPORT_INPUT_FILE", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
