package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"fleetcalc/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
	Log      LogConfig
	Report   ReportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port        string
	ReadTimeout time.Duration
}

// Addr is the listen address for the server.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// AnalysisConfig bounds the analysis fan-out
type AnalysisConfig struct {
	Workers int
}

// LogConfig selects the logger level and encoding
type LogConfig struct {
	Level       string
	Development bool
}

// ReportConfig holds report output settings
type ReportConfig struct {
	Dir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("FLEETCALC_PORT", "8080"),
			ReadTimeout: getEnvDurationOrDefault("FLEETCALC_READ_TIMEOUT", 10*time.Second),
		},
		Analysis: AnalysisConfig{
			Workers: getEnvIntOrDefault("FLEETCALC_WORKERS", 4),
		},
		Log: LogConfig{
			Level:       getEnvOrDefault("FLEETCALC_LOG_LEVEL", "info"),
			Development: getEnvBoolOrDefault("FLEETCALC_LOG_DEV", false),
		},
		Report: ReportConfig{
			Dir: getEnvOrDefault("FLEETCALC_REPORT_DIR", "./reports"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func validateConfig(config *Config) error {
	if port, err := strconv.Atoi(config.Server.Port); err != nil || port <= 0 || port > 65535 {
		return errors.ConfigInvalid(fmt.Sprintf("invalid port %q", config.Server.Port))
	}
	if config.Server.ReadTimeout <= 0 {
		return errors.ConfigInvalid("read timeout must be positive")
	}
	if config.Analysis.Workers < 1 {
		return errors.ConfigInvalid("workers must be at least 1")
	}
	if !logLevels[config.Log.Level] {
		return errors.ConfigInvalid(fmt.Sprintf("unknown log level %q", config.Log.Level))
	}
	if config.Report.Dir == "" {
		return errors.ConfigInvalid("report directory is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
