package config

import (
	"os"
	"strconv"

	"github.com/urmt/Swarm-Labs-Experiment-SFH/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Export   ExportConfig
}

// AnalysisConfig holds the Monte Carlo run settings
type AnalysisConfig struct {
	Samples            int
	Seed               int64
	Tuning             string // preset name: option-a or upgraded
	SweepPoints        int
	ThresholdPoints    int
	CoherenceThreshold float64
}

// ExportConfig holds export collaborator settings
type ExportConfig struct {
	OutDir        string
	WriteWorkbook bool
	WriteSummary  bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Analysis: AnalysisConfig{
			Samples:            getEnvIntOrDefault("SFH_SAMPLES", 6000),
			Seed:               getEnvInt64OrDefault("SFH_SEED", 2025),
			Tuning:             getEnvOrDefault("SFH_TUNING", "option-a"),
			SweepPoints:        getEnvIntOrDefault("SFH_SWEEP_POINTS", 41),
			ThresholdPoints:    getEnvIntOrDefault("SFH_THRESHOLD_POINTS", 101),
			CoherenceThreshold: getEnvFloatOrDefault("SFH_COHERENCE_THRESHOLD", 0.8),
		},
		Export: ExportConfig{
			OutDir:        getEnvOrDefault("SFH_OUT_DIR", "out"),
			WriteWorkbook: getEnvBoolOrDefault("SFH_WRITE_WORKBOOK", true),
			WriteSummary:  getEnvBoolOrDefault("SFH_WRITE_SUMMARY", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	a := config.Analysis
	if a.Samples <= 0 {
		return errors.ConfigInvalid("SFH_SAMPLES must be positive")
	}
	if a.SweepPoints <= 0 {
		return errors.ConfigInvalid("SFH_SWEEP_POINTS must be positive")
	}
	if a.ThresholdPoints <= 0 {
		return errors.ConfigInvalid("SFH_THRESHOLD_POINTS must be positive")
	}
	if a.CoherenceThreshold < 0 || a.CoherenceThreshold > 1 {
		return errors.ConfigInvalid("SFH_COHERENCE_THRESHOLD must lie in [0,1]")
	}
	if config.Export.OutDir == "" {
		return errors.ConfigInvalid("SFH_OUT_DIR cannot be empty")
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

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
