package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents tidy configuration options
type Config struct {
	// SizeThresholdMB is the large-file threshold in whole megabytes
	SizeThresholdMB int64 `yaml:"size_threshold_mb"`

	// AgeThresholdDays is the old-file threshold in whole days
	AgeThresholdDays int `yaml:"age_threshold_days"`

	// DryRun enables preview mode without moving files
	DryRun bool `yaml:"dry_run"`

	// LogDir is the directory where run logs will be written
	LogDir string `yaml:"log_dir"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// NoColor disables colored console output
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		SizeThresholdMB:  100,
		AgeThresholdDays: 90,
		DryRun:           false,
		LogDir:           ".tidy/logs",
		LogLevel:         "info",
		NoColor:          false,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if fileCfg.SizeThresholdMB != 0 {
		cfg.SizeThresholdMB = fileCfg.SizeThresholdMB
	}
	if fileCfg.AgeThresholdDays != 0 {
		cfg.AgeThresholdDays = fileCfg.AgeThresholdDays
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	// DryRun is explicitly set if present in YAML
	if fileCfg.DryRun {
		cfg.DryRun = fileCfg.DryRun
	}
	// NoColor is explicitly set if present in YAML
	if fileCfg.NoColor {
		cfg.NoColor = fileCfg.NoColor
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .tidy/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ".tidy", "config.yaml")
	return LoadConfig(configPath)
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(sizeMB *int64, ageDays *int, dryRun *bool, logDir *string, logLevel *string, noColor *bool) {
	if sizeMB != nil {
		c.SizeThresholdMB = *sizeMB
	}
	if ageDays != nil {
		c.AgeThresholdDays = *ageDays
	}
	if dryRun != nil {
		c.DryRun = *dryRun
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if noColor != nil {
		c.NoColor = *noColor
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if c.SizeThresholdMB <= 0 {
		return fmt.Errorf("size_threshold_mb must be > 0, got %d", c.SizeThresholdMB)
	}

	if c.AgeThresholdDays <= 0 {
		return fmt.Errorf("age_threshold_days must be > 0, got %d", c.AgeThresholdDays)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}
