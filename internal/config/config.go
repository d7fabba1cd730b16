// Package config provides application configuration with support for
// command-line overrides, environment variables, and .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Data   DataConfig
	Seed   SeedConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// DataConfig holds local storage configuration.
type DataConfig struct {
	// BasePath is the directory holding the journal database and the
	// search index (default: ~/Trailbook/data).
	BasePath string
}

// SeedConfig holds first-run seed dataset configuration.
type SeedConfig struct {
	// Path to the bundled seed dataset consumed when the journal is
	// empty on startup (default: {data}/seed.json).
	Path string
}

// Overrides carries command-line values that take precedence over
// environment variables. The CLI layer owns flag parsing and hands the
// results here.
type Overrides struct {
	Environment string
	LogLevel    string
	DataPath    string
	SeedPath    string
	EnvFile     string
}

// Load builds configuration with precedence:
// 1. Command-line overrides (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(ov Overrides) (*Config, error) {
	envFile := ov.EnvFile
	if envFile == "" {
		envFile = ".env"
	}

	// Load .env file if it exists (silently ignore if not found).
	// godotenv never overwrites variables that are already set, which
	// preserves the env-over-file precedence.
	_ = godotenv.Load(envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(ov.Environment, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(ov.LogLevel, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			BasePath: getConfigValue(ov.DataPath, "DATA_PATH", ""),
		},
		Seed: SeedConfig{
			Path: getConfigValue(ov.SeedPath, "SEED_PATH", ""),
		},
	}

	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}
	if err := cfg.expandSeedPath(); err != nil {
		return nil, fmt.Errorf("invalid seed path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Data.BasePath == "" {
		return errors.New("data base path cannot be empty after expansion")
	}

	return nil
}

// DBPath returns the journal database directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.Data.BasePath, "journal")
}

// SearchPath returns the directory holding the search index.
func (c *Config) SearchPath() string {
	return filepath.Join(c.Data.BasePath, "search")
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// expandDataPath expands ~ and makes the path absolute.
func (c *Config) expandDataPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "Trailbook", "data")

	expanded, err := expandPath(c.Data.BasePath, defaultPath)
	if err != nil {
		return err
	}
	c.Data.BasePath = expanded
	return nil
}

// expandSeedPath expands ~ and makes the path absolute.
// Defaults to {data}/seed.json if not specified.
func (c *Config) expandSeedPath() error {
	defaultPath := filepath.Join(c.Data.BasePath, "seed.json")

	expanded, err := expandPath(c.Seed.Path, defaultPath)
	if err != nil {
		return err
	}
	c.Seed.Path = expanded
	return nil
}

// getConfigValue returns the first non-empty value from override, env var, or default.
func getConfigValue(override, envKey, defaultValue string) string {
	if override != "" {
		return override
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}
