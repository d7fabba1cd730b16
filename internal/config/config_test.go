package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Data:   DataConfig{BasePath: "/some/path"},
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{
				App:    AppConfig{Environment: tt.env},
				Logger: LoggerConfig{Level: "info"},
				Data:   DataConfig{BasePath: "/some/path"},
			}

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_LogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		cfg := &Config{
			App:    AppConfig{Environment: "development"},
			Logger: LoggerConfig{Level: level},
			Data:   DataConfig{BasePath: "/some/path"},
		}
		assert.NoError(t, cfg.Validate(), "level %s should be valid", level)
	}

	cfg := &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "verbose"},
		Data:   DataConfig{BasePath: "/some/path"},
	}
	assert.Error(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DATA_PATH", "")
	t.Setenv("SEED_PATH", "")

	cfg, err := Load(Overrides{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, filepath.Join(home, "Trailbook", "data"), cfg.Data.BasePath)
	assert.Equal(t, filepath.Join(cfg.Data.BasePath, "seed.json"), cfg.Seed.Path)
	assert.Equal(t, filepath.Join(cfg.Data.BasePath, "journal"), cfg.DBPath())
	assert.Equal(t, filepath.Join(cfg.Data.BasePath, "search"), cfg.SearchPath())
}

func TestLoad_OverridesBeatEnv(t *testing.T) {
	t.Setenv("ENV", "staging")
	t.Setenv("DATA_PATH", "/env/data")

	cfg, err := Load(Overrides{
		Environment: "production",
		DataPath:    "/flag/data",
		EnvFile:     filepath.Join(t.TempDir(), "missing.env"),
	})
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "/flag/data", cfg.Data.BasePath)
}

func TestLoad_EnvFile(t *testing.T) {
	// t.Setenv snapshots the old values for restore; godotenv only sets
	// variables that are absent, so they must be unset, not empty.
	for _, key := range []string{"ENV", "LOG_LEVEL", "DATA_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LOG_LEVEL=debug\nDATA_PATH="+dir+"\n"), 0o600))

	cfg, err := Load(Overrides{EnvFile: envFile})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, dir, cfg.Data.BasePath)
}

func TestLoad_TildeExpansion(t *testing.T) {
	t.Setenv("DATA_PATH", "")

	cfg, err := Load(Overrides{
		DataPath: "~/journal-data",
		EnvFile:  filepath.Join(t.TempDir(), "missing.env"),
	})
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "journal-data"), cfg.Data.BasePath)
}
