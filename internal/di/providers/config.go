// Package providers contains dependency injection providers for the
// Trailbook journal.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/trailbookapp/trailbook/internal/config"
	"github.com/trailbookapp/trailbook/internal/logger"
)

// ProvideConfig provides the application configuration. Command-line
// overrides are injected as a value by the CLI before bootstrap.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	overrides := do.MustInvoke[config.Overrides](i)
	return config.Load(overrides)
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Debug("configuration loaded",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_path", cfg.Data.BasePath,
	)

	return log, nil
}
