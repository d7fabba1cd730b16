// Package di provides dependency injection configuration for the
// Trailbook journal.
package di

import (
	"github.com/samber/do/v2"

	"github.com/trailbookapp/trailbook/internal/config"
	"github.com/trailbookapp/trailbook/internal/di/providers"
	"github.com/trailbookapp/trailbook/internal/logger"
	"github.com/trailbookapp/trailbook/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer(overrides config.Overrides) *do.RootScope {
	injector := do.New()

	// Command-line overrides feed into config loading
	do.ProvideValue(injector, overrides)

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Data layer
	do.Provide(injector, providers.ProvideHub)
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideSearchIndex)

	// Services
	do.Provide(injector, providers.ProvideAuthService)

	return injector
}

// Bootstrap initializes all services, seeds an empty journal, and
// backfills the search index when needed.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.HubHandle](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*service.AuthService](injector)

	if err := providers.SeedJournal(injector); err != nil {
		return err
	}

	providers.ReindexIfNeeded(injector)

	return nil
}
