// Package cli implements the trailbook command tree. Every command
// runs against the local journal: the store, search index, and
// services are wired up through the DI container before a command
// body executes and shut down after it returns.
package cli

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/trailbookapp/trailbook/internal/config"
	"github.com/trailbookapp/trailbook/internal/di"
	"github.com/trailbookapp/trailbook/internal/di/providers"
	"github.com/trailbookapp/trailbook/internal/logger"
	"github.com/trailbookapp/trailbook/internal/service"
	"github.com/trailbookapp/trailbook/internal/store"
)

// Flag variables.
var (
	flagEnvironment string
	flagLogLevel    string
	flagDataPath    string
	flagSeedPath    string
	flagEnvFile     string
)

// app holds the wired services for the lifetime of one command.
type app struct {
	injector *do.RootScope
	cfg      *config.Config
	log      *logger.Logger
	store    *store.Store
	search   *providers.SearchIndexHandle
	auth     *service.AuthService
}

var current *app

// openApp wires the container. Called from PersistentPreRunE so every
// subcommand gets a ready journal.
func openApp(*cobra.Command, []string) error {
	injector := di.NewContainer(config.Overrides{
		Environment: flagEnvironment,
		LogLevel:    flagLogLevel,
		DataPath:    flagDataPath,
		SeedPath:    flagSeedPath,
		EnvFile:     flagEnvFile,
	})
	if err := di.Bootstrap(injector); err != nil {
		return err
	}

	current = &app{
		injector: injector,
		cfg:      do.MustInvoke[*config.Config](injector),
		log:      do.MustInvoke[*logger.Logger](injector),
		store:    do.MustInvoke[*providers.StoreHandle](injector).Store,
		search:   do.MustInvoke[*providers.SearchIndexHandle](injector),
		auth:     do.MustInvoke[*service.AuthService](injector),
	}
	return nil
}

// closeApp shuts the container down in reverse dependency order.
func closeApp(*cobra.Command, []string) {
	if current == nil {
		return
	}

	if !current.store.Healthy() {
		current.log.Warn("some changes could not be saved to disk")
	}

	if err := current.injector.Shutdown(); err != nil {
		current.log.Error("shutdown error", "error", err)
	}
	current = nil
}

var rootCmd = &cobra.Command{
	Use:   "trailbook",
	Short: "A local-first travel journal",
	Long: "Trailbook keeps a journal of travel stories on your own disk:\n" +
		"write entries, tag and bookmark them, search the full text, and\n" +
		"export everything whenever you like. Nothing leaves the machine.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: openApp,
	PersistentPostRun: closeApp,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
}

// Execute runs the command tree. Returns the error for main to report.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvironment, "env", "",
		"Environment (development or production).")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"Log level (debug, info, warn, error).")
	rootCmd.PersistentFlags().StringVar(&flagDataPath, "data", "",
		"Journal data directory (default ~/Trailbook/data).")
	rootCmd.PersistentFlags().StringVar(&flagSeedPath, "seed", "",
		"Seed dataset consumed when the journal is empty.")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "",
		"Path to a .env file with configuration.")
}
