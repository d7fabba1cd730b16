package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/trailbookapp/trailbook/internal/bus"
	"github.com/trailbookapp/trailbook/internal/config"
	"github.com/trailbookapp/trailbook/internal/logger"
	"github.com/trailbookapp/trailbook/internal/store"
)

// HubHandle wraps the event hub with its context for lifecycle management.
type HubHandle struct {
	*bus.Hub
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *HubHandle) Shutdown() error {
	h.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Hub.Shutdown(ctx)
}

// ProvideHub provides the event hub.
func ProvideHub(i do.Injector) (*HubHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	hub := bus.NewHub(log.Logger)

	// Start in background
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Start(ctx)

	return &HubHandle{
		Hub:    hub,
		cancel: cancel,
	}, nil
}

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the journal store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	hubHandle := do.MustInvoke[*HubHandle](i)

	db, err := store.New(cfg.DBPath(), log.Logger, hubHandle.Hub)
	if err != nil {
		return nil, err
	}

	return &StoreHandle{Store: db}, nil
}

// SeedJournal populates an empty journal from the configured seed
// dataset. Called once after the container is wired.
func SeedJournal(i do.Injector) error {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return storeHandle.Bootstrap(context.Background(), cfg.Seed.Path)
}
