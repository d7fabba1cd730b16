package providers

import (
	"github.com/samber/do/v2"

	"github.com/trailbookapp/trailbook/internal/config"
	"github.com/trailbookapp/trailbook/internal/logger"
	"github.com/trailbookapp/trailbook/internal/search"
)

// SearchIndexHandle wraps the search index with shutdown capability.
type SearchIndexHandle struct {
	*search.Index
}

// Shutdown implements do.Shutdownable.
func (h *SearchIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideSearchIndex provides the Bleve search index, wired to the
// store for automatic index maintenance.
func ProvideSearchIndex(i do.Injector) (*SearchIndexHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	index, err := search.NewIndex(search.Options{
		DataPath: cfg.SearchPath(),
		Logger:   log.Logger,
	})
	if err != nil {
		return nil, err
	}

	storeHandle.SetSearchIndexer(index)

	docCount, _ := index.DocumentCount()
	log.Debug("search index initialized", "documents", docCount)

	return &SearchIndexHandle{Index: index}, nil
}

// ReindexIfNeeded rebuilds an empty index when stories already exist,
// covering journals created before search or after an index wipe.
func ReindexIfNeeded(i do.Injector) {
	indexHandle := do.MustInvoke[*SearchIndexHandle](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	docCount, _ := indexHandle.DocumentCount()
	if docCount > 0 {
		return
	}

	stories := storeHandle.Stories()
	if len(stories) == 0 {
		return
	}

	if err := indexHandle.Rebuild(stories); err != nil {
		log.Error("initial search reindex failed", "error", err)
		return
	}
	log.Debug("initial search reindex completed", "stories", len(stories))
}
