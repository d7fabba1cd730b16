// Package store is the single source of truth for stories, preferences,
// and bookmarks. It holds the authoritative state in memory, applies
// every mutation as an atomic state transition, and persists the
// affected slice to the embedded database as a post-commit effect.
// Readers never observe a torn intermediate state.
package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/trailbookapp/trailbook/internal/domain"
)

// EventEmitter receives a notification after every committed mutation.
// The store uses this to broadcast changes without depending on how
// subscribers consume them.
type EventEmitter interface {
	Emit(event any)
}

// NoopEmitter is a no-op implementation of EventEmitter for testing.
type NoopEmitter struct{}

// Emit implements EventEmitter.Emit as a no-op.
func (NoopEmitter) Emit(_ any) {}

// NewNoopEmitter creates a new no-op emitter for testing.
func NewNoopEmitter() EventEmitter {
	return NoopEmitter{}
}

// SearchIndexer keeps the full-text index in sync with the store.
// Index maintenance is best effort; a failing indexer never blocks or
// fails a mutation.
type SearchIndexer interface {
	IndexStory(story domain.Story) error
	DeleteStory(storyID string) error
	Rebuild(stories []domain.Story) error
}

// NoopSearchIndexer is a no-op implementation for testing.
type NoopSearchIndexer struct{}

// IndexStory is a no-op.
func (NoopSearchIndexer) IndexStory(domain.Story) error { return nil }

// DeleteStory is a no-op.
func (NoopSearchIndexer) DeleteStory(string) error { return nil }

// Rebuild is a no-op.
func (NoopSearchIndexer) Rebuild([]domain.Story) error { return nil }

// NewNoopSearchIndexer creates a new no-op search indexer for testing.
func NewNoopSearchIndexer() SearchIndexer {
	return NoopSearchIndexer{}
}

// Store wraps a Badger database and the in-memory journal state.
//
// All operations are single-writer: the mutex serializes mutations, so
// read-modify-write sequences like a like toggle are atomic with
// respect to any other store call.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	eventEmitter EventEmitter

	// Search indexer, set via SetSearchIndexer after store creation to
	// avoid circular dependencies.
	searchIndexer SearchIndexer

	mu        sync.RWMutex
	stories   []domain.Story
	prefs     domain.Preferences
	bookmarks domain.Bookmarks

	// Save status for the autosave indicator. Guarded by mu.
	saveHealthy bool
}

// New opens the journal database at the given path and loads the
// persisted state into memory. Malformed or missing persisted data is
// absorbed: stories migrate through normalization and preferences merge
// over defaults.
func New(path string, logger *slog.Logger, emitter EventEmitter) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Disable Badger's internal logging
	opts.SyncWrites = true // Sync writes to survive crashes

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:            db,
		logger:        logger,
		eventEmitter:  emitter,
		searchIndexer: NoopSearchIndexer{},
		saveHealthy:   true,
	}

	store.loadState()

	// Re-persist immediately so the durable copy is always in the
	// current normalized shape.
	store.mu.Lock()
	store.persistStateLocked()
	store.persistBookmarksLocked()
	store.mu.Unlock()

	if logger != nil {
		logger.Info("journal database opened", "path", path, "stories", len(store.stories))
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("closing journal database")
	}
	return s.db.Close()
}

// SetSearchIndexer sets the search indexer for keeping search in sync.
// Set after store creation because the search service needs the store's
// stories for its initial build.
func (s *Store) SetSearchIndexer(indexer SearchIndexer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if indexer == nil {
		indexer = NoopSearchIndexer{}
	}
	s.searchIndexer = indexer
}

// Healthy reports whether the last persistence attempt succeeded.
// Persistence failures never surface as operation errors; this flag is
// how the autosave indicator observes them.
func (s *Store) Healthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveHealthy
}

// loadState derives the in-memory state from the persisted snapshot.
// Caller must not hold the mutex.
func (s *Store) loadState() {
	var onDisk persistedState
	if !s.load(stateKey, &onDisk) {
		onDisk = persistedState{}
	}

	var bookmarks domain.Bookmarks
	if !s.load(bookmarksKey, &bookmarks) || bookmarks == nil {
		bookmarks = domain.Bookmarks{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stories = migrateStories(onDisk.Stories)
	s.prefs = mergePrefs(onDisk.Prefs)
	s.bookmarks = bookmarks
}

func (s *Store) emit(event any) {
	if s.eventEmitter != nil {
		s.eventEmitter.Emit(event)
	}
}

// index updates the search index, logging failures instead of
// returning them.
func (s *Store) index(story domain.Story) {
	if err := s.searchIndexer.IndexStory(story); err != nil && s.logger != nil {
		s.logger.Warn("search index update failed", "story_id", story.ID, "error", err)
	}
}

func (s *Store) unindex(storyID string) {
	if err := s.searchIndexer.DeleteStory(storyID); err != nil && s.logger != nil {
		s.logger.Warn("search index delete failed", "story_id", storyID, "error", err)
	}
}

func (s *Store) reindexAll(stories []domain.Story) {
	if err := s.searchIndexer.Rebuild(stories); err != nil && s.logger != nil {
		s.logger.Warn("search index rebuild failed", "error", err)
	}
}
