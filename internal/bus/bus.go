// Package bus is the in-process notification fan-out. Store mutations
// are published here after they commit, and interested components
// subscribe to react without the store knowing about them.
//
// The CLI currently wires the hub as the store's emitter only; nothing
// subscribes during a command run. The subscribe side exists for
// longer-lived frontends.
package bus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/trailbookapp/trailbook/internal/id"
)

// Subscriber represents a registered event consumer.
type Subscriber struct {
	SubscribedAt time.Time
	Events       chan any
	Done         chan struct{}
	ID           string
}

// Hub receives committed store events and fans them out to
// subscribers. Delivery is best effort: a slow subscriber gets events
// dropped, never a blocked publisher.
type Hub struct {
	subscribers map[string]*Subscriber
	events      chan any
	logger      *slog.Logger
	wg          sync.WaitGroup
	mu          sync.RWMutex

	// Shutdown state - protected by shutdownMu
	shutdownMu sync.RWMutex
	shutdown   bool
}

// NewHub creates a new event hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]*Subscriber),
		events:      make(chan any, 256),
		logger:      logger,
	}
}

// Start begins the dispatch loop. Call once, in a goroutine, at
// startup.
func (h *Hub) Start(ctx context.Context) {
	h.wg.Add(1)
	defer h.wg.Done()

	h.logger.Debug("event hub starting")

	for {
		select {
		case event := <-h.events:
			h.dispatch(event)
		case <-ctx.Done():
			h.logger.Debug("event hub stopping")
			h.closeAllSubscribers()
			return
		}
	}
}

// Shutdown stops accepting new events, drains what is queued, and
// closes all subscribers.
func (h *Hub) Shutdown(ctx context.Context) error {
	// Mark as shutdown AND close channel atomically while holding lock.
	// This prevents a race with Emit() which holds the read lock during
	// its send.
	h.shutdownMu.Lock()
	h.shutdown = true
	close(h.events)
	h.shutdownMu.Unlock()

	done := make(chan struct{})
	go func() {
		for event := range h.events {
			h.dispatch(event)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		h.logger.Warn("event drain timeout, some notifications may be lost")
	}

	h.wg.Wait()
	return nil
}

// Emit queues an event for dispatch. This implements the
// store.EventEmitter interface.
func (h *Hub) Emit(event any) {
	// Hold the read lock through the send so Shutdown cannot close the
	// channel mid-send.
	h.shutdownMu.RLock()
	defer h.shutdownMu.RUnlock()

	if h.shutdown {
		return
	}

	select {
	case h.events <- event:
	default:
		h.logger.Warn("event queue full, dropping notification")
	}
}

// Subscribe registers a new subscriber and returns it. The caller reads
// from Events until Done is closed.
func (h *Hub) Subscribe() (*Subscriber, error) {
	subID, err := id.Generate("sub")
	if err != nil {
		return nil, err
	}

	sub := &Subscriber{
		ID:           subID,
		Events:       make(chan any, 32),
		Done:         make(chan struct{}),
		SubscribedAt: time.Now(),
	}

	h.mu.Lock()
	h.subscribers[sub.ID] = sub
	h.mu.Unlock()

	h.logger.Debug("event subscriber registered", "subscriber_id", subID)
	return sub, nil
}

// Unsubscribe removes a subscriber and closes its channels.
func (h *Hub) Unsubscribe(subID string) {
	h.mu.Lock()
	sub, ok := h.subscribers[subID]
	if !ok {
		h.mu.Unlock()
		return
	}
	delete(h.subscribers, subID)
	h.mu.Unlock()

	close(sub.Done)
	close(sub.Events)
	h.logger.Debug("event subscriber removed", "subscriber_id", subID)
}

// SubscriberCount returns the number of registered subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// dispatch delivers an event to every subscriber with a non-blocking
// send.
func (h *Hub) dispatch(event any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		select {
		case sub.Events <- event:
		default:
			h.logger.Warn("dropped event for slow subscriber", "subscriber_id", sub.ID)
		}
	}
}

// closeAllSubscribers closes every subscriber (used during shutdown).
func (h *Hub) closeAllSubscribers() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subscribers {
		close(sub.Done)
		close(sub.Events)
	}
	h.subscribers = make(map[string]*Subscriber)
}
