package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docflow-cli/internal/logger"
)

// Ensure Coordinator implements the interface.
var _ driving.PollingCoordinator = (*Coordinator)(nil)

// Coordinator maintains the registry of active status pollers, one per
// processing document. Pollers are owned, cancellable tasks keyed by
// document ID; there are no free-floating timers, so teardown is total.
type Coordinator struct {
	api      driven.DocumentAPI
	cache    driven.CacheStore
	sink     TransitionSink
	activity driven.ActivityStore
	interval time.Duration

	mu      sync.Mutex
	pollers map[string]*StatusPoller
}

// NewCoordinator creates a coordinator. The sink and activity store may
// be nil; interval <= 0 falls back to domain.DefaultPollInterval.
func NewCoordinator(
	api driven.DocumentAPI,
	cache driven.CacheStore,
	sink TransitionSink,
	activity driven.ActivityStore,
	interval time.Duration,
) *Coordinator {
	if interval <= 0 {
		interval = domain.DefaultPollInterval
	}
	return &Coordinator{
		api:      api,
		cache:    cache,
		sink:     sink,
		activity: activity,
		interval: interval,
		pollers:  make(map[string]*StatusPoller),
	}
}

// Refresh recomputes poller membership from the current document list.
// Processing documents without a live poller get one; documents that
// resolved or disappeared are left to their pollers' self-termination.
func (c *Coordinator) Refresh(ctx context.Context, docs []domain.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Sweep out pollers that already self-terminated so the registry
	// does not grow without bound across refreshes.
	for id, p := range c.pollers {
		if p.State().IsTerminal() {
			delete(c.pollers, id)
		}
	}

	for i := range docs {
		doc := &docs[i]
		if doc.Status != domain.DocumentStatusProcessing {
			continue
		}
		if _, exists := c.pollers[doc.ID]; exists {
			// At most one live poller per document.
			continue
		}

		p := NewStatusPoller(doc.ID, doc.Status, c.interval, c.api, c.cache, c.sink, c.activity)
		c.pollers[doc.ID] = p
		p.Start(ctx)
		logger.Debug("coordinator: started poller for %s", doc.ID)
	}
}

// Watching returns true if a live poller exists for the document.
func (c *Coordinator) Watching(documentID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pollers[documentID]
	return ok && !p.State().IsTerminal()
}

// ActiveCount returns the number of live pollers.
func (c *Coordinator) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, p := range c.pollers {
		if !p.State().IsTerminal() {
			count++
		}
	}
	return count
}

// StopAll synchronously stops every poller. Idempotent.
func (c *Coordinator) StopAll() {
	c.mu.Lock()
	pollers := make([]*StatusPoller, 0, len(c.pollers))
	for _, p := range c.pollers {
		pollers = append(pollers, p)
	}
	c.pollers = make(map[string]*StatusPoller)
	c.mu.Unlock()

	for _, p := range pollers {
		p.Stop()
	}
}
