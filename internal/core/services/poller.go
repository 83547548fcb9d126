package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docflow-cli/internal/logger"
)

// TransitionSink consumes terminal transition events. Detection itself
// is pure (domain.DetectTransition); the sink is only the presentation
// side effect, so the poller state machine is testable without one.
type TransitionSink interface {
	// DocumentCompleted handles a processing -> processed transition.
	DocumentCompleted(doc *domain.Document)

	// DocumentFailed handles a processing -> error transition.
	DocumentFailed(doc *domain.Document)
}

// StatusPoller polls one document's status on a fixed period until a
// terminal transition is observed, then fires the notification and
// cache-invalidation side effects exactly once and self-terminates.
//
// The read is performed synchronously inside the loop iteration, so a
// slow response delays the next tick instead of overlapping it. At most
// one request per document is ever in flight.
type StatusPoller struct {
	documentID string
	interval   time.Duration

	api      driven.DocumentAPI
	cache    driven.CacheStore
	sink     TransitionSink
	activity driven.ActivityStore

	// lastKnown is only touched by the polling goroutine.
	lastKnown domain.DocumentStatus

	mu     sync.Mutex
	state  domain.PollerState
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewStatusPoller creates a poller for one document. The sink and
// activity store may be nil.
func NewStatusPoller(
	documentID string,
	initialStatus domain.DocumentStatus,
	interval time.Duration,
	api driven.DocumentAPI,
	cache driven.CacheStore,
	sink TransitionSink,
	activity driven.ActivityStore,
) *StatusPoller {
	if interval <= 0 {
		interval = domain.DefaultPollInterval
	}
	return &StatusPoller{
		documentID: documentID,
		interval:   interval,
		api:        api,
		cache:      cache,
		sink:       sink,
		activity:   activity,
		lastKnown:  initialStatus,
		state:      domain.PollerStateInit,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// DocumentID returns the document this poller watches.
func (p *StatusPoller) DocumentID() string {
	return p.documentID
}

// State returns the current lifecycle state.
func (p *StatusPoller) State() domain.PollerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Start begins polling. It is a no-op unless the initial status is
// processing: documents in any other state have nothing to watch.
func (p *StatusPoller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.state != domain.PollerStateInit {
		p.mu.Unlock()
		return
	}
	if p.lastKnown != domain.DocumentStatusProcessing {
		p.state = domain.PollerStateStopped
		close(p.doneCh)
		p.mu.Unlock()
		return
	}
	p.state = domain.PollerStatePolling
	p.mu.Unlock()

	go p.run(ctx)
}

// Stop halts polling. Idempotent: stopping an already-stopped or
// already-terminated poller is a safe no-op. On return no further tick
// fires, no cache is invalidated and no notification is dispatched.
func (p *StatusPoller) Stop() {
	p.mu.Lock()
	if p.state == domain.PollerStateInit {
		p.state = domain.PollerStateStopped
		close(p.doneCh)
		p.mu.Unlock()
		return
	}
	if p.state.IsTerminal() {
		p.mu.Unlock()
		<-p.doneCh
		return
	}
	p.state = domain.PollerStateStopped
	close(p.stopCh)
	p.mu.Unlock()

	<-p.doneCh
}

// run is the polling loop. It owns the ticker; teardown is total.
func (p *StatusPoller) run(ctx context.Context) {
	defer close(p.doneCh)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.markStopped()
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if p.poll(ctx) {
				return
			}
		}
	}
}

// poll issues one status read and applies any detected transition.
// Returns true when the poller reached a terminal state.
func (p *StatusPoller) poll(ctx context.Context) bool {
	doc, err := p.api.GetDocument(ctx, p.documentID)
	if err != nil {
		// Transient read failures never change lastKnown and never
		// stop the poller; the next tick retries.
		logger.Warn("poller %s: status read failed: %v", p.documentID, err)
		return false
	}

	transition := domain.DetectTransition(p.documentID, p.lastKnown, doc.Status, time.Now())
	if transition == nil {
		return false
	}
	if !transition.Terminal() {
		p.lastKnown = transition.To
		return false
	}

	return p.finish(doc, transition)
}

// finish applies the terminal transition's side effects exactly once.
// The mutex is held across the side effects so that a concurrent Stop
// either waits for them or prevents them entirely.
func (p *StatusPoller) finish(doc *domain.Document, transition *domain.Transition) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != domain.PollerStatePolling {
		return true
	}

	if transition.To == domain.DocumentStatusProcessed {
		p.state = domain.PollerStateCompleted
		if p.sink != nil {
			p.sink.DocumentCompleted(doc)
		}
	} else {
		p.state = domain.PollerStateErrored
		if p.sink != nil {
			p.sink.DocumentFailed(doc)
		}
	}

	if p.cache != nil {
		p.cache.Invalidate(domain.CacheDocumentsList)
		p.cache.Invalidate(domain.DocumentDetailKey(p.documentID))
	}

	p.recordTransition(transition)

	logger.Debug("poller %s: %s -> %s, stopping", p.documentID, transition.From, transition.To)
	return true
}

// recordTransition appends the transition to the local activity trail.
func (p *StatusPoller) recordTransition(transition *domain.Transition) {
	if p.activity == nil {
		return
	}

	rec := &domain.ActivityRecord{
		ID:         uuid.NewString(),
		Kind:       domain.ActivityTransition,
		DocumentID: p.documentID,
		Detail:     fmt.Sprintf("status %s -> %s", transition.From, transition.To),
		OccurredAt: transition.ObservedAt,
	}
	// Best effort: the trail is a convenience, not the source of truth.
	if err := p.activity.Record(context.Background(), rec); err != nil {
		logger.Warn("poller %s: record activity: %v", p.documentID, err)
	}
}

// markStopped flips to stopped without closing stopCh (context path).
func (p *StatusPoller) markStopped() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.IsTerminal() {
		p.state = domain.PollerStateStopped
	}
}
