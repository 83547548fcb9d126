package driving

import (
	"context"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

// PollingCoordinator owns the set of active status pollers, enforcing
// at most one live poller per document.
type PollingCoordinator interface {
	// Refresh recomputes poller membership from the current document
	// list: processing documents without a live poller get one, and
	// resolved documents are left to their pollers' self-termination.
	Refresh(ctx context.Context, docs []domain.Document)

	// Watching returns true if a live poller exists for the document.
	Watching(documentID string) bool

	// ActiveCount returns the number of live pollers.
	ActiveCount() int

	// StopAll synchronously stops every live poller. After it returns
	// no tick fires, no cache is invalidated and no notification is
	// dispatched. Idempotent.
	StopAll()
}
