package driven

import (
	"context"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

// ActivityStore persists the local activity trail: transitions the
// client observed and mutations it performed. Backed by SQLite so the
// trail survives restarts.
type ActivityStore interface {
	// Record appends one activity entry.
	Record(ctx context.Context, rec *domain.ActivityRecord) error

	// List returns recent entries, most recent first.
	List(ctx context.Context, limit int) ([]domain.ActivityRecord, error)

	// ListByDocument returns recent entries for one document,
	// most recent first.
	ListByDocument(ctx context.Context, documentID string, limit int) ([]domain.ActivityRecord, error)

	// Prune removes old entries beyond the retention limit, keeping
	// the most recent 'keep' entries.
	Prune(ctx context.Context, keep int) error

	// Close releases the underlying storage.
	Close() error
}
