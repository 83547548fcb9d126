package driving

import (
	"context"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

// ActivityService exposes the local activity trail for display.
type ActivityService interface {
	// Recent returns recent activity entries, most recent first.
	Recent(ctx context.Context, limit int) ([]domain.ActivityRecord, error)

	// ForDocument returns recent entries for one document.
	ForDocument(ctx context.Context, documentID string, limit int) ([]domain.ActivityRecord, error)
}
