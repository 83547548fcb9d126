package services

import (
	"context"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driving"
)

// Ensure ActivityService implements the interface.
var _ driving.ActivityService = (*ActivityService)(nil)

// defaultActivityLimit is used when a caller asks for zero entries.
const defaultActivityLimit = 50

// ActivityService exposes the local activity trail for display.
type ActivityService struct {
	store driven.ActivityStore
}

// NewActivityService creates a new activity service.
func NewActivityService(store driven.ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// Recent returns recent activity entries, most recent first.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]domain.ActivityRecord, error) {
	if s.store == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.store.List(ctx, limit)
}

// ForDocument returns recent entries for one document.
func (s *ActivityService) ForDocument(ctx context.Context, documentID string, limit int) ([]domain.ActivityRecord, error) {
	if s.store == nil {
		return nil, nil
	}
	if documentID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.store.ListByDocument(ctx, documentID, limit)
}
