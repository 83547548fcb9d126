package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

// Ensure ActivityStore implements the interface.
var _ driven.ActivityStore = (*ActivityStore)(nil)

// ActivityStore is an in-memory activity trail. The SQLite store is the
// real one; this exists for tests and for running without a data dir.
type ActivityStore struct {
	mu      sync.RWMutex
	records []domain.ActivityRecord
}

// NewActivityStore creates an empty in-memory activity store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{}
}

// Record appends one activity entry.
func (s *ActivityStore) Record(_ context.Context, rec *domain.ActivityRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *rec)
	return nil
}

// List returns recent entries, most recent first.
func (s *ActivityStore) List(_ context.Context, limit int) ([]domain.ActivityRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.ActivityRecord, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.records[i])
	}
	return result, nil
}

// ListByDocument returns recent entries for one document, most recent first.
func (s *ActivityStore) ListByDocument(_ context.Context, documentID string, limit int) ([]domain.ActivityRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.ActivityRecord, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(result) < limit; i-- {
		if s.records[i].DocumentID == documentID {
			result = append(result, s.records[i])
		}
	}
	return result, nil
}

// Prune keeps only the most recent entries.
func (s *ActivityStore) Prune(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		keep = 0
	}
	if len(s.records) > keep {
		s.records = append([]domain.ActivityRecord{}, s.records[len(s.records)-keep:]...)
	}
	return nil
}

// Close releases nothing for the memory store.
func (s *ActivityStore) Close() error {
	return nil
}
