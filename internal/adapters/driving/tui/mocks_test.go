package tui

import (
	"context"
	"io"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	err       error
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Upload(_ context.Context, _ string, _ io.Reader) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Processing(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

// mockCoordinator is a mock implementation of driving.PollingCoordinator.
type mockCoordinator struct {
	watched      map[string]bool
	refreshCalls int
	stopped      bool
}

func (m *mockCoordinator) Refresh(_ context.Context, docs []domain.Document) {
	m.refreshCalls++
	if m.watched == nil {
		m.watched = make(map[string]bool)
	}
	for i := range docs {
		m.watched[docs[i].ID] = true
	}
}

func (m *mockCoordinator) Watching(documentID string) bool {
	return m.watched[documentID]
}

func (m *mockCoordinator) ActiveCount() int {
	return len(m.watched)
}

func (m *mockCoordinator) StopAll() {
	m.stopped = true
	m.watched = nil
}

// mockActivityService is a mock implementation of driving.ActivityService.
type mockActivityService struct {
	records []domain.ActivityRecord
	err     error
}

func (m *mockActivityService) Recent(_ context.Context, _ int) ([]domain.ActivityRecord, error) {
	return m.records, m.err
}

func (m *mockActivityService) ForDocument(_ context.Context, _ string, _ int) ([]domain.ActivityRecord, error) {
	return m.records, m.err
}
