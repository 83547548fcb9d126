package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

// setupTestServices wires mock services into the command tree and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldDocument := documentService
	oldApproval := approvalService
	oldIntegration := integrationService
	oldActivity := activityService
	oldCoordinator := coordinator
	oldConfig := configStore

	documentService = &mockDocumentService{}
	approvalService = &mockApprovalService{}
	integrationService = &mockIntegrationService{}
	activityService = &mockActivityService{}
	coordinator = &mockCoordinator{}
	configStore = newMockConfigStore()

	return func() {
		documentService = oldDocument
		approvalService = oldApproval
		integrationService = oldIntegration
		activityService = oldActivity
		coordinator = oldCoordinator
		configStore = oldConfig
	}
}

// mockDocumentService returns a fixed document set.
type mockDocumentService struct{}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return []domain.Document{
		{
			ID:         "doc-1",
			Filename:   "invoice.pdf",
			Status:     domain.DocumentStatusProcessing,
			UploadedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:         "doc-2",
			Filename:   "report.pdf",
			Status:     domain.DocumentStatusProcessed,
			UploadedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}, nil
}

func (m *mockDocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	docs, _ := m.List(ctx) //nolint:errcheck // fixed set
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDocumentService) Upload(_ context.Context, filename string, _ io.Reader) (*domain.Document, error) {
	return &domain.Document{
		ID:       "doc-new",
		Filename: filename,
		Status:   domain.DocumentStatusQueued,
	}, nil
}

func (m *mockDocumentService) Processing(ctx context.Context) ([]domain.Document, error) {
	docs, _ := m.List(ctx) //nolint:errcheck // fixed set
	var processing []domain.Document
	for i := range docs {
		if docs[i].Status == domain.DocumentStatusProcessing {
			processing = append(processing, docs[i])
		}
	}
	return processing, nil
}

// mockDocumentServiceEmpty returns no documents.
type mockDocumentServiceEmpty struct {
	mockDocumentService
}

func (m *mockDocumentServiceEmpty) List(_ context.Context) ([]domain.Document, error) {
	return nil, nil
}

// mockDocumentServiceError fails every call.
type mockDocumentServiceError struct{}

func (m *mockDocumentServiceError) List(_ context.Context) ([]domain.Document, error) {
	return nil, errors.New("service unavailable")
}

func (m *mockDocumentServiceError) Get(_ context.Context, _ string) (*domain.Document, error) {
	return nil, errors.New("service unavailable")
}

func (m *mockDocumentServiceError) Upload(_ context.Context, _ string, _ io.Reader) (*domain.Document, error) {
	return nil, errors.New("service unavailable")
}

func (m *mockDocumentServiceError) Processing(_ context.Context) ([]domain.Document, error) {
	return nil, errors.New("service unavailable")
}

// mockApprovalService mirrors the approval service's client-side
// validation so commands exercise the same error paths.
type mockApprovalService struct {
	removed []string
}

func (m *mockApprovalService) List(_ context.Context, filters driven.ApprovalFilters) ([]domain.ApprovalRecord, error) {
	due := time.Now().Add(2 * time.Hour)
	records := []domain.ApprovalRecord{
		{
			ID:               "appr-1",
			DocumentID:       "doc-1",
			WorkflowStepName: "Finance Review",
			ApprovalLevel:    1,
			Status:           domain.ApprovalStatusPending,
			AssignedAt:       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			DueDate:          &due,
		},
		{
			ID:            "appr-2",
			DocumentID:    "doc-2",
			ApprovalLevel: 1,
			Status:        domain.ApprovalStatusApproved,
		},
	}

	if filters.Status == "" {
		return records, nil
	}
	var filtered []domain.ApprovalRecord
	for i := range records {
		if records[i].Status == filters.Status {
			filtered = append(filtered, records[i])
		}
	}
	return filtered, nil
}

func (m *mockApprovalService) Approve(_ context.Context, id, comments string) (*domain.ApprovalRecord, error) {
	return &domain.ApprovalRecord{
		ID:            id,
		DocumentID:    "doc-1",
		ApprovalLevel: 1,
		Status:        domain.ApprovalStatusApproved,
		Comments:      comments,
	}, nil
}

func (m *mockApprovalService) Reject(_ context.Context, id, comments string) (*domain.ApprovalRecord, error) {
	if strings.TrimSpace(comments) == "" {
		return nil, domain.ErrCommentsRequired
	}
	return &domain.ApprovalRecord{
		ID:            id,
		DocumentID:    "doc-1",
		ApprovalLevel: 1,
		Status:        domain.ApprovalStatusRejected,
		Comments:      comments,
	}, nil
}

func (m *mockApprovalService) Delegate(_ context.Context, id, delegatedToID, reason string) (*domain.ApprovalRecord, error) {
	if strings.TrimSpace(delegatedToID) == "" {
		return nil, domain.ErrDelegateRequired
	}
	return &domain.ApprovalRecord{
		ID:               id,
		DocumentID:       "doc-1",
		ApprovalLevel:    1,
		Status:           domain.ApprovalStatusDelegated,
		DelegatedTo:      delegatedToID,
		DelegationReason: reason,
	}, nil
}

func (m *mockApprovalService) Remove(_ context.Context, id string) error {
	m.removed = append(m.removed, id)
	return nil
}

func (m *mockApprovalService) Executions(_ context.Context) ([]domain.WorkflowExecution, error) {
	return []domain.WorkflowExecution{
		{
			DocumentID:   "doc-1",
			WorkflowName: "Invoice Approval",
			Status:       "in_progress",
			CurrentStep:  "Finance Review",
		},
	}, nil
}

// mockIntegrationService returns fixed integration data.
type mockIntegrationService struct{}

func (m *mockIntegrationService) ListActive(_ context.Context) ([]domain.IntegrationConfig, error) {
	return []domain.IntegrationConfig{
		{
			ID:          "int-1",
			Name:        "ERP Production",
			Type:        "erp",
			EndpointURL: "https://erp.example.com/api",
			Status:      domain.IntegrationStatusActive,
		},
	}, nil
}

func (m *mockIntegrationService) Dispatch(_ context.Context, documentID, integrationID string) (*domain.IntegrationAuditLog, error) {
	return &domain.IntegrationAuditLog{
		ID:                  "log-new",
		DocumentID:          documentID,
		IntegrationConfigID: integrationID,
		Status:              domain.AuditStatusPending,
		StartedAt:           time.Now(),
	}, nil
}

func (m *mockIntegrationService) TestConnection(_ context.Context, _ string) error {
	return nil
}

func (m *mockIntegrationService) Create(_ context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error) {
	created := *cfg
	created.ID = "int-new"
	return &created, nil
}

func (m *mockIntegrationService) Update(_ context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error) {
	return cfg, nil
}

func (m *mockIntegrationService) Delete(_ context.Context, _ string) error {
	return nil
}

func (m *mockIntegrationService) Logs(_ context.Context) ([]domain.IntegrationAuditLog, error) {
	return []domain.IntegrationAuditLog{
		{
			ID:                  "log-1",
			DocumentID:          "doc-2",
			IntegrationConfigID: "int-1",
			Status:              domain.AuditStatusSuccess,
			StartedAt:           time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
		},
	}, nil
}

// mockIntegrationServiceNotDispatchable rejects every dispatch locally.
type mockIntegrationServiceNotDispatchable struct {
	mockIntegrationService
}

func (m *mockIntegrationServiceNotDispatchable) Dispatch(_ context.Context, _, _ string) (*domain.IntegrationAuditLog, error) {
	return nil, domain.ErrNotDispatchable
}

// mockActivityService returns a fixed activity trail.
type mockActivityService struct{}

func (m *mockActivityService) Recent(_ context.Context, _ int) ([]domain.ActivityRecord, error) {
	return []domain.ActivityRecord{
		{
			ID:         "act-1",
			Kind:       domain.ActivityTransition,
			DocumentID: "doc-2",
			Detail:     "report.pdf finished processing",
			OccurredAt: time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC),
		},
	}, nil
}

func (m *mockActivityService) ForDocument(_ context.Context, documentID string, _ int) ([]domain.ActivityRecord, error) {
	return []domain.ActivityRecord{
		{
			ID:         "act-2",
			Kind:       domain.ActivityApproval,
			DocumentID: documentID,
			Detail:     "approved appr-1",
			OccurredAt: time.Date(2026, 3, 1, 10, 6, 0, 0, time.UTC),
		},
	}, nil
}

// mockCoordinator is a no-op polling coordinator.
type mockCoordinator struct {
	stopped bool
}

func (m *mockCoordinator) Refresh(_ context.Context, _ []domain.Document) {}

func (m *mockCoordinator) Watching(_ string) bool { return false }

func (m *mockCoordinator) ActiveCount() int { return 0 }

func (m *mockCoordinator) StopAll() { m.stopped = true }

// mockConfigStore is a map-backed config store.
type mockConfigStore struct {
	values map[string]any
	saved  bool
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if v, ok := m.values[key].(string); ok {
		return v
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	if v, ok := m.values[key].(int); ok {
		return v
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return false
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.values[key] = value
	m.saved = true
	return nil
}

func (m *mockConfigStore) Save() error { m.saved = true; return nil }

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/tmp/docflow-test/config.toml" }
