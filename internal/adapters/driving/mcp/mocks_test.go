package mcp

import (
	"context"
	"io"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
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

// mockApprovalService is a mock implementation of driving.ApprovalService.
type mockApprovalService struct {
	records []domain.ApprovalRecord
	record  *domain.ApprovalRecord
	err     error

	lastFilters  driven.ApprovalFilters
	lastComments string
}

func (m *mockApprovalService) List(_ context.Context, filters driven.ApprovalFilters) ([]domain.ApprovalRecord, error) {
	m.lastFilters = filters
	return m.records, m.err
}

func (m *mockApprovalService) Approve(_ context.Context, _, comments string) (*domain.ApprovalRecord, error) {
	m.lastComments = comments
	return m.record, m.err
}

func (m *mockApprovalService) Reject(_ context.Context, _, comments string) (*domain.ApprovalRecord, error) {
	m.lastComments = comments
	if comments == "" {
		return nil, domain.ErrCommentsRequired
	}
	return m.record, m.err
}

func (m *mockApprovalService) Delegate(_ context.Context, _, _, _ string) (*domain.ApprovalRecord, error) {
	return m.record, m.err
}

func (m *mockApprovalService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockApprovalService) Executions(_ context.Context) ([]domain.WorkflowExecution, error) {
	return nil, m.err
}

// mockIntegrationService is a mock implementation of driving.IntegrationService.
type mockIntegrationService struct {
	configs []domain.IntegrationConfig
	logs    []domain.IntegrationAuditLog
	err     error
}

func (m *mockIntegrationService) ListActive(_ context.Context) ([]domain.IntegrationConfig, error) {
	return m.configs, m.err
}

func (m *mockIntegrationService) Dispatch(_ context.Context, _, _ string) (*domain.IntegrationAuditLog, error) {
	return nil, m.err
}

func (m *mockIntegrationService) TestConnection(_ context.Context, _ string) error {
	return m.err
}

func (m *mockIntegrationService) Create(_ context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error) {
	return cfg, m.err
}

func (m *mockIntegrationService) Update(_ context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error) {
	return cfg, m.err
}

func (m *mockIntegrationService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockIntegrationService) Logs(_ context.Context) ([]domain.IntegrationAuditLog, error) {
	return m.logs, m.err
}
