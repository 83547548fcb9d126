package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

// DocumentAPI reads documents from the document-processing service and
// uploads new ones. The server owns document status; the client only
// observes it.
type DocumentAPI interface {
	// ListDocuments returns all documents, server-ordered.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// GetDocument retrieves one document's detail, including status,
	// extracted data and summary.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// UploadDocument uploads a file and returns the created document.
	UploadDocument(ctx context.Context, filename string, contents io.Reader) (*domain.Document, error)
}

// ApprovalFilters narrows an approval list read.
type ApprovalFilters struct {
	// Status restricts to one decision state when set.
	Status domain.ApprovalStatus

	// MineOnly restricts to records assigned to the caller.
	MineOnly bool
}

// ApprovalAPI reads and mutates approval records. Mutations are not
// retried automatically; a failed write needs an explicit user retry.
type ApprovalAPI interface {
	// ListApprovals returns approval records, server-ordered.
	ListApprovals(ctx context.Context, filters ApprovalFilters) ([]domain.ApprovalRecord, error)

	// Approve transitions a record to approved. Comments are optional.
	Approve(ctx context.Context, id, comments string) (*domain.ApprovalRecord, error)

	// Reject transitions a record to rejected.
	Reject(ctx context.Context, id, comments string) (*domain.ApprovalRecord, error)

	// Delegate reassigns a record to another approver.
	Delegate(ctx context.Context, id, delegatedToID, reason string) (*domain.ApprovalRecord, error)

	// RemoveApproval permanently deletes a record.
	RemoveApproval(ctx context.Context, id string) error
}

// IntegrationAPI manages integration configurations and dispatches
// documents to them.
type IntegrationAPI interface {
	// ListIntegrations returns all integration configs, active or not.
	ListIntegrations(ctx context.Context) ([]domain.IntegrationConfig, error)

	// CreateIntegration creates a new configuration.
	CreateIntegration(ctx context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error)

	// UpdateIntegration patches an existing configuration.
	UpdateIntegration(ctx context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error)

	// DeleteIntegration removes a configuration.
	DeleteIntegration(ctx context.Context, id string) error

	// TestConnection asks the server to probe the integration endpoint.
	TestConnection(ctx context.Context, id string) error

	// Dispatch sends a document to an integration and returns the
	// audit log the server created for the attempt.
	Dispatch(ctx context.Context, documentID, integrationID string) (*domain.IntegrationAuditLog, error)

	// ListAuditLogs returns dispatch audit logs, server-ordered.
	ListAuditLogs(ctx context.Context) ([]domain.IntegrationAuditLog, error)
}

// WorkflowAPI reads workflow execution status. Read-only collaborator.
type WorkflowAPI interface {
	// ListExecutions returns workflow executions keyed by document ID.
	ListExecutions(ctx context.Context) ([]domain.WorkflowExecution, error)
}
