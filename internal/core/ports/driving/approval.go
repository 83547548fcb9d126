package driving

import (
	"context"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

// ApprovalService drives the approval workflow: list reads with bounded
// retry, and the four mutations with client-side validation. Mutations
// are never retried automatically - a failed write requires an explicit
// user-initiated retry, so a flaky network cannot double-approve.
type ApprovalService interface {
	// List returns approval records matching the filters. Transient
	// read failures are retried with bounded exponential backoff.
	List(ctx context.Context, filters driven.ApprovalFilters) ([]domain.ApprovalRecord, error)

	// Approve transitions the record to approved. Comments optional.
	Approve(ctx context.Context, id, comments string) (*domain.ApprovalRecord, error)

	// Reject transitions the record to rejected. Comments are required:
	// empty or whitespace-only comments fail with
	// domain.ErrCommentsRequired before any network call.
	Reject(ctx context.Context, id, comments string) (*domain.ApprovalRecord, error)

	// Delegate reassigns the record. The target is required: a blank
	// delegatedToID fails with domain.ErrDelegateRequired before any
	// network call. Reason is optional.
	Delegate(ctx context.Context, id, delegatedToID, reason string) (*domain.ApprovalRecord, error)

	// Remove permanently deletes the record. Irreversible; callers
	// must obtain explicit user confirmation first.
	Remove(ctx context.Context, id string) error

	// Executions returns workflow execution status for display,
	// reading through the workflow-executions cache.
	Executions(ctx context.Context) ([]domain.WorkflowExecution, error)
}
