package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docflow-cli/internal/logger"
)

// Ensure ApprovalService implements the interface.
var _ driving.ApprovalService = (*ApprovalService)(nil)

// ApprovalService drives the approval workflow. Validation runs before
// any network call; successful mutations invalidate the approvals-list
// and workflow-executions caches; failed mutations leave local state
// untouched because no optimistic update is ever applied.
type ApprovalService struct {
	api      driven.ApprovalAPI
	workflow driven.WorkflowAPI
	cache    driven.CacheStore
	activity driven.ActivityStore
}

// NewApprovalService creates a new approval service. The activity store
// may be nil.
func NewApprovalService(
	api driven.ApprovalAPI,
	workflow driven.WorkflowAPI,
	cache driven.CacheStore,
	activity driven.ActivityStore,
) *ApprovalService {
	return &ApprovalService{
		api:      api,
		workflow: workflow,
		cache:    cache,
		activity: activity,
	}
}

// List returns approval records matching the filters, server-ordered.
// Transient failures are retried with bounded exponential backoff.
func (s *ApprovalService) List(ctx context.Context, filters driven.ApprovalFilters) ([]domain.ApprovalRecord, error) {
	if filters == (driven.ApprovalFilters{}) {
		if cached, _, ok := s.cache.Get(domain.CacheApprovalsList); ok {
			if records, valid := cached.([]domain.ApprovalRecord); valid {
				return records, nil
			}
		}
	}

	records, err := withReadRetry(ctx, "approvals list", func(ctx context.Context) ([]domain.ApprovalRecord, error) {
		return s.api.ListApprovals(ctx, filters)
	})
	if err != nil {
		return nil, fmt.Errorf("list approvals: %w", err)
	}

	if filters == (driven.ApprovalFilters{}) {
		s.cache.Put(domain.CacheApprovalsList, records)
	}
	return records, nil
}

// Approve transitions the record to approved. Comments are optional.
func (s *ApprovalService) Approve(ctx context.Context, id, comments string) (*domain.ApprovalRecord, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}

	record, err := s.api.Approve(ctx, id, comments)
	if err != nil {
		return nil, fmt.Errorf("approve %s: %w", id, err)
	}

	s.afterMutation(record.DocumentID, "approved")
	return record, nil
}

// Reject transitions the record to rejected. Comments are required:
// empty or whitespace-only comments fail locally, no network call.
func (s *ApprovalService) Reject(ctx context.Context, id, comments string) (*domain.ApprovalRecord, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(comments) == "" {
		return nil, domain.ErrCommentsRequired
	}

	record, err := s.api.Reject(ctx, id, comments)
	if err != nil {
		return nil, fmt.Errorf("reject %s: %w", id, err)
	}

	s.afterMutation(record.DocumentID, "rejected")
	return record, nil
}

// Delegate reassigns the record. The target approver is required:
// a blank target fails locally, no network call.
func (s *ApprovalService) Delegate(ctx context.Context, id, delegatedToID, reason string) (*domain.ApprovalRecord, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(delegatedToID) == "" {
		return nil, domain.ErrDelegateRequired
	}

	record, err := s.api.Delegate(ctx, id, delegatedToID, reason)
	if err != nil {
		return nil, fmt.Errorf("delegate %s: %w", id, err)
	}

	s.afterMutation(record.DocumentID, "delegated to "+delegatedToID)
	return record, nil
}

// Remove permanently deletes the record. Irreversible; the caller must
// have obtained explicit user confirmation.
func (s *ApprovalService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}

	if err := s.api.RemoveApproval(ctx, id); err != nil {
		return fmt.Errorf("remove approval %s: %w", id, err)
	}

	s.afterMutation("", "removed "+id)
	return nil
}

// Executions returns workflow execution status through its cache.
func (s *ApprovalService) Executions(ctx context.Context) ([]domain.WorkflowExecution, error) {
	if cached, _, ok := s.cache.Get(domain.CacheWorkflowExecutions); ok {
		if execs, valid := cached.([]domain.WorkflowExecution); valid {
			return execs, nil
		}
	}

	execs, err := withReadRetry(ctx, "workflow executions", func(ctx context.Context) ([]domain.WorkflowExecution, error) {
		return s.workflow.ListExecutions(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list workflow executions: %w", err)
	}

	s.cache.Put(domain.CacheWorkflowExecutions, execs)
	return execs, nil
}

// afterMutation applies the invalidation contract for approval writes:
// the approvals list changed, and downstream automation keyed by the
// document may have advanced.
func (s *ApprovalService) afterMutation(documentID, detail string) {
	s.cache.Invalidate(domain.CacheApprovalsList)
	s.cache.Invalidate(domain.CacheWorkflowExecutions)

	if s.activity == nil {
		return
	}
	rec := &domain.ActivityRecord{
		ID:         uuid.NewString(),
		Kind:       domain.ActivityApproval,
		DocumentID: documentID,
		Detail:     detail,
		OccurredAt: nowFunc(),
	}
	if err := s.activity.Record(context.Background(), rec); err != nil {
		logger.Warn("approval activity: %v", err)
	}
}
