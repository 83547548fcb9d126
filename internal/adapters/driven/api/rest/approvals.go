package rest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

// Ensure Client implements the approval port.
var _ driven.ApprovalAPI = (*Client)(nil)

// approvalDTO is the wire format for an approval record.
type approvalDTO struct {
	ID               string     `json:"id"`
	DocumentID       string     `json:"document_id"`
	WorkflowStepName string     `json:"workflow_step_name"`
	ApprovalLevel    int        `json:"approval_level"`
	Status           string     `json:"status"`
	AssignedAt       time.Time  `json:"assigned_at"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Comments         string     `json:"comments,omitempty"`
	DelegatedTo      string     `json:"delegated_to,omitempty"`
	DelegationReason string     `json:"delegation_reason,omitempty"`
}

func (a approvalDTO) toDomain() domain.ApprovalRecord {
	return domain.ApprovalRecord{
		ID:               a.ID,
		DocumentID:       a.DocumentID,
		WorkflowStepName: a.WorkflowStepName,
		ApprovalLevel:    a.ApprovalLevel,
		Status:           domain.ApprovalStatus(a.Status),
		AssignedAt:       a.AssignedAt,
		DueDate:          a.DueDate,
		Comments:         a.Comments,
		DelegatedTo:      a.DelegatedTo,
		DelegationReason: a.DelegationReason,
	}
}

// commentsBody is the approve/reject request body.
type commentsBody struct {
	Comments string `json:"comments,omitempty"`
}

// delegateBody is the delegate request body.
type delegateBody struct {
	DelegatedToID    string `json:"delegated_to_id"`
	DelegationReason string `json:"delegation_reason,omitempty"`
}

// ListApprovals returns approval records, optionally filtered by status
// and ownership.
func (c *Client) ListApprovals(ctx context.Context, filters driven.ApprovalFilters) ([]domain.ApprovalRecord, error) {
	query := url.Values{}
	if filters.Status != "" {
		query.Set("status", filters.Status.String())
	}
	if filters.MineOnly {
		query.Set("my_approvals", "true")
	}

	path := "/approvals/"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var dtos []approvalDTO
	if err := c.get(ctx, path, &dtos); err != nil {
		return nil, fmt.Errorf("list approvals: %w", err)
	}

	records := make([]domain.ApprovalRecord, len(dtos))
	for i, dto := range dtos {
		records[i] = dto.toDomain()
	}
	return records, nil
}

// Approve transitions a record to approved.
func (c *Client) Approve(ctx context.Context, id, comments string) (*domain.ApprovalRecord, error) {
	return c.approvalAction(ctx, id, "approve", commentsBody{Comments: comments})
}

// Reject transitions a record to rejected. The service layer guarantees
// comments are non-blank before this is called.
func (c *Client) Reject(ctx context.Context, id, comments string) (*domain.ApprovalRecord, error) {
	return c.approvalAction(ctx, id, "reject", commentsBody{Comments: comments})
}

// Delegate reassigns a record to another approver.
func (c *Client) Delegate(ctx context.Context, id, delegatedToID, reason string) (*domain.ApprovalRecord, error) {
	return c.approvalAction(ctx, id, "delegate", delegateBody{DelegatedToID: delegatedToID, DelegationReason: reason})
}

func (c *Client) approvalAction(ctx context.Context, id, action string, body any) (*domain.ApprovalRecord, error) {
	var dto approvalDTO
	path := "/approvals/" + url.PathEscape(id) + "/" + action + "/"
	if err := c.postJSON(ctx, path, body, &dto); err != nil {
		return nil, fmt.Errorf("%s approval %s: %w", action, id, err)
	}

	record := dto.toDomain()
	return &record, nil
}

// RemoveApproval permanently deletes a record.
func (c *Client) RemoveApproval(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/approvals/"+url.PathEscape(id)+"/"); err != nil {
		return fmt.Errorf("remove approval %s: %w", id, err)
	}
	return nil
}
