package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

// DocumentStatusInput is the input schema for the document_status tool.
type DocumentStatusInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document to check"`
}

// DocumentStatusOutput is the output schema for the document_status tool.
type DocumentStatusOutput struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Status     string `json:"status"`
	Terminal   bool   `json:"terminal"`
	Summary    string `json:"summary,omitempty"`
}

// ListApprovalsInput is the input schema for the list_approvals tool.
type ListApprovalsInput struct {
	Status   string `json:"status,omitempty" jsonschema:"filter by status (pending, approved, rejected, delegated)"`
	MineOnly bool   `json:"mine_only,omitempty" jsonschema:"only approvals assigned to the caller"`
}

// ApprovalOutput represents one approval record.
type ApprovalOutput struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"`
	StepName   string `json:"step_name,omitempty"`
	Status     string `json:"status"`
	Priority   string `json:"priority,omitempty"`
	DueDate    string `json:"due_date,omitempty"`
}

// ListApprovalsOutput is the output schema for the list_approvals tool.
type ListApprovalsOutput struct {
	Approvals []ApprovalOutput `json:"approvals"`
	Count     int              `json:"count"`
}

// ApproveInput is the input schema for the approve_document tool.
type ApproveInput struct {
	ApprovalID string `json:"approval_id" jsonschema:"the approval record to approve"`
	Comments   string `json:"comments,omitempty" jsonschema:"optional decision comments"`
}

// RejectInput is the input schema for the reject_document tool.
type RejectInput struct {
	ApprovalID string `json:"approval_id" jsonschema:"the approval record to reject"`
	Comments   string `json:"comments" jsonschema:"rejection comments (required)"`
}

// DecisionOutput is the output schema for approve/reject tools.
type DecisionOutput struct {
	ApprovalID string `json:"approval_id"`
	DocumentID string `json:"document_id"`
	Status     string `json:"status"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "document_status",
		Description: "Check where a document is in the processing pipeline",
	}, s.handleDocumentStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_approvals",
		Description: "List approval records, optionally filtered by status",
	}, s.handleListApprovals)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "approve_document",
		Description: "Approve an approval record",
	}, s.handleApprove)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reject_document",
		Description: "Reject an approval record; comments are required",
	}, s.handleReject)
}

// handleDocumentStatus handles the document_status tool invocation.
func (s *Server) handleDocumentStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentStatusInput,
) (*mcp.CallToolResult, DocumentStatusOutput, error) {
	doc, err := s.ports.Document.Get(ctx, input.DocumentID)
	if err != nil {
		return nil, DocumentStatusOutput{}, err
	}

	return nil, DocumentStatusOutput{
		DocumentID: doc.ID,
		Filename:   doc.Filename,
		Status:     doc.Status.String(),
		Terminal:   doc.Status.IsTerminal(),
		Summary:    doc.Summary,
	}, nil
}

// handleListApprovals handles the list_approvals tool invocation.
func (s *Server) handleListApprovals(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListApprovalsInput,
) (*mcp.CallToolResult, ListApprovalsOutput, error) {
	if s.ports.Approval == nil {
		return nil, ListApprovalsOutput{}, errors.New("approval service not available")
	}

	records, err := s.ports.Approval.List(ctx, driven.ApprovalFilters{
		Status:   domain.ApprovalStatus(input.Status),
		MineOnly: input.MineOnly,
	})
	if err != nil {
		return nil, ListApprovalsOutput{}, err
	}

	now := time.Now()
	output := ListApprovalsOutput{
		Approvals: make([]ApprovalOutput, len(records)),
		Count:     len(records),
	}
	for i := range records {
		rec := &records[i]
		out := ApprovalOutput{
			ID:         rec.ID,
			DocumentID: rec.DocumentID,
			StepName:   rec.WorkflowStepName,
			Status:     rec.Status.String(),
			Priority:   string(rec.PriorityAt(now)),
		}
		if rec.DueDate != nil {
			out.DueDate = rec.DueDate.Format(time.RFC3339)
		}
		output.Approvals[i] = out
	}

	return nil, output, nil
}

// handleApprove handles the approve_document tool invocation.
func (s *Server) handleApprove(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ApproveInput,
) (*mcp.CallToolResult, DecisionOutput, error) {
	if s.ports.Approval == nil {
		return nil, DecisionOutput{}, errors.New("approval service not available")
	}

	record, err := s.ports.Approval.Approve(ctx, input.ApprovalID, input.Comments)
	if err != nil {
		return nil, DecisionOutput{}, err
	}

	return nil, DecisionOutput{
		ApprovalID: record.ID,
		DocumentID: record.DocumentID,
		Status:     record.Status.String(),
	}, nil
}

// handleReject handles the reject_document tool invocation. Comment
// validation happens in the approval service before any network call.
func (s *Server) handleReject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RejectInput,
) (*mcp.CallToolResult, DecisionOutput, error) {
	if s.ports.Approval == nil {
		return nil, DecisionOutput{}, errors.New("approval service not available")
	}

	record, err := s.ports.Approval.Reject(ctx, input.ApprovalID, input.Comments)
	if err != nil {
		return nil, DecisionOutput{}, err
	}

	return nil, DecisionOutput{
		ApprovalID: record.ID,
		DocumentID: record.DocumentID,
		Status:     record.Status.String(),
	}, nil
}
