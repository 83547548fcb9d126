package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

var approvalCmd = &cobra.Command{
	Use:   "approval",
	Short: "Work the approval queue",
	Long: `List pending approvals and act on them.

Rejections require comments. Delegation requires a target approver.
Removal permanently deletes the approval record and asks for
confirmation unless --yes is given.`,
}

var approvalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List approval records",
	RunE:  runApprovalList,
}

var approvalApproveCmd = &cobra.Command{
	Use:   "approve [approval-id]",
	Short: "Approve a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprovalApprove,
}

var approvalRejectCmd = &cobra.Command{
	Use:   "reject [approval-id]",
	Short: "Reject a record (comments required)",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprovalReject,
}

var approvalDelegateCmd = &cobra.Command{
	Use:   "delegate [approval-id]",
	Short: "Delegate a record to another approver",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprovalDelegate,
}

var approvalRemoveCmd = &cobra.Command{
	Use:   "remove [approval-id]",
	Short: "Permanently delete a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runApprovalRemove,
}

var approvalExecutionsCmd = &cobra.Command{
	Use:   "executions",
	Short: "Show workflow execution status",
	RunE:  runApprovalExecutions,
}

// Flags.
var (
	approvalListStatus  string
	approvalListMine    bool
	approvalComments    string
	approvalDelegateTo  string
	approvalDelegateWhy string
	approvalRemoveYes   bool
)

func init() {
	approvalListCmd.Flags().StringVar(
		&approvalListStatus, "status", "", "Filter by status (pending, approved, rejected, delegated)")
	approvalListCmd.Flags().BoolVar(
		&approvalListMine, "mine", false, "Only records assigned to me")

	approvalApproveCmd.Flags().StringVarP(
		&approvalComments, "comments", "c", "", "Optional decision comments")
	approvalRejectCmd.Flags().StringVarP(
		&approvalComments, "comments", "c", "", "Rejection comments (required)")

	approvalDelegateCmd.Flags().StringVar(
		&approvalDelegateTo, "to", "", "Approver to delegate to (required)")
	approvalDelegateCmd.Flags().StringVar(
		&approvalDelegateWhy, "reason", "", "Optional delegation reason")

	approvalRemoveCmd.Flags().BoolVarP(
		&approvalRemoveYes, "yes", "y", false, "Skip the confirmation prompt")

	approvalCmd.AddCommand(approvalListCmd)
	approvalCmd.AddCommand(approvalApproveCmd)
	approvalCmd.AddCommand(approvalRejectCmd)
	approvalCmd.AddCommand(approvalDelegateCmd)
	approvalCmd.AddCommand(approvalRemoveCmd)
	approvalCmd.AddCommand(approvalExecutionsCmd)
	rootCmd.AddCommand(approvalCmd)
}

func runApprovalList(cmd *cobra.Command, _ []string) error {
	if approvalService == nil {
		return errors.New("approval service not configured")
	}

	ctx := context.Background()

	records, err := approvalService.List(ctx, driven.ApprovalFilters{
		Status:   domain.ApprovalStatus(approvalListStatus),
		MineOnly: approvalListMine,
	})
	if err != nil {
		return fmt.Errorf("failed to list approvals: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No approval records found.")
		return nil
	}

	now := time.Now()
	cmd.Println("Approvals:")
	cmd.Println()
	for i := range records {
		rec := &records[i]
		cmd.Printf("  %s\n", rec.ID)
		cmd.Printf("    Document: %s\n", rec.DocumentID)
		if rec.WorkflowStepName != "" {
			cmd.Printf("    Step:     %s (level %d)\n", rec.WorkflowStepName, rec.ApprovalLevel)
		}
		cmd.Printf("    Status:   %s\n", rec.Status)
		if priority := rec.PriorityAt(now); priority != domain.PriorityNone {
			cmd.Printf("    Priority: %s (due %s)\n", priority, rec.DueDate.Format("2006-01-02 15:04"))
		}
		if rec.DelegatedTo != "" {
			cmd.Printf("    Delegated to: %s\n", rec.DelegatedTo)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d records\n", len(records))
	return nil
}

func runApprovalApprove(cmd *cobra.Command, args []string) error {
	if approvalService == nil {
		return errors.New("approval service not configured")
	}

	record, err := approvalService.Approve(context.Background(), args[0], approvalComments)
	if err != nil {
		return fmt.Errorf("failed to approve: %w", err)
	}

	cmd.Printf("Approved %s (document %s).\n", record.ID, record.DocumentID)
	return nil
}

func runApprovalReject(cmd *cobra.Command, args []string) error {
	if approvalService == nil {
		return errors.New("approval service not configured")
	}

	record, err := approvalService.Reject(context.Background(), args[0], approvalComments)
	if err != nil {
		if errors.Is(err, domain.ErrCommentsRequired) {
			return errors.New("comments are required when rejecting: pass --comments")
		}
		return fmt.Errorf("failed to reject: %w", err)
	}

	cmd.Printf("Rejected %s (document %s).\n", record.ID, record.DocumentID)
	return nil
}

func runApprovalDelegate(cmd *cobra.Command, args []string) error {
	if approvalService == nil {
		return errors.New("approval service not configured")
	}

	record, err := approvalService.Delegate(context.Background(), args[0], approvalDelegateTo, approvalDelegateWhy)
	if err != nil {
		if errors.Is(err, domain.ErrDelegateRequired) {
			return errors.New("a delegation target is required: pass --to")
		}
		return fmt.Errorf("failed to delegate: %w", err)
	}

	cmd.Printf("Delegated %s to %s.\n", record.ID, record.DelegatedTo)
	return nil
}

func runApprovalRemove(cmd *cobra.Command, args []string) error {
	if approvalService == nil {
		return errors.New("approval service not configured")
	}

	approvalID := args[0]

	if !approvalRemoveYes {
		cmd.Printf("Permanently delete approval %s? This cannot be undone. [y/N]: ", approvalID)
		reader := bufio.NewReader(cmd.InOrStdin())
		input, _ := reader.ReadString('\n') //nolint:errcheck // CLI prompt, empty input declines
		if !strings.EqualFold(strings.TrimSpace(input), "y") {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := approvalService.Remove(context.Background(), approvalID); err != nil {
		return fmt.Errorf("failed to remove approval: %w", err)
	}

	cmd.Printf("Removed approval %s.\n", approvalID)
	return nil
}

func runApprovalExecutions(cmd *cobra.Command, _ []string) error {
	if approvalService == nil {
		return errors.New("approval service not configured")
	}

	executions, err := approvalService.Executions(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list workflow executions: %w", err)
	}

	if len(executions) == 0 {
		cmd.Println("No workflow executions found.")
		return nil
	}

	cmd.Println("Workflow executions:")
	cmd.Println()
	for i := range executions {
		exec := &executions[i]
		cmd.Printf("  %s: %s\n", exec.DocumentID, exec.WorkflowName)
		cmd.Printf("    Status: %s\n", exec.Status)
		if exec.CurrentStep != "" {
			cmd.Printf("    Step:   %s\n", exec.CurrentStep)
		}
		cmd.Println()
	}

	return nil
}
