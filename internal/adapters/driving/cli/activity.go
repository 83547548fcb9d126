package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the local activity trail",
	Long: `Show transitions, approvals and dispatches this client observed.

The trail is local history, not server state: it records what docflow
saw and did on this machine.`,
	RunE: runActivity,
}

// Flags.
var (
	activityDocument string
	activityLimit    int
)

func init() {
	activityCmd.Flags().StringVar(&activityDocument, "document", "", "Only entries for one document")
	activityCmd.Flags().IntVar(&activityLimit, "limit", 20, "Maximum entries to show")
	rootCmd.AddCommand(activityCmd)
}

func runActivity(cmd *cobra.Command, _ []string) error {
	if activityService == nil {
		return errors.New("activity service not configured")
	}

	ctx := context.Background()

	var entries []domain.ActivityRecord
	var err error
	if activityDocument != "" {
		entries, err = activityService.ForDocument(ctx, activityDocument, activityLimit)
	} else {
		entries, err = activityService.Recent(ctx, activityLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to list activity: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No activity recorded yet.")
		return nil
	}

	cmd.Println("Recent activity:")
	cmd.Println()
	for i := range entries {
		rec := &entries[i]
		cmd.Printf("  %s  [%s]  %s\n", rec.OccurredAt.Format("2006-01-02 15:04:05"), rec.Kind, rec.DocumentID)
		if rec.Detail != "" {
			cmd.Printf("      %s\n", rec.Detail)
		}
	}

	return nil
}
