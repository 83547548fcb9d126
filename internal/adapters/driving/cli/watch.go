package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docflow-cli/internal/adapters/driving/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view of documents moving through the pipeline",
	Long: `Open a live monitor of every document still being processed.

Each in-flight document gets its own status poller; the monitor shows
which documents are watched and surfaces transitions as they happen.
All pollers stop when the monitor exits.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}
	if coordinator == nil {
		return errors.New("polling coordinator not configured")
	}

	app, err := tui.NewApp(&tui.Ports{
		Document: documentService,
		Poller:   coordinator,
		Activity: activityService,
	})
	if err != nil {
		return err
	}

	// Leaving the monitor must leave nothing polling in the background.
	defer coordinator.StopAll()

	return app.Run()
}
