// Package cli implements the docflow command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docflow-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose enables debug logging to stderr.
var verbose bool

// Services wired in by main. Commands check for nil so the CLI degrades
// gracefully when a service could not be constructed.
var (
	documentService    driving.DocumentService
	approvalService    driving.ApprovalService
	integrationService driving.IntegrationService
	activityService    driving.ActivityService
	coordinator        driving.PollingCoordinator
	configStore        driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "docflow",
	Short: "Track documents through the processing pipeline",
	Long: `docflow is a client for the document-processing service.

Upload documents, watch them move through the async pipeline, work
approval queues, and dispatch processed documents to external systems.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Services bundles everything the CLI needs.
type Services struct {
	Document    driving.DocumentService
	Approval    driving.ApprovalService
	Integration driving.IntegrationService
	Activity    driving.ActivityService
	Coordinator driving.PollingCoordinator
	Config      driven.ConfigStore
}

// SetServices wires the services into the command tree.
func SetServices(s Services) {
	documentService = s.Document
	approvalService = s.Approval
	integrationService = s.Integration
	activityService = s.Activity
	coordinator = s.Coordinator
	configStore = s.Config
}

// SetVersion overrides the build version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
