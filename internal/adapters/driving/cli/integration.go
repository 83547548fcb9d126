package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

var integrationCmd = &cobra.Command{
	Use:   "integration",
	Short: "Manage external integrations and dispatch documents",
	Long: `Configure external systems and send processed documents to them.

Only active integrations accept dispatches, and only fully processed
documents can be sent.`,
}

var integrationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active integrations",
	RunE:  runIntegrationList,
}

var integrationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an integration configuration",
	RunE:  runIntegrationAdd,
}

var integrationUpdateCmd = &cobra.Command{
	Use:   "update [integration-id]",
	Short: "Update an integration configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntegrationUpdate,
}

var integrationRemoveCmd = &cobra.Command{
	Use:   "remove [integration-id]",
	Short: "Delete an integration configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntegrationRemove,
}

var integrationTestCmd = &cobra.Command{
	Use:   "test [integration-id]",
	Short: "Test connectivity to an integration endpoint",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntegrationTest,
}

var integrationSendCmd = &cobra.Command{
	Use:   "send [doc-id] [integration-id]",
	Short: "Send a processed document to an integration",
	Args:  cobra.ExactArgs(2),
	RunE:  runIntegrationSend,
}

var integrationLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show dispatch audit logs",
	RunE:  runIntegrationLogs,
}

// Flags for add/update.
var (
	integrationName        string
	integrationType        string
	integrationEndpoint    string
	integrationAPIKey      string
	integrationDescription string
	integrationInactive    bool
)

func addIntegrationConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&integrationName, "name", "", "Integration name")
	cmd.Flags().StringVar(&integrationType, "type", "", "Integration type (e.g. erp, crm)")
	cmd.Flags().StringVar(&integrationEndpoint, "endpoint", "", "Endpoint URL")
	cmd.Flags().StringVar(&integrationAPIKey, "api-key", "", "API key for the external system")
	cmd.Flags().StringVar(&integrationDescription, "description", "", "Optional description")
	cmd.Flags().BoolVar(&integrationInactive, "inactive", false, "Create or mark as inactive")
}

func init() {
	addIntegrationConfigFlags(integrationAddCmd)
	addIntegrationConfigFlags(integrationUpdateCmd)

	integrationCmd.AddCommand(integrationListCmd)
	integrationCmd.AddCommand(integrationAddCmd)
	integrationCmd.AddCommand(integrationUpdateCmd)
	integrationCmd.AddCommand(integrationRemoveCmd)
	integrationCmd.AddCommand(integrationTestCmd)
	integrationCmd.AddCommand(integrationSendCmd)
	integrationCmd.AddCommand(integrationLogsCmd)
	rootCmd.AddCommand(integrationCmd)
}

func runIntegrationList(cmd *cobra.Command, _ []string) error {
	if integrationService == nil {
		return errors.New("integration service not configured")
	}

	configs, err := integrationService.ListActive(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list integrations: %w", err)
	}

	if len(configs) == 0 {
		cmd.Println("No active integrations.")
		cmd.Println("Add one with: docflow integration add")
		return nil
	}

	cmd.Println("Active integrations:")
	cmd.Println()
	for i := range configs {
		cfg := &configs[i]
		cmd.Printf("  %s\n", cfg.ID)
		cmd.Printf("    Name:     %s (%s)\n", cfg.Name, cfg.Type)
		cmd.Printf("    Endpoint: %s\n", cfg.EndpointURL)
		if cfg.Description != "" {
			cmd.Printf("    Notes:    %s\n", cfg.Description)
		}
		cmd.Println()
	}

	return nil
}

func runIntegrationAdd(cmd *cobra.Command, _ []string) error {
	if integrationService == nil {
		return errors.New("integration service not configured")
	}

	status := domain.IntegrationStatusActive
	if integrationInactive {
		status = domain.IntegrationStatusInactive
	}

	created, err := integrationService.Create(context.Background(), &domain.IntegrationConfig{
		Name:        integrationName,
		Type:        integrationType,
		EndpointURL: integrationEndpoint,
		Status:      status,
		APIKey:      integrationAPIKey,
		Description: integrationDescription,
	})
	if err != nil {
		return fmt.Errorf("failed to add integration: %w", err)
	}

	cmd.Printf("Added integration %s (%s).\n", created.ID, created.Name)
	return nil
}

func runIntegrationUpdate(cmd *cobra.Command, args []string) error {
	if integrationService == nil {
		return errors.New("integration service not configured")
	}

	status := domain.IntegrationStatusActive
	if integrationInactive {
		status = domain.IntegrationStatusInactive
	}

	updated, err := integrationService.Update(context.Background(), &domain.IntegrationConfig{
		ID:          args[0],
		Name:        integrationName,
		Type:        integrationType,
		EndpointURL: integrationEndpoint,
		Status:      status,
		APIKey:      integrationAPIKey,
		Description: integrationDescription,
	})
	if err != nil {
		return fmt.Errorf("failed to update integration: %w", err)
	}

	cmd.Printf("Updated integration %s.\n", updated.ID)
	return nil
}

func runIntegrationRemove(cmd *cobra.Command, args []string) error {
	if integrationService == nil {
		return errors.New("integration service not configured")
	}

	if err := integrationService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove integration: %w", err)
	}

	cmd.Printf("Removed integration %s.\n", args[0])
	return nil
}

func runIntegrationTest(cmd *cobra.Command, args []string) error {
	if integrationService == nil {
		return errors.New("integration service not configured")
	}

	cmd.Printf("Testing connection to %s... ", args[0])
	if err := integrationService.TestConnection(context.Background(), args[0]); err != nil {
		cmd.Println("FAILED")
		return fmt.Errorf("connection test failed: %w", err)
	}

	cmd.Println("OK")
	return nil
}

func runIntegrationSend(cmd *cobra.Command, args []string) error {
	if integrationService == nil {
		return errors.New("integration service not configured")
	}

	docID, integrationID := args[0], args[1]

	log, err := integrationService.Dispatch(context.Background(), docID, integrationID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotDispatchable):
			return errors.New("document must be fully processed before it can be sent")
		case errors.Is(err, domain.ErrInactiveIntegration):
			return errors.New("integration is not active")
		}
		return fmt.Errorf("failed to send document: %w", err)
	}

	cmd.Printf("Sent document %s to integration %s (audit log %s, status %s).\n",
		docID, integrationID, log.ID, log.Status)
	return nil
}

func runIntegrationLogs(cmd *cobra.Command, _ []string) error {
	if integrationService == nil {
		return errors.New("integration service not configured")
	}

	logs, err := integrationService.Logs(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list audit logs: %w", err)
	}

	if len(logs) == 0 {
		cmd.Println("No dispatch audit logs.")
		return nil
	}

	cmd.Println("Dispatch audit logs:")
	cmd.Println()
	for i := range logs {
		log := &logs[i]
		cmd.Printf("  %s\n", log.ID)
		cmd.Printf("    Document:    %s\n", log.DocumentID)
		cmd.Printf("    Integration: %s\n", log.IntegrationConfigID)
		cmd.Printf("    Status:      %s\n", log.Status)
		if log.ErrorMessage != "" {
			cmd.Printf("    Error:       %s\n", log.ErrorMessage)
		}
		cmd.Println()
	}

	return nil
}
