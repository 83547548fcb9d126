package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Integration Command Tests

func TestIntegrationCmd_Use(t *testing.T) {
	assert.Equal(t, "integration", integrationCmd.Use)
}

func TestIntegrationCmd_HasSubcommands(t *testing.T) {
	commands := integrationCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "add")
	assert.Contains(t, commandNames, "update")
	assert.Contains(t, commandNames, "remove")
	assert.Contains(t, commandNames, "test")
	assert.Contains(t, commandNames, "send")
	assert.Contains(t, commandNames, "logs")
}

// Integration List Tests

func TestIntegrationListCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"integration", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Active integrations:")
	assert.Contains(t, buf.String(), "int-1")
	assert.Contains(t, buf.String(), "ERP Production")
}

func TestIntegrationListCmd_ServiceNotConfigured(t *testing.T) {
	oldService := integrationService
	integrationService = nil
	defer func() {
		integrationService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"integration", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "integration service not configured")
}

// Integration Add Tests

func TestIntegrationAddCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"integration", "add",
		"--name", "CRM Sandbox",
		"--type", "crm",
		"--endpoint", "https://crm.example.com/api",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		integrationName = ""
		integrationType = ""
		integrationEndpoint = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Added integration int-new (CRM Sandbox)")
}

// Integration Update Tests

func TestIntegrationUpdateCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"integration", "update"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestIntegrationUpdateCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"integration", "update", "int-1", "--name", "ERP Renamed"})
	defer func() {
		rootCmd.SetArgs(nil)
		integrationName = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Updated integration int-1")
}

// Integration Remove Tests

func TestIntegrationRemoveCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"integration", "remove", "int-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Removed integration int-1")
}

// Integration Test Tests

func TestIntegrationTestCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"integration", "test", "int-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Testing connection to int-1")
	assert.Contains(t, buf.String(), "OK")
}

// Integration Send Tests

func TestIntegrationSendCmd_RequiresTwoArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"integration", "send", "doc-2"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestIntegrationSendCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"integration", "send", "doc-2", "int-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Sent document doc-2 to integration int-1")
	assert.Contains(t, buf.String(), "status pending")
}

func TestIntegrationSendCmd_RejectsUnprocessedDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	integrationService = &mockIntegrationServiceNotDispatchable{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"integration", "send", "doc-1", "int-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "document must be fully processed")
}

// Integration Logs Tests

func TestIntegrationLogsCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"integration", "logs"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Dispatch audit logs:")
	assert.Contains(t, buf.String(), "log-1")
	assert.Contains(t, buf.String(), "success")
}
