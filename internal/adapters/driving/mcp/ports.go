package mcp

import (
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Document exposes document reads.
	Document driving.DocumentService

	// Approval exposes the approval queue. Optional: tools degrade
	// gracefully when absent.
	Approval driving.ApprovalService

	// Integration exposes dispatch audit logs. Optional.
	Integration driving.IntegrationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	// Approval and Integration are optional
	return nil
}
