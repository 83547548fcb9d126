package tui

import (
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Document exposes document reads; Processing feeds the monitor.
	Document driving.DocumentService

	// Poller keeps poller membership aligned with what is on screen.
	Poller driving.PollingCoordinator

	// Activity exposes the local activity trail. Optional: the recent
	// activity pane stays empty when absent.
	Activity driving.ActivityService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	if p.Poller == nil {
		return ErrMissingCoordinator
	}
	// Activity is optional
	return nil
}
