package tui

import "errors"

// Validation errors for TUI construction.
var (
	// ErrMissingDocumentService is returned when the document service is not provided.
	ErrMissingDocumentService = errors.New("tui: document service is required")

	// ErrMissingCoordinator is returned when the polling coordinator is not provided.
	ErrMissingCoordinator = errors.New("tui: polling coordinator is required")
)
