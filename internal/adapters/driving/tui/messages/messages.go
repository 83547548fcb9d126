// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

// RefreshTick is sent when the periodic refresh timer fires.
type RefreshTick struct{}

// ProcessingLoaded carries the current set of in-flight documents and
// how many of them have a live poller.
type ProcessingLoaded struct {
	Documents []domain.Document
	Watching  int
	Err       error
}

// ActivityLoaded carries recent local activity entries.
type ActivityLoaded struct {
	Records []domain.ActivityRecord
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
