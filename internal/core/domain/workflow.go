package domain

import "time"

// WorkflowExecution is the downstream automation state for a document,
// keyed by document ID. It is a read-only collaborator: the client
// displays it but never mutates it.
type WorkflowExecution struct {
	// DocumentID identifies the document the workflow runs for.
	DocumentID string

	// WorkflowName is the human-readable workflow name.
	WorkflowName string

	// Status is the server-reported execution state
	// (e.g. "in_progress", "completed", "failed").
	Status string

	// CurrentStep names the step currently executing, if any.
	CurrentStep string

	// StartedAt is when the execution began.
	StartedAt time.Time

	// CompletedAt is when the execution finished, if it has.
	CompletedAt *time.Time
}
