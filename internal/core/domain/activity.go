package domain

import "time"

// ActivityKind classifies a locally observed event.
type ActivityKind string

// Activity kinds.
const (
	// ActivityTransition records a poll-detected status transition.
	ActivityTransition ActivityKind = "transition"

	// ActivityApproval records an approval mutation the client performed.
	ActivityApproval ActivityKind = "approval"

	// ActivityDispatch records an integration dispatch the client performed.
	ActivityDispatch ActivityKind = "dispatch"
)

// ActivityRecord is one entry in the local activity trail. The trail is
// a client-side convenience for `docflow activity`; server state is
// always the source of truth.
type ActivityRecord struct {
	// ID is the unique identifier for the entry.
	ID string

	// Kind classifies the event.
	Kind ActivityKind

	// DocumentID is the document the event concerns.
	DocumentID string

	// Detail is a short human-readable description.
	Detail string

	// OccurredAt is when the event was observed.
	OccurredAt time.Time
}
