package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Validation errors block a mutation before any network call.

	// ErrCommentsRequired indicates a rejection was submitted without comments.
	ErrCommentsRequired = errors.New("rejection comments are required")

	// ErrDelegateRequired indicates a delegation has no target approver.
	ErrDelegateRequired = errors.New("delegation target is required")

	// ErrNotDispatchable indicates the document is not in a
	// dispatch-eligible state. Only processed documents may be dispatched.
	ErrNotDispatchable = errors.New("document is not ready for integration dispatch")

	// ErrInactiveIntegration indicates the target integration is not active.
	ErrInactiveIntegration = errors.New("integration is inactive")

	// ErrTerminalApproval indicates the approval record has already been
	// approved or rejected and may no longer change.
	ErrTerminalApproval = errors.New("approval is already finalised")

	// ErrPollerStopped indicates an operation on a poller that has
	// already reached a terminal lifecycle state.
	ErrPollerStopped = errors.New("poller stopped")
)
