package domain

import "time"

// ApprovalStatus is the decision state of an approval record.
type ApprovalStatus string

// Approval decision states.
const (
	// ApprovalStatusPending means the record is awaiting a decision.
	ApprovalStatusPending ApprovalStatus = "pending"

	// ApprovalStatusApproved means the record was approved.
	ApprovalStatusApproved ApprovalStatus = "approved"

	// ApprovalStatusRejected means the record was rejected.
	ApprovalStatusRejected ApprovalStatus = "rejected"

	// ApprovalStatusDelegated means the decision was reassigned to
	// another approver. A delegated record may still be approved,
	// rejected or delegated again by the new assignee.
	ApprovalStatusDelegated ApprovalStatus = "delegated"
)

// IsValid returns true if the status is recognised.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved,
		ApprovalStatusRejected, ApprovalStatusDelegated:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once the record may no longer change status.
// Delegation is not terminal: it re-targets without ending the decision.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// CanTransitionTo reports whether the status graph permits moving to next.
func (s ApprovalStatus) CanTransitionTo(next ApprovalStatus) bool {
	if s.IsTerminal() {
		return false
	}
	return next == ApprovalStatusApproved ||
		next == ApprovalStatusRejected ||
		next == ApprovalStatusDelegated
}

// String returns the string representation.
func (s ApprovalStatus) String() string {
	return string(s)
}

// ApprovalRecord is one decision point in a document's approval workflow,
// at a given approval level. Created server-side when a document enters a
// workflow; status changes only through approve/reject/delegate, and
// remove deletes the record outright.
type ApprovalRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// DocumentID links to the document under approval.
	DocumentID string

	// WorkflowStepName names the workflow step that created the record.
	WorkflowStepName string

	// ApprovalLevel is the position in the approval chain, starting at 1.
	ApprovalLevel int

	// Status is the current decision state.
	Status ApprovalStatus

	// AssignedAt is when the record was assigned to the approver.
	AssignedAt time.Time

	// DueDate is the decision deadline, if any.
	DueDate *time.Time

	// Comments holds the decision comments, if any.
	Comments string

	// DelegatedTo identifies the new assignee when delegated.
	DelegatedTo string

	// DelegationReason explains the delegation, if given.
	DelegationReason string
}

// Validate checks the per-status field rules, making combinations like an
// approved record carrying a delegation target an error.
func (r *ApprovalRecord) Validate() error {
	if r.ID == "" || r.DocumentID == "" {
		return ErrInvalidInput
	}
	if r.ApprovalLevel < 1 {
		return ErrInvalidInput
	}
	if !r.Status.IsValid() {
		return ErrInvalidInput
	}
	if r.Status == ApprovalStatusDelegated && r.DelegatedTo == "" {
		return ErrDelegateRequired
	}
	if r.Status != ApprovalStatusDelegated && (r.DelegatedTo != "" || r.DelegationReason != "") {
		return ErrInvalidInput
	}
	return nil
}

// Priority is the urgency of an approval record, derived from its due
// date relative to now. It is never persisted.
type Priority string

// Derived priorities.
const (
	// PriorityOverdue means the due date has passed.
	PriorityOverdue Priority = "overdue"

	// PriorityUrgent means the due date falls within the next 24 hours.
	PriorityUrgent Priority = "urgent"

	// PriorityNormal means the due date is more than 24 hours away.
	PriorityNormal Priority = "normal"

	// PriorityNone means the record has no due date.
	PriorityNone Priority = ""
)

// UrgentWindow is how close a due date must be to count as urgent.
const UrgentWindow = 24 * time.Hour

// PriorityAt derives the record's priority at the given instant.
func (r *ApprovalRecord) PriorityAt(now time.Time) Priority {
	if r.DueDate == nil {
		return PriorityNone
	}
	due := *r.DueDate
	switch {
	case due.Before(now):
		return PriorityOverdue
	case due.Before(now.Add(UrgentWindow)):
		return PriorityUrgent
	default:
		return PriorityNormal
	}
}
