package services

import (
	"fmt"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

// Ensure NotificationDispatcher implements the sink.
var _ TransitionSink = (*NotificationDispatcher)(nil)

// NotificationDispatcher renders transitions as user-visible
// notifications. It is a stateless presentation trigger: exactly-once
// delivery depends entirely on the poller calling it once per
// transition.
type NotificationDispatcher struct {
	notifier driven.Notifier
}

// NewNotificationDispatcher creates a dispatcher. The notifier may be
// nil, in which case all dispatches are no-ops.
func NewNotificationDispatcher(notifier driven.Notifier) *NotificationDispatcher {
	return &NotificationDispatcher{notifier: notifier}
}

// DocumentCompleted renders a prominent success toast and an OS-level
// notification tagged by document ID. Tagging means a repeat call
// replaces rather than stacks, even though the call site guarantees
// at-most-once.
func (d *NotificationDispatcher) DocumentCompleted(doc *domain.Document) {
	if d == nil || d.notifier == nil {
		return
	}

	title := "Document processed"
	message := fmt.Sprintf("%s finished processing.", doc.Filename)
	d.notifier.Toast(driven.ToastSuccess, title, message)
	d.notifier.OSNotify(doc.ID, title, message)
}

// DocumentFailed renders a destructive-style toast. No OS notification
// is raised on failure.
func (d *NotificationDispatcher) DocumentFailed(doc *domain.Document) {
	if d == nil || d.notifier == nil {
		return
	}

	d.notifier.Toast(driven.ToastError, "Processing failed",
		fmt.Sprintf("%s could not be processed.", doc.Filename))
}

// DispatchSucceeded renders a success toast naming the target system
// after an integration dispatch.
func (d *NotificationDispatcher) DispatchSucceeded(doc *domain.Document, target string) {
	if d == nil || d.notifier == nil {
		return
	}

	d.notifier.Toast(driven.ToastSuccess, "Sent for integration",
		fmt.Sprintf("%s was sent to %s.", doc.Filename, target))
}

// WriteFailed surfaces a failed mutation with the server-provided
// message, or a generic fallback when none is present.
func (d *NotificationDispatcher) WriteFailed(message string) {
	if d == nil || d.notifier == nil {
		return
	}
	if message == "" {
		message = "The operation could not be completed. Please try again."
	}
	d.notifier.Toast(driven.ToastError, "Operation failed", message)
}
