package domain

import "time"

// Transition is an observed change between two consecutive status reads
// of the same document. Detection is pure: the notification and cache
// side effects are applied by whoever consumes the event.
type Transition struct {
	// DocumentID identifies the document that changed.
	DocumentID string

	// From is the previously known status.
	From DocumentStatus

	// To is the freshly observed status.
	To DocumentStatus

	// ObservedAt is when the change was detected.
	ObservedAt time.Time
}

// Completed returns true for the processing -> processed transition.
func (t Transition) Completed() bool {
	return t.From == DocumentStatusProcessing && t.To == DocumentStatusProcessed
}

// Failed returns true for the processing -> error transition.
func (t Transition) Failed() bool {
	return t.From == DocumentStatusProcessing && t.To == DocumentStatusError
}

// Terminal returns true if the transition ends polling for the document.
func (t Transition) Terminal() bool {
	return t.To.IsTerminal()
}

// DetectTransition compares two consecutive status reads and returns the
// transition between them, or nil when the status is unchanged.
func DetectTransition(documentID string, previous, current DocumentStatus, observedAt time.Time) *Transition {
	if previous == current {
		return nil
	}
	return &Transition{
		DocumentID: documentID,
		From:       previous,
		To:         current,
		ObservedAt: observedAt,
	}
}
