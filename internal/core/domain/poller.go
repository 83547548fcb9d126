package domain

import "time"

// PollerState is the lifecycle state of one status poller.
type PollerState string

// Poller lifecycle states.
const (
	// PollerStateInit means the poller has been created but not started.
	PollerStateInit PollerState = "init"

	// PollerStatePolling means the poller is reading status on its period.
	PollerStatePolling PollerState = "polling"

	// PollerStateCompleted means a processing -> processed transition was observed.
	PollerStateCompleted PollerState = "completed"

	// PollerStateErrored means a processing -> error transition was observed.
	PollerStateErrored PollerState = "errored"

	// PollerStateStopped means the owner stopped the poller before a
	// terminal transition was observed.
	PollerStateStopped PollerState = "stopped"
)

// IsTerminal returns true once the poller will issue no further reads.
func (s PollerState) IsTerminal() bool {
	return s == PollerStateCompleted || s == PollerStateErrored || s == PollerStateStopped
}

// DefaultPollInterval is the fixed period between status reads.
const DefaultPollInterval = 3 * time.Second
