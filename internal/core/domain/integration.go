package domain

import "time"

// IntegrationStatus is the availability state of an integration config.
type IntegrationStatus string

// Integration availability states.
const (
	// IntegrationStatusActive means the integration may receive dispatches.
	IntegrationStatusActive IntegrationStatus = "active"

	// IntegrationStatusInactive means the integration is disabled and
	// must never be offered as a dispatch target.
	IntegrationStatusInactive IntegrationStatus = "inactive"
)

// IsValid returns true if the status is recognised.
func (s IntegrationStatus) IsValid() bool {
	return s == IntegrationStatusActive || s == IntegrationStatusInactive
}

// IntegrationConfig describes one external system documents can be
// dispatched to. Lifecycle is plain CRUD.
type IntegrationConfig struct {
	// ID is the unique identifier for the configuration.
	ID string

	// Name is the human-readable name of the target system.
	Name string

	// Type identifies the integration kind (e.g. "erp", "crm").
	Type string

	// EndpointURL is where the server delivers dispatched documents.
	EndpointURL string

	// Status controls dispatch eligibility.
	Status IntegrationStatus

	// APIKey authenticates the server against the external system.
	APIKey string

	// Description is optional free text.
	Description string
}

// Active returns true if the integration may receive dispatches.
func (c *IntegrationConfig) Active() bool {
	return c.Status == IntegrationStatusActive
}

// AuditStatus is the lifecycle state of one dispatch attempt.
type AuditStatus string

// Dispatch attempt states. An audit log begins pending and moves to
// exactly one of success or failed, never reverting.
const (
	AuditStatusPending AuditStatus = "pending"
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailed  AuditStatus = "failed"
)

// IsTerminal returns true once the attempt has resolved.
func (s AuditStatus) IsTerminal() bool {
	return s == AuditStatusSuccess || s == AuditStatusFailed
}

// IntegrationAuditLog records one attempt to send a document to an
// external system. Created atomically by the dispatch call; resolved
// server-side; the client only observes it.
type IntegrationAuditLog struct {
	// ID is the unique identifier for the attempt.
	ID string

	// DocumentID is the dispatched document.
	DocumentID string

	// IntegrationConfigID is the target integration.
	IntegrationConfigID string

	// Status is the attempt lifecycle state.
	Status AuditStatus

	// StartedAt is when the dispatch began.
	StartedAt time.Time

	// CompletedAt is when the attempt resolved, if it has.
	CompletedAt *time.Time

	// ErrorMessage carries the failure reason when Status is failed.
	ErrorMessage string

	// ResponseData holds the external system's response payload, if any.
	ResponseData map[string]any
}
