package driving

import (
	"context"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

// IntegrationService drives external-system dispatch and integration
// configuration management.
type IntegrationService interface {
	// ListActive returns only active integration configs. Inactive
	// entries are filtered even when the raw fetch includes them.
	ListActive(ctx context.Context) ([]domain.IntegrationConfig, error)

	// Dispatch sends a document to an integration. The document must
	// be processed, otherwise the call fails locally with
	// domain.ErrNotDispatchable before any network call. Returns the
	// audit log created for the attempt.
	Dispatch(ctx context.Context, documentID, integrationID string) (*domain.IntegrationAuditLog, error)

	// TestConnection asks the server to probe the integration endpoint.
	TestConnection(ctx context.Context, id string) error

	// Create adds a new integration configuration.
	Create(ctx context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error)

	// Update patches an existing configuration.
	Update(ctx context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error)

	// Delete removes a configuration.
	Delete(ctx context.Context, id string) error

	// Logs returns dispatch audit logs through the integration-logs cache.
	Logs(ctx context.Context) ([]domain.IntegrationAuditLog, error)
}
