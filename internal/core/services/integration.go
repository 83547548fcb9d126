package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docflow-cli/internal/logger"
)

// Ensure IntegrationService implements the interface.
var _ driving.IntegrationService = (*IntegrationService)(nil)

// IntegrationService drives external-system dispatch and integration
// configuration management. Dispatch eligibility is enforced locally:
// only processed documents ever reach the network.
type IntegrationService struct {
	api       driven.IntegrationAPI
	documents driving.DocumentService
	cache     driven.CacheStore
	sink      *NotificationDispatcher
	activity  driven.ActivityStore
}

// NewIntegrationService creates a new integration service. The sink and
// activity store may be nil.
func NewIntegrationService(
	api driven.IntegrationAPI,
	documents driving.DocumentService,
	cache driven.CacheStore,
	sink *NotificationDispatcher,
	activity driven.ActivityStore,
) *IntegrationService {
	return &IntegrationService{
		api:       api,
		documents: documents,
		cache:     cache,
		sink:      sink,
		activity:  activity,
	}
}

// ListActive returns only active integration configs. Inactive entries
// are filtered out even when the raw fetch includes them, so they are
// never offered as dispatch targets.
func (s *IntegrationService) ListActive(ctx context.Context) ([]domain.IntegrationConfig, error) {
	configs, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	var active []domain.IntegrationConfig
	for i := range configs {
		if configs[i].Active() {
			active = append(active, configs[i])
		}
	}
	return active, nil
}

// listAll reads the raw config list through its cache.
func (s *IntegrationService) listAll(ctx context.Context) ([]domain.IntegrationConfig, error) {
	if cached, _, ok := s.cache.Get(domain.CacheIntegrationsList); ok {
		if configs, valid := cached.([]domain.IntegrationConfig); valid {
			return configs, nil
		}
	}

	configs, err := withReadRetry(ctx, "integrations list", func(ctx context.Context) ([]domain.IntegrationConfig, error) {
		return s.api.ListIntegrations(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}

	s.cache.Put(domain.CacheIntegrationsList, configs)
	return configs, nil
}

// Dispatch sends a document to an integration. The document must be
// processed and the integration active; both checks run before any
// network call, and a failed dispatch leaves no partial local state.
func (s *IntegrationService) Dispatch(ctx context.Context, documentID, integrationID string) (*domain.IntegrationAuditLog, error) {
	if documentID == "" || integrationID == "" {
		return nil, domain.ErrInvalidInput
	}

	doc, err := s.documents.Get(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("dispatch %s: %w", documentID, err)
	}
	if !doc.Dispatchable() {
		return nil, domain.ErrNotDispatchable
	}

	target, err := s.findActive(ctx, integrationID)
	if err != nil {
		return nil, err
	}

	auditLog, err := s.api.Dispatch(ctx, documentID, integrationID)
	if err != nil {
		return nil, fmt.Errorf("dispatch %s to %s: %w", documentID, target.Name, err)
	}

	s.cache.Invalidate(domain.CacheIntegrationLogs)
	s.sink.DispatchSucceeded(doc, target.Name)
	s.recordDispatch(documentID, target.Name)

	return auditLog, nil
}

// findActive resolves an integration ID against the active set.
func (s *IntegrationService) findActive(ctx context.Context, integrationID string) (*domain.IntegrationConfig, error) {
	configs, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range configs {
		if configs[i].ID != integrationID {
			continue
		}
		if !configs[i].Active() {
			return nil, domain.ErrInactiveIntegration
		}
		return &configs[i], nil
	}
	return nil, domain.ErrNotFound
}

// TestConnection asks the server to probe the integration endpoint.
func (s *IntegrationService) TestConnection(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := s.api.TestConnection(ctx, id); err != nil {
		return fmt.Errorf("test connection %s: %w", id, err)
	}
	return nil
}

// Create adds a new integration configuration.
func (s *IntegrationService) Create(ctx context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error) {
	if cfg == nil || cfg.Name == "" || cfg.EndpointURL == "" {
		return nil, domain.ErrInvalidInput
	}
	if cfg.Status != "" && !cfg.Status.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.api.CreateIntegration(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create integration: %w", err)
	}

	s.cache.Invalidate(domain.CacheIntegrationsList)
	return created, nil
}

// Update patches an existing configuration.
func (s *IntegrationService) Update(ctx context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error) {
	if cfg == nil || cfg.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	if cfg.Status != "" && !cfg.Status.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.api.UpdateIntegration(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("update integration %s: %w", cfg.ID, err)
	}

	s.cache.Invalidate(domain.CacheIntegrationsList)
	return updated, nil
}

// Delete removes a configuration.
func (s *IntegrationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}

	if err := s.api.DeleteIntegration(ctx, id); err != nil {
		return fmt.Errorf("delete integration %s: %w", id, err)
	}

	s.cache.Invalidate(domain.CacheIntegrationsList)
	return nil
}

// Logs returns dispatch audit logs through the integration-logs cache.
func (s *IntegrationService) Logs(ctx context.Context) ([]domain.IntegrationAuditLog, error) {
	if cached, _, ok := s.cache.Get(domain.CacheIntegrationLogs); ok {
		if logs, valid := cached.([]domain.IntegrationAuditLog); valid {
			return logs, nil
		}
	}

	logs, err := withReadRetry(ctx, "integration logs", func(ctx context.Context) ([]domain.IntegrationAuditLog, error) {
		return s.api.ListAuditLogs(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list integration logs: %w", err)
	}

	s.cache.Put(domain.CacheIntegrationLogs, logs)
	return logs, nil
}

// recordDispatch appends the dispatch to the local activity trail.
func (s *IntegrationService) recordDispatch(documentID, target string) {
	if s.activity == nil {
		return
	}
	rec := &domain.ActivityRecord{
		ID:         uuid.NewString(),
		Kind:       domain.ActivityDispatch,
		DocumentID: documentID,
		Detail:     "dispatched to " + target,
		OccurredAt: nowFunc(),
	}
	if err := s.activity.Record(context.Background(), rec); err != nil {
		logger.Warn("dispatch activity: %v", err)
	}
}
