package rest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

// Ensure Client implements the integration and workflow ports.
var (
	_ driven.IntegrationAPI = (*Client)(nil)
	_ driven.WorkflowAPI    = (*Client)(nil)
)

// integrationDTO is the wire format for an integration config.
type integrationDTO struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"integration_type"`
	EndpointURL string `json:"endpoint_url"`
	Status      string `json:"status"`
	APIKey      string `json:"api_key,omitempty"`
	Description string `json:"description,omitempty"`
}

func integrationToDTO(cfg *domain.IntegrationConfig) integrationDTO {
	return integrationDTO{
		ID:          cfg.ID,
		Name:        cfg.Name,
		Type:        cfg.Type,
		EndpointURL: cfg.EndpointURL,
		Status:      string(cfg.Status),
		APIKey:      cfg.APIKey,
		Description: cfg.Description,
	}
}

func (d integrationDTO) toDomain() domain.IntegrationConfig {
	return domain.IntegrationConfig{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		EndpointURL: d.EndpointURL,
		Status:      domain.IntegrationStatus(d.Status),
		APIKey:      d.APIKey,
		Description: d.Description,
	}
}

// auditLogDTO is the wire format for a dispatch audit log.
type auditLogDTO struct {
	ID                  string         `json:"id"`
	DocumentID          string         `json:"document_id"`
	IntegrationConfigID string         `json:"integration_config_id"`
	Status              string         `json:"status"`
	StartedAt           time.Time      `json:"started_at"`
	CompletedAt         *time.Time     `json:"completed_at,omitempty"`
	ErrorMessage        string         `json:"error_message,omitempty"`
	ResponseData        map[string]any `json:"response_data,omitempty"`
}

func (d auditLogDTO) toDomain() domain.IntegrationAuditLog {
	return domain.IntegrationAuditLog{
		ID:                  d.ID,
		DocumentID:          d.DocumentID,
		IntegrationConfigID: d.IntegrationConfigID,
		Status:              domain.AuditStatus(d.Status),
		StartedAt:           d.StartedAt,
		CompletedAt:         d.CompletedAt,
		ErrorMessage:        d.ErrorMessage,
		ResponseData:        d.ResponseData,
	}
}

// dispatchBody is the send_for_integration request body.
type dispatchBody struct {
	IntegrationID string `json:"integration_id"`
}

// ListIntegrations returns all integration configs, active or not.
func (c *Client) ListIntegrations(ctx context.Context) ([]domain.IntegrationConfig, error) {
	var dtos []integrationDTO
	if err := c.get(ctx, "/integrations/", &dtos); err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}

	configs := make([]domain.IntegrationConfig, len(dtos))
	for i, dto := range dtos {
		configs[i] = dto.toDomain()
	}
	return configs, nil
}

// CreateIntegration creates a new configuration.
func (c *Client) CreateIntegration(ctx context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error) {
	var dto integrationDTO
	if err := c.postJSON(ctx, "/integrations/", integrationToDTO(cfg), &dto); err != nil {
		return nil, fmt.Errorf("create integration: %w", err)
	}

	created := dto.toDomain()
	return &created, nil
}

// UpdateIntegration patches an existing configuration.
func (c *Client) UpdateIntegration(ctx context.Context, cfg *domain.IntegrationConfig) (*domain.IntegrationConfig, error) {
	var dto integrationDTO
	path := "/integrations/" + url.PathEscape(cfg.ID) + "/"
	if err := c.patchJSON(ctx, path, integrationToDTO(cfg), &dto); err != nil {
		return nil, fmt.Errorf("update integration %s: %w", cfg.ID, err)
	}

	updated := dto.toDomain()
	return &updated, nil
}

// DeleteIntegration removes a configuration.
func (c *Client) DeleteIntegration(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/integrations/"+url.PathEscape(id)+"/"); err != nil {
		return fmt.Errorf("delete integration %s: %w", id, err)
	}
	return nil
}

// TestConnection asks the server to probe the integration endpoint.
func (c *Client) TestConnection(ctx context.Context, id string) error {
	path := "/integrations/" + url.PathEscape(id) + "/test_connection/"
	if err := c.postJSON(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("test connection %s: %w", id, err)
	}
	return nil
}

// Dispatch sends a document to an integration. The server creates the
// audit log atomically with the send; it is returned in pending state.
func (c *Client) Dispatch(ctx context.Context, documentID, integrationID string) (*domain.IntegrationAuditLog, error) {
	var dto auditLogDTO
	path := "/documents/" + url.PathEscape(documentID) + "/send_for_integration/"
	body := dispatchBody{IntegrationID: integrationID}
	if err := c.postJSON(ctx, path, body, &dto); err != nil {
		return nil, fmt.Errorf("dispatch document %s: %w", documentID, err)
	}

	log := dto.toDomain()
	return &log, nil
}

// ListAuditLogs returns dispatch audit logs, server-ordered.
func (c *Client) ListAuditLogs(ctx context.Context) ([]domain.IntegrationAuditLog, error) {
	var dtos []auditLogDTO
	if err := c.get(ctx, "/integration-logs/", &dtos); err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}

	logs := make([]domain.IntegrationAuditLog, len(dtos))
	for i, dto := range dtos {
		logs[i] = dto.toDomain()
	}
	return logs, nil
}

// executionDTO is the wire format for a workflow execution.
type executionDTO struct {
	DocumentID   string     `json:"document_id"`
	WorkflowName string     `json:"workflow_name"`
	Status       string     `json:"status"`
	CurrentStep  string     `json:"current_step,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// ListExecutions returns workflow executions keyed by document ID.
func (c *Client) ListExecutions(ctx context.Context) ([]domain.WorkflowExecution, error) {
	var dtos []executionDTO
	if err := c.get(ctx, "/workflow-executions/", &dtos); err != nil {
		return nil, fmt.Errorf("list workflow executions: %w", err)
	}

	executions := make([]domain.WorkflowExecution, len(dtos))
	for i, dto := range dtos {
		executions[i] = domain.WorkflowExecution{
			DocumentID:   dto.DocumentID,
			WorkflowName: dto.WorkflowName,
			Status:       dto.Status,
			CurrentStep:  dto.CurrentStep,
			StartedAt:    dto.StartedAt,
			CompletedAt:  dto.CompletedAt,
		}
	}
	return executions, nil
}
