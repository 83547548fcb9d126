package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

// Ensure Client implements the document port.
var _ driven.DocumentAPI = (*Client)(nil)

// documentDTO is the wire format for a document.
type documentDTO struct {
	ID            string         `json:"id"`
	Filename      string         `json:"filename"`
	Status        string         `json:"status"`
	UploadedAt    time.Time      `json:"uploaded_at"`
	ExtractedData map[string]any `json:"extracted_data,omitempty"`
	Summary       string         `json:"summary,omitempty"`
}

func (d documentDTO) toDomain() domain.Document {
	return domain.Document{
		ID:            d.ID,
		Filename:      d.Filename,
		Status:        domain.DocumentStatus(d.Status),
		UploadedAt:    d.UploadedAt,
		ExtractedData: d.ExtractedData,
		Summary:       d.Summary,
	}
}

// ListDocuments returns all documents, server-ordered.
func (c *Client) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	var dtos []documentDTO
	if err := c.get(ctx, "/documents/", &dtos); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]domain.Document, len(dtos))
	for i, dto := range dtos {
		docs[i] = dto.toDomain()
	}
	return docs, nil
}

// GetDocument retrieves one document's detail.
func (c *Client) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	var dto documentDTO
	if err := c.get(ctx, "/documents/"+url.PathEscape(id)+"/", &dto); err != nil {
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}

	doc := dto.toDomain()
	return &doc, nil
}

// UploadDocument uploads a file as multipart form data and returns the
// created document, which starts life queued.
func (c *Client) UploadDocument(ctx context.Context, filename string, contents io.Reader) (*domain.Document, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("uploaded_file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, contents); err != nil {
		return nil, fmt.Errorf("copy file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents/upload/", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.send(req)
	if err != nil {
		return nil, fmt.Errorf("upload document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upload document: %w", c.decodeError(http.MethodPost, "/documents/upload/", resp))
	}

	var dto documentDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}

	doc := dto.toDomain()
	return &doc, nil
}
