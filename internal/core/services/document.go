package services

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService exposes cached document reads and upload.
type DocumentService struct {
	api   driven.DocumentAPI
	cache driven.CacheStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(api driven.DocumentAPI, cache driven.CacheStore) *DocumentService {
	return &DocumentService{api: api, cache: cache}
}

// List returns all documents, reading through the documents-list cache.
// Transient failures are retried with bounded exponential backoff.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	if cached, _, ok := s.cache.Get(domain.CacheDocumentsList); ok {
		if docs, valid := cached.([]domain.Document); valid {
			return docs, nil
		}
	}

	docs, err := withReadRetry(ctx, "documents list", func(ctx context.Context) ([]domain.Document, error) {
		return s.api.ListDocuments(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	s.cache.Put(domain.CacheDocumentsList, docs)
	return docs, nil
}

// Get retrieves one document's detail through its detail cache.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	key := domain.DocumentDetailKey(id)
	if cached, _, ok := s.cache.Get(key); ok {
		if doc, valid := cached.(*domain.Document); valid {
			return doc, nil
		}
	}

	doc, err := s.api.GetDocument(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}

	s.cache.Put(key, doc)
	return doc, nil
}

// Upload sends a file to the processing service. The created document
// changes the server's document list, so the list cache is invalidated.
func (s *DocumentService) Upload(ctx context.Context, filename string, contents io.Reader) (*domain.Document, error) {
	if filename == "" {
		return nil, domain.ErrInvalidInput
	}

	doc, err := s.api.UploadDocument(ctx, filename, contents)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", filename, err)
	}

	s.cache.Invalidate(domain.CacheDocumentsList)
	return doc, nil
}

// Processing returns the subset of documents currently processing.
func (s *DocumentService) Processing(ctx context.Context) ([]domain.Document, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var processing []domain.Document
	for i := range docs {
		if docs[i].Status == domain.DocumentStatusProcessing {
			processing = append(processing, docs[i])
		}
	}
	return processing, nil
}
