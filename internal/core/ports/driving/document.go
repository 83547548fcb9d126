package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
)

// DocumentService exposes cached document reads and upload.
type DocumentService interface {
	// List returns all documents. Reads through the documents-list
	// cache: a fetch happens only when the cache is stale.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves one document's detail through its detail cache.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Upload sends a file to the processing service and returns the
	// created document. Invalidates the documents-list cache.
	Upload(ctx context.Context, filename string, contents io.Reader) (*domain.Document, error)

	// Processing returns the subset of documents currently in the
	// processing state, the coordinator's input set.
	Processing(ctx context.Context) ([]domain.Document, error)
}
