package domain

import "time"

// DocumentStatus is the server-side processing state of a document.
// The client never writes status directly, it only observes it.
type DocumentStatus string

// Document processing states.
const (
	// DocumentStatusQueued means the document is waiting for the pipeline.
	DocumentStatusQueued DocumentStatus = "queued"

	// DocumentStatusProcessing means the pipeline is working on the document.
	DocumentStatusProcessing DocumentStatus = "processing"

	// DocumentStatusProcessed means the pipeline finished successfully.
	DocumentStatusProcessed DocumentStatus = "processed"

	// DocumentStatusError means the pipeline failed.
	DocumentStatusError DocumentStatus = "error"
)

// IsValid returns true if the status is recognised.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusQueued, DocumentStatusProcessing,
		DocumentStatusProcessed, DocumentStatusError:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once the pipeline will make no further changes.
func (s DocumentStatus) IsTerminal() bool {
	return s == DocumentStatusProcessed || s == DocumentStatusError
}

// String returns the string representation.
func (s DocumentStatus) String() string {
	return string(s)
}

// Document represents an uploaded document as reported by the
// document-processing service. Created on upload; mutated only server-side.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Filename is the original upload filename.
	Filename string

	// Status is the current processing state.
	Status DocumentStatus

	// UploadedAt is when the document was uploaded.
	UploadedAt time.Time

	// ExtractedData holds pipeline extraction output, if any.
	ExtractedData map[string]any

	// Summary is the pipeline-generated summary, if any.
	Summary string
}

// Dispatchable returns true if the document may be sent to an
// external integration. Only fully processed documents qualify.
func (d *Document) Dispatchable() bool {
	return d.Status == DocumentStatusProcessed
}
