package driving

import (
	"context"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

// NoteInput is the host-facing shape for manually entered notes.
type NoteInput struct {
	// Title is optional; when empty it is derived from the first line
	// of Content.
	Title string

	// Content is the note body.
	Content string
}

// UploadInput is the host-facing shape for file uploads.
type UploadInput struct {
	// Name is the original file name.
	Name string

	// FileType is the declared format of Content.
	FileType domain.FileType

	// Content is the raw file bytes.
	Content []byte

	// StorePath, when non-empty, is where the raw-file blob was written.
	// The library records it on the document and removes it on delete.
	StorePath string
}

// LibraryService manages the document collection: ingestion through the
// extract/tag pipeline, retrieval, and deletion.
type LibraryService interface {
	// AddNote runs a manual note through the tagging pipeline and stores it.
	// Returns domain.ErrInvalidInput when both title and content are empty.
	AddNote(ctx context.Context, note NoteInput) (*domain.Document, error)

	// UploadFile extracts text from raw bytes, tags it, and stores the
	// result. A degraded extraction still creates the document, with
	// Degraded set. Returns domain.ErrUnsupportedType for unknown types.
	UploadFile(ctx context.Context, upload UploadInput) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns documents by recency, capped by limit (<= 0 means all).
	List(ctx context.Context, limit int) ([]domain.Document, error)

	// Regenerate re-runs the tagger over stored content and updates
	// tags and summary.
	Regenerate(ctx context.Context, id string) (*domain.Document, error)

	// Delete removes a document and, if present, its raw-file blob.
	Delete(ctx context.Context, id string) error
}
