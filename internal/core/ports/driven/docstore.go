package driven

import (
	"context"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

// DocumentStore persists documents.
// Backed by SQLite for durable storage.
//
// The store assumes single-writer discipline: at most one process holds
// write access at a time. Reads may run concurrently. The core performs
// no multi-writer coordination of its own.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound for unknown IDs.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns documents ordered by UpdatedAt descending,
	// ties broken by ID ascending. A limit <= 0 returns all documents.
	ListDocuments(ctx context.Context, limit int) ([]domain.Document, error)

	// UpdateMetadata replaces tags and summary for a document and bumps
	// UpdatedAt. Returns domain.ErrNotFound for unknown IDs.
	UpdateMetadata(ctx context.Context, id string, tags []string, summary string) error

	// DeleteDocument removes a document.
	// Returns domain.ErrNotFound for unknown IDs.
	DeleteDocument(ctx context.Context, id string) error

	// CountDocuments returns the total number of stored documents.
	CountDocuments(ctx context.Context) (int, error)
}
