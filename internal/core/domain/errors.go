package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input,
	// such as an empty note or an unknown search mode.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a declared file type outside the
	// supported set. The document is not created.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrTaggerUnavailable indicates the configured tagging backend is not
	// reachable. The system falls back to the keyword strategy.
	ErrTaggerUnavailable = errors.New("tagger backend unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. The embedding tagging strategy is disabled.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
