package driven

import (
	"context"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

// ExtractStatus distinguishes a full extraction from a degraded one.
type ExtractStatus int

const (
	// StatusExtracted means usable text was produced.
	StatusExtracted ExtractStatus = iota

	// StatusDegraded means extraction completed without usable text,
	// e.g. a scanned PDF or a missing OCR backend. Not an error: the
	// caller stores empty content with a diagnostic flag.
	StatusDegraded
)

// RawInput carries the bytes to extract along with their declared type.
type RawInput struct {
	// Name is the original file name, used for title derivation.
	Name string

	// FileType is the declared format of Content.
	FileType domain.FileType

	// Content is the raw bytes.
	Content []byte
}

// ExtractResult contains the output of extraction.
type ExtractResult struct {
	// Title is derived from the input (first heading, file name).
	Title string

	// Text is the normalised text content. Empty when Status is degraded.
	Text string

	// Status reports whether usable text was produced.
	Status ExtractStatus

	// Diagnostic explains a degraded result in human-readable form.
	Diagnostic string
}

// Extractor converts raw input of one declared file type into text.
// Implementations must not perform network I/O and must not fail on
// well-formed-but-unprocessable input; they degrade instead.
type Extractor interface {
	// FileTypes returns the declared types this extractor handles.
	FileTypes() []domain.FileType

	// Extract converts raw bytes into normalised text.
	// Decoding failures degrade to an empty result, never panic.
	Extract(ctx context.Context, raw *RawInput) (*ExtractResult, error)
}

// ExtractorRegistry selects the extractor for a declared file type.
type ExtractorRegistry interface {
	// Register adds an extractor for its declared types.
	Register(e Extractor)

	// ForType returns the extractor for the given type.
	// Returns domain.ErrUnsupportedType when none is registered.
	ForType(t domain.FileType) (Extractor, error)
}
