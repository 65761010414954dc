package pdf

import (
	"context"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
	"github.com/cerebra-labs/cerebra-cli/internal/extractors"
	"github.com/cerebra-labs/cerebra-cli/internal/extractors/plaintext"
	"github.com/cerebra-labs/cerebra-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// toolName is the external tool used for text extraction.
const toolName = "pdftotext"

// InstallInstructions explains how to obtain the extraction tool.
// Shown in the diagnostic when extraction degrades.
const InstallInstructions = "pdftotext not found; install poppler-utils " +
	"(brew install poppler / apt install poppler-utils) or re-upload after OCR"

// Extractor handles PDF input by shelling out to pdftotext.
// A missing tool or a PDF without a text layer is not an error:
// the result degrades so the upload still succeeds.
type Extractor struct {
	runner    extractors.CommandRunner
	available func() bool
}

// New creates a PDF extractor using the system pdftotext.
func New() *Extractor {
	return &Extractor{
		runner:    extractors.ExecRunner{},
		available: func() bool { return extractors.ToolAvailable(toolName) },
	}
}

// NewWithRunner creates a PDF extractor with a custom command runner.
// Used by tests to avoid requiring the tool.
func NewWithRunner(runner extractors.CommandRunner) *Extractor {
	return &Extractor{
		runner:    runner,
		available: func() bool { return true },
	}
}

// FileTypes returns the declared types this extractor handles.
func (e *Extractor) FileTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypePDF}
}

// Extract runs pdftotext over the raw bytes. The tool being absent or
// producing no text yields a degraded result, never an error.
func (e *Extractor) Extract(ctx context.Context, raw *driven.RawInput) (*driven.ExtractResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	title := plaintext.TitleFromName(raw.Name)

	if !e.available() {
		logger.Warn("PDF extraction degraded: %s not on PATH", toolName)
		return &driven.ExtractResult{
			Title:      title,
			Status:     driven.StatusDegraded,
			Diagnostic: InstallInstructions,
		}, nil
	}

	// "-q -enc UTF-8 - -" reads the PDF from stdin and writes text to stdout.
	out, err := e.runner.Run(ctx, raw.Content, toolName, "-q", "-enc", "UTF-8", "-", "-")
	if err != nil {
		logger.Warn("PDF extraction degraded: %v", err)
		return &driven.ExtractResult{
			Title:      title,
			Status:     driven.StatusDegraded,
			Diagnostic: "pdftotext failed: " + err.Error(),
		}, nil
	}

	text := plaintext.Clean(string(out))
	if text == "" {
		return &driven.ExtractResult{
			Title:      title,
			Status:     driven.StatusDegraded,
			Diagnostic: "no extractable text; the PDF may be scanned and need OCR",
		}, nil
	}

	return &driven.ExtractResult{
		Title:  title,
		Text:   text,
		Status: driven.StatusExtracted,
	}, nil
}
