package image

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

// toolName is the external OCR tool.
const toolName = "tesseract"

// InstallInstructions explains how to obtain the OCR backend.
// Shown in the diagnostic when extraction degrades.
const InstallInstructions = "tesseract not found; install tesseract-ocr " +
	"(brew install tesseract / apt install tesseract-ocr) to enable image OCR"

// Extractor handles image input via OCR. OCR is optional: a missing
// backend or an image without detectable text degrades, it never fails
// the upload.
type Extractor struct {
	runner    extractors.CommandRunner
	available func() bool
}

// New creates an image extractor using the system tesseract.
func New() *Extractor {
	return &Extractor{
		runner:    extractors.ExecRunner{},
		available: func() bool { return extractors.ToolAvailable(toolName) },
	}
}

// NewWithRunner creates an image extractor with a custom command runner.
// Used by tests to avoid requiring the tool.
func NewWithRunner(runner extractors.CommandRunner) *Extractor {
	return &Extractor{
		runner:    runner,
		available: func() bool { return true },
	}
}

// FileTypes returns the declared types this extractor handles.
func (e *Extractor) FileTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypeImage}
}

// Extract runs OCR over the raw bytes. The backend being absent or
// detecting no text yields a degraded result, never an error.
func (e *Extractor) Extract(ctx context.Context, raw *driven.RawInput) (*driven.ExtractResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	title := plaintext.TitleFromName(raw.Name)

	if !e.available() {
		logger.Warn("OCR degraded: %s not on PATH", toolName)
		return &driven.ExtractResult{
			Title:      title,
			Status:     driven.StatusDegraded,
			Diagnostic: InstallInstructions,
		}, nil
	}

	// "stdin stdout" makes tesseract read the image from stdin and write
	// recognised text to stdout.
	out, err := e.runner.Run(ctx, raw.Content, toolName, "stdin", "stdout")
	if err != nil {
		logger.Warn("OCR degraded: %v", err)
		return &driven.ExtractResult{
			Title:      title,
			Status:     driven.StatusDegraded,
			Diagnostic: "tesseract failed: " + err.Error(),
		}, nil
	}

	text := plaintext.Clean(string(out))
	if text == "" {
		return &driven.ExtractResult{
			Title:      title,
			Status:     driven.StatusDegraded,
			Diagnostic: "no text detected in image",
		}, nil
	}

	return &driven.ExtractResult{
		Title:  title,
		Text:   text,
		Status: driven.StatusExtracted,
	}, nil
}
