package plaintext

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text input: manual notes and .txt files.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// FileTypes returns the declared types this extractor handles.
func (e *Extractor) FileTypes() []domain.FileType {
	return []domain.FileType{domain.FileTypeNote, domain.FileTypeText}
}

// Extract passes text through after trimming control characters.
// Empty input is an empty result, not an error.
func (e *Extractor) Extract(_ context.Context, raw *driven.RawInput) (*driven.ExtractResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	text := Clean(string(raw.Content))

	return &driven.ExtractResult{
		Title:  TitleFromName(raw.Name),
		Text:   text,
		Status: driven.StatusExtracted,
	}, nil
}

// Clean normalises line endings and strips control characters other than
// newline and tab. Invalid UTF-8 bytes are dropped.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f || r == 0xfffd:
			// drop control characters and replacement runes
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// TitleFromName derives a human-readable title from a file name.
func TitleFromName(name string) string {
	if name == "" {
		return ""
	}
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return strings.TrimSpace(base)
}
