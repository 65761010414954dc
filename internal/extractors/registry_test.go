package extractors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
)

// fakeExtractor is a registry test double.
type fakeExtractor struct {
	types []domain.FileType
}

func (f *fakeExtractor) FileTypes() []domain.FileType { return f.types }

func (f *fakeExtractor) Extract(_ context.Context, _ *driven.RawInput) (*driven.ExtractResult, error) {
	return &driven.ExtractResult{Status: driven.StatusExtracted}, nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	text := &fakeExtractor{types: []domain.FileType{domain.FileTypeNote, domain.FileTypeText}}
	pdf := &fakeExtractor{types: []domain.FileType{domain.FileTypePDF}}

	r.Register(text)
	r.Register(pdf)

	got, err := r.ForType(domain.FileTypeText)
	require.NoError(t, err)
	assert.Same(t, text, got)

	got, err = r.ForType(domain.FileTypePDF)
	require.NoError(t, err)
	assert.Same(t, pdf, got)
}

func TestRegistry_UnsupportedType(t *testing.T) {
	r := NewRegistry()
	_, err := r.ForType(domain.FileTypeImage)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestRegistry_LaterRegistrationWins(t *testing.T) {
	r := NewRegistry()
	first := &fakeExtractor{types: []domain.FileType{domain.FileTypeMarkdown}}
	second := &fakeExtractor{types: []domain.FileType{domain.FileTypeMarkdown}}

	r.Register(first)
	r.Register(second)

	got, err := r.ForType(domain.FileTypeMarkdown)
	require.NoError(t, err)
	assert.Same(t, second, got)
}
