package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
)

func TestFileTypes(t *testing.T) {
	e := New()
	types := e.FileTypes()

	assert.Contains(t, types, domain.FileTypeNote)
	assert.Contains(t, types, domain.FileTypeText)
	assert.Len(t, types, 2)
}

func TestExtract_NilInput(t *testing.T) {
	e := New()
	result, err := e.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestExtract_PassThrough(t *testing.T) {
	e := New()
	raw := &driven.RawInput{
		Name:     "meeting_notes.txt",
		FileType: domain.FileTypeText,
		Content:  []byte("Agenda for the weekly sync.\nAction items below."),
	}

	result, err := e.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, driven.StatusExtracted, result.Status)
	assert.Equal(t, "meeting notes", result.Title)
	assert.Equal(t, "Agenda for the weekly sync.\nAction items below.", result.Text)
}

func TestExtract_EmptyInput(t *testing.T) {
	e := New()
	raw := &driven.RawInput{FileType: domain.FileTypeNote}

	result, err := e.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, driven.StatusExtracted, result.Status)
	assert.Empty(t, result.Text)
}

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world", "hello world"},
		{"crlf", "line one\r\nline two", "line one\nline two"},
		{"control chars", "a\x00b\x07c", "abc"},
		{"keeps tabs", "col1\tcol2", "col1\tcol2"},
		{"trims whitespace", "  padded  ", "padded"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestTitleFromName(t *testing.T) {
	assert.Equal(t, "quarterly report", TitleFromName("quarterly-report.txt"))
	assert.Equal(t, "shopping list", TitleFromName("/tmp/shopping_list.md"))
	assert.Equal(t, "", TitleFromName(""))
}
