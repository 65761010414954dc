package markdown

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
	assert.Equal(t, []domain.FileType{domain.FileTypeMarkdown}, e.FileTypes())
}

func TestExtract_NilInput(t *testing.T) {
	e := New()
	result, err := e.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

func TestExtract_TitleFromHeading(t *testing.T) {
	e := New()
	raw := &driven.RawInput{
		Name:     "notes.md",
		FileType: domain.FileTypeMarkdown,
		Content:  []byte("# Project Kickoff\n\nSome **bold** text with a [link](https://example.com)."),
	}

	result, err := e.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, driven.StatusExtracted, result.Status)
	assert.Equal(t, "Project Kickoff", result.Title)
	assert.Contains(t, result.Text, "Some bold text with a link.")
	assert.NotContains(t, result.Text, "**")
	assert.NotContains(t, result.Text, "https://example.com")
}

func TestExtract_TitleFallsBackToName(t *testing.T) {
	e := New()
	raw := &driven.RawInput{
		Name:     "weekly-update.md",
		FileType: domain.FileTypeMarkdown,
		Content:  []byte("No heading here, just text."),
	}

	result, err := e.Extract(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "weekly update", result.Title)
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		notWant string
	}{
		{"code block", "before\n```go\nfunc main() {}\n```\nafter", "before\n\nafter", "func main"},
		{"inline code", "use `go build` here", "use  here", "go build"},
		{"image", "![alt text](img.png) caption", "caption", "img.png"},
		{"list markers", "- one\n- two", "one\ntwo", "- "},
		{"blockquote", "> quoted line", "quoted line", ">"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripMarkdown(tt.input)
			assert.Equal(t, tt.want, got)
			if tt.notWant != "" {
				assert.NotContains(t, got, tt.notWant)
			}
		})
	}
}
