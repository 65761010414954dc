package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchMode(t *testing.T) {
	tests := []struct {
		input string
		want  SearchMode
	}{
		{"", SearchModeFullText},
		{"fulltext", SearchModeFullText},
		{"full-text", SearchModeFullText},
		{"full", SearchModeFullText},
		{"tags", SearchModeTags},
		{"tag", SearchModeTags},
		{"simple", SearchModeSimple},
		{"title", SearchModeSimple},
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			got, err := ParseSearchMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSearchMode_Invalid(t *testing.T) {
	for _, input := range []string{"semantic", "fuzzy", "FULLTEXT"} {
		_, err := ParseSearchMode(input)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}
}

func TestSearchMode_Valid(t *testing.T) {
	assert.True(t, SearchModeFullText.Valid())
	assert.True(t, SearchModeTags.Valid())
	assert.True(t, SearchModeSimple.Valid())
	assert.False(t, SearchMode("").Valid())
	assert.False(t, SearchMode("vector").Valid())
}
