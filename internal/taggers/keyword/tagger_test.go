package keyword

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

func TestName(t *testing.T) {
	assert.Equal(t, "keyword", New(Config{}).Name())
}

func TestGenerate_EmptyInput(t *testing.T) {
	tagger := New(Config{})

	for _, input := range []string{"", "   ", "\n\t "} {
		tags, summary, err := tagger.Generate(context.Background(), input)
		require.NoError(t, err)
		assert.Empty(t, tags, "input %q", input)
		assert.Empty(t, summary, "input %q", input)
	}
}

func TestGenerate_FinanceScenario(t *testing.T) {
	tagger := New(Config{})
	content := "Quarterly revenue grew due to strong investment returns"

	tags, summary, err := tagger.Generate(context.Background(), content)
	require.NoError(t, err)

	// Category pattern match comes first.
	require.NotEmpty(t, tags)
	assert.Equal(t, "finance", tags[0])

	// At least one frequency keyword from the content.
	frequencyWords := map[string]bool{
		"quarterly": true, "revenue": true, "investment": true, "returns": true,
	}
	var found bool
	for _, tag := range tags[1:] {
		if frequencyWords[tag] {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a frequency keyword in %v", tags)

	// Short content: summary is the content itself.
	assert.Equal(t, content, summary)
}

func TestGenerate_TagBoundAndDedupe(t *testing.T) {
	tagger := New(Config{})

	// Repetitive text with many distinct candidate words.
	text := strings.Repeat("meeting agenda budget research recipe idea task journal "+
		"velocity roadmap planning milestones staffing vendors procurement ", 3)

	tags, _, err := tagger.Generate(context.Background(), text)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(tags), domain.MaxTags)

	seen := make(map[string]bool)
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		assert.False(t, seen[lower], "duplicate tag %q", tag)
		seen[lower] = true
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	tagger := New(Config{})
	text := "The study analysed budget allocation across research teams. " +
		"Budget reviews happen quarterly; research outputs are tracked monthly."

	tags1, summary1, err := tagger.Generate(context.Background(), text)
	require.NoError(t, err)
	tags2, summary2, err := tagger.Generate(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, tags1, tags2)
	assert.Equal(t, summary1, summary2)
}

func TestGenerate_CategoryPriorityOrder(t *testing.T) {
	tagger := New(Config{})
	// Matches both "meeting" and "finance"; meeting has higher priority.
	text := "Meeting about the annual budget."

	tags, _, err := tagger.Generate(context.Background(), text)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(tags), 2)
	assert.Equal(t, "meeting", tags[0])
	assert.Equal(t, "finance", tags[1])
}

func TestGenerate_FrequencyOrdering(t *testing.T) {
	tagger := New(Config{})
	text := "alpha beta alpha gamma alpha beta"

	tags, _, err := tagger.Generate(context.Background(), text)
	require.NoError(t, err)

	// alpha (3) before beta (2) before gamma (1).
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, tags)
}

func TestGenerate_StopWordsFiltered(t *testing.T) {
	tagger := New(Config{ExtraStopWords: []string{"banana"}})
	text := "the banana and the orchard with the banana harvest"

	tags, _, err := tagger.Generate(context.Background(), text)
	require.NoError(t, err)
	assert.NotContains(t, tags, "the")
	assert.NotContains(t, tags, "and")
	assert.NotContains(t, tags, "banana")
	assert.Contains(t, tags, "orchard")
}

func TestSummarize_Budget(t *testing.T) {
	tagger := New(Config{})
	long := strings.Repeat("words in a sentence ", 20)

	summary := tagger.Summarize(long)

	trimmed := strings.TrimSuffix(summary, "...")
	assert.True(t, strings.HasSuffix(summary, "..."))
	assert.LessOrEqual(t, len(trimmed), domain.SummaryBudget)
	// Prefix-derived: everything before the marker appears verbatim
	// at the start of the input.
	assert.True(t, strings.HasPrefix(long, trimmed))
}

func TestSummarize_ShortTextUntouched(t *testing.T) {
	tagger := New(Config{})
	assert.Equal(t, "A short note.", tagger.Summarize("A short note."))
	assert.Equal(t, "", tagger.Summarize("   "))
}

func TestSummarize_WordBoundary(t *testing.T) {
	tagger := New(Config{SummaryBudget: 20})
	summary := tagger.Summarize("incomprehensibility is a long word here")

	// No mid-word cut: the part before the marker ends on a whole word.
	trimmed := strings.TrimSuffix(summary, "...")
	for _, w := range strings.Fields(trimmed) {
		assert.Contains(t, []string{"incomprehensibility", "is", "a", "long", "word", "here"}, w)
	}
}

func TestGenerate_NoQualifyingTokens(t *testing.T) {
	tagger := New(Config{})
	// Only stop words and short tokens: empty tag list is not an error.
	tags, summary, err := tagger.Generate(context.Background(), "it is to be as of an")
	require.NoError(t, err)
	assert.Empty(t, tags)
	assert.Equal(t, "it is to be as of an", summary)
}
