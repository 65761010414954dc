package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_HasFlags(t *testing.T) {
	limit := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "n", limit.Shorthand)

	mode := searchCmd.Flags().Lookup("mode")
	require.NotNil(t, mode)
	assert.Equal(t, "m", mode.Shorthand)

	require.NotNil(t, searchCmd.Flags().Lookup("json"))
}

func TestSearchCmd_FindsAddedNote(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("add", "--title", "Budget planning", "Quarterly budget and expense review")
	require.NoError(t, err)

	out, err := execute("search", "budget")
	require.NoError(t, err)
	assert.Contains(t, out, "Results:")
	assert.Contains(t, out, "Budget planning")
	assert.Contains(t, out, "finance")
}

func TestSearchCmd_TagsMode(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { searchMode = "" }()

	_, err := execute("add", "--title", "Standup", "Meeting agenda and action items for the team")
	require.NoError(t, err)

	out, err := execute("search", "--mode", "tags", "meeting")
	require.NoError(t, err)
	assert.Contains(t, out, "Standup")
}

func TestSearchCmd_EmptyQueryBrowses(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("add", "--title", "Recent note", "some content")
	require.NoError(t, err)

	out, err := execute("search")
	require.NoError(t, err)
	assert.Contains(t, out, "Recent note")
}

func TestSearchCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("search", "zeppelin")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_InvalidMode(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { searchMode = "" }()

	_, err := execute("search", "--mode", "vector", "query")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid search mode")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { searchJSON = false }()

	_, err := execute("add", "--title", "JSON note", "content for json output")
	require.NoError(t, err)

	out, err := execute("search", "--json", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "\"Title\"")
	assert.Contains(t, out, "JSON note")
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	prev := searchService
	searchService = nil
	defer func() { searchService = prev }()

	_, err := execute("search", "query")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestOutputSearchTable_FallsBackToID(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchTable(rootCmd, []domain.Document{{ID: "doc-123", FileType: domain.FileTypeNote}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "doc-123")
}
