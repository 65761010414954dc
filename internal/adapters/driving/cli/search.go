package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

var (
	searchMode  string
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the library",
	Long: `Searches stored documents. Three modes are available:

  fulltext  match title, content and summary (default)
  tags      match tag entries, exact tags first
  simple    match the title only

An empty query browses the most recent documents.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", "", "search mode: fulltext, tags or simple")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	mode, err := domain.ParseSearchMode(searchMode)
	if err != nil {
		return fmt.Errorf("invalid search mode %q (use fulltext, tags or simple)", searchMode)
	}

	docs, err := searchService.Search(cmd.Context(), query, domain.SearchOptions{
		Mode:  mode,
		Limit: searchLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, docs)
	}
	return outputSearchTable(cmd, docs)
}

func outputSearchJSON(cmd *cobra.Command, docs []domain.Document) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, docs []domain.Document) error {
	if len(docs) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range docs {
		title := docs[i].Title
		if title == "" {
			title = docs[i].ID
		}

		cmd.Printf("  [%d] %s (%s)\n", i+1, title, docs[i].FileType)
		if len(docs[i].Tags) > 0 {
			cmd.Printf("      Tags: %s\n", strings.Join(docs[i].Tags, ", "))
		}
		if docs[i].Summary != "" {
			cmd.Printf("      %s\n", docs[i].Summary)
		}
		cmd.Println()
	}

	return nil
}
