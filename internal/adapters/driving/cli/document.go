package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	listLimit   int
	showContent bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents by recency",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var retagCmd = &cobra.Command{
	Use:   "retag [doc-id]",
	Short: "Regenerate tags and summary for a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runRetag,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document",
	Long:  `Removes a document and, when present, the stored copy of its original file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "maximum number of documents (0 = all)")
	showCmd.Flags().BoolVarP(&showContent, "content", "c", false, "print the full content")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(retagCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	docs, err := libraryService.List(cmd.Context(), listLimit)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("The library is empty.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s (%s)\n", docs[i].Title, docs[i].FileType)
		if len(docs[i].Tags) > 0 {
			cmd.Printf("    Tags:  %s\n", strings.Join(docs[i].Tags, ", "))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d document(s)\n", len(docs))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	doc, err := libraryService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:    %s\n", doc.Title)
	cmd.Printf("  Type:     %s\n", doc.FileType)
	if doc.FilePath != "" {
		cmd.Printf("  File:     %s\n", doc.FilePath)
	}
	if doc.Degraded {
		cmd.Println("  Degraded: yes (no text extracted)")
	}
	if len(doc.Tags) > 0 {
		cmd.Printf("  Tags:     %s\n", strings.Join(doc.Tags, ", "))
	}
	if doc.Summary != "" {
		cmd.Printf("  Summary:  %s\n", doc.Summary)
	}
	cmd.Printf("  Created:  %s\n", doc.CreatedAt.Format("2006-01-02 15:04:05"))
	cmd.Printf("  Updated:  %s\n", doc.UpdatedAt.Format("2006-01-02 15:04:05"))

	if showContent && doc.Content != "" {
		cmd.Println()
		cmd.Println(doc.Content)
	}
	return nil
}

func runRetag(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	doc, err := libraryService.Regenerate(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to regenerate metadata: %w", err)
	}

	cmd.Printf("Regenerated metadata for %s\n", doc.ID)
	if len(doc.Tags) > 0 {
		cmd.Printf("  Tags:    %s\n", strings.Join(doc.Tags, ", "))
	}
	if doc.Summary != "" {
		cmd.Printf("  Summary: %s\n", doc.Summary)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	if err := libraryService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Deleted document %s\n", args[0])
	return nil
}
