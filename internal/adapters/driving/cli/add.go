package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driving"
)

var addTitle string

var addCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a quick note",
	Long: `Adds a note to the library. The note runs through the tagging
pipeline like any other document. Content is taken from the argument,
or from stdin when the argument is "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "note title (default: first line of content)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	var content string
	if len(args) == 1 {
		content = args[0]
		if content == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			content = string(data)
		}
	}

	doc, err := libraryService.AddNote(cmd.Context(), driving.NoteInput{
		Title:   addTitle,
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("adding note: %w", err)
	}

	cmd.Printf("Added note %s\n", doc.ID)
	cmd.Printf("  Title: %s\n", doc.Title)
	if len(doc.Tags) > 0 {
		cmd.Printf("  Tags:  %s\n", strings.Join(doc.Tags, ", "))
	}
	return nil
}
