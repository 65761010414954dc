package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driving"
)

var uploadNoCopy bool

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload a file into the library",
	Long: `Extracts text from the file (txt, md, pdf or image), derives tags
and a summary, and stores the result. Extraction problems never fail the
upload: the document is stored degraded, with a diagnostic.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().BoolVar(&uploadNoCopy, "no-copy", false, "do not keep a copy of the original file")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if libraryService == nil {
		return errors.New("library service not configured")
	}

	path := args[0]
	fileType, err := domain.FileTypeForPath(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	storePath := ""
	if !uploadNoCopy && blobDir != "" {
		storePath, err = storeBlob(path, content)
		if err != nil {
			return fmt.Errorf("storing copy: %w", err)
		}
	}

	doc, err := libraryService.UploadFile(cmd.Context(), driving.UploadInput{
		Name:      filepath.Base(path),
		FileType:  fileType,
		Content:   content,
		StorePath: storePath,
	})
	if err != nil {
		if storePath != "" {
			os.Remove(storePath)
		}
		return fmt.Errorf("uploading %s: %w", path, err)
	}

	cmd.Printf("Uploaded %s as %s\n", filepath.Base(path), doc.ID)
	cmd.Printf("  Title: %s\n", doc.Title)
	if len(doc.Tags) > 0 {
		cmd.Printf("  Tags:  %s\n", strings.Join(doc.Tags, ", "))
	}
	if doc.Degraded {
		cmd.Println("  Note: no text could be extracted; stored without content.")
	}
	return nil
}

// storeBlob writes a copy of the original file under the blob directory.
func storeBlob(path string, content []byte) (string, error) {
	if err := os.MkdirAll(blobDir, 0700); err != nil {
		return "", err
	}
	name := uuid.NewString() + filepath.Ext(path)
	dest := filepath.Join(blobDir, name)
	if err := os.WriteFile(dest, content, 0600); err != nil {
		return "", err
	}
	return dest, nil
}
