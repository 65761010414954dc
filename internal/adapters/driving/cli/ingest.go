package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [directory]",
	Short: "Ingest every supported file in a directory",
	Long: `Walks the directory recursively and uploads every txt, md, pdf and
image file through the extraction pipeline. Files that fail are reported
and skipped; the run continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	report, err := ingestService.IngestDirectory(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %d file(s), skipped %d unsupported\n", report.Ingested, report.Skipped)
	if len(report.Failed) > 0 {
		cmd.Printf("Failed %d file(s):\n", len(report.Failed))
		for _, f := range report.Failed {
			cmd.Printf("  %s: %s\n", f.Path, f.Reason)
		}
	}
	return nil
}
