package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cerebra-labs/cerebra-cli/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and ingest new or changed files",
	Long: `Watches the directory tree and ingests supported files as they are
created or modified. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher := watch.New(args[0])
	defer watcher.Close()

	changes, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("starting watch: %w", err)
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])

	for change := range changes {
		switch change.Type {
		case watch.ChangeCreated, watch.ChangeUpdated:
			if err := ingestService.IngestFile(ctx, change.Path); err != nil {
				cmd.PrintErrf("ingesting %s: %v\n", change.Path, err)
				continue
			}
			cmd.Printf("Ingested %s\n", change.Path)
		case watch.ChangeRemoved:
			// Removal does not touch stored documents; the library is
			// an archive, not a mirror.
		}
	}

	return nil
}
