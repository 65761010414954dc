package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

var statsTopTags int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsTopTags, "tags", 10, "number of top tags to show")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	stats, err := statsService.Stats(cmd.Context(), statsTopTags)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	cmd.Printf("Documents: %d\n", stats.TotalDocuments)

	if len(stats.ByFileType) > 0 {
		cmd.Println("\nBy type:")
		types := make([]string, 0, len(stats.ByFileType))
		for t := range stats.ByFileType {
			types = append(types, string(t))
		}
		sort.Strings(types)
		for _, t := range types {
			cmd.Printf("  %-6s %d\n", t, stats.ByFileType[domain.FileType(t)])
		}
	}

	if len(stats.TopTags) > 0 {
		cmd.Println("\nTop tags:")
		for _, tc := range stats.TopTags {
			cmd.Printf("  %-20s %d\n", tc.Tag, tc.Count)
		}
	}
	return nil
}
