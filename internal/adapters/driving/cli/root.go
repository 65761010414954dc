// Package cli implements the cerebra command-line interface.
// Commands are thin shells over the driving ports; services are
// injected once at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driving"
	"github.com/cerebra-labs/cerebra-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Injected services. Commands check for nil so the binary degrades to a
// clear error instead of panicking when wiring is incomplete.
var (
	libraryService driving.LibraryService
	searchService  driving.SearchService
	statsService   driving.StatsService
	ingestService  driving.IngestService
	configStore    driven.ConfigStore

	// blobDir is where upload keeps raw-file copies. Empty disables copies.
	blobDir string
)

// verbose toggles debug logging, bound to the --verbose flag.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cerebra",
	Short: "A personal knowledge base with automatic tagging and search",
	Long: `Cerebra is a local-first knowledge base. It ingests notes and files
(txt, md, pdf, images), derives tags and summaries automatically, and
answers full-text, tag and title searches over the collection.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

// Services bundles everything the CLI needs.
type Services struct {
	Library driving.LibraryService
	Search  driving.SearchService
	Stats   driving.StatsService
	Ingest  driving.IngestService
	Config  driven.ConfigStore

	// BlobDir is the directory for raw-file copies of uploads.
	BlobDir string
}

// SetServices injects the service implementations used by all commands.
func SetServices(s *Services) {
	libraryService = s.Library
	searchService = s.Search
	statsService = s.Stats
	ingestService = s.Ingest
	configStore = s.Config
	blobDir = s.BlobDir
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
