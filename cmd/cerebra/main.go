package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cerebra-labs/cerebra-cli/internal/adapters/driven/config/file"
	"github.com/cerebra-labs/cerebra-cli/internal/adapters/driven/storage/sqlite"
	"github.com/cerebra-labs/cerebra-cli/internal/adapters/driving/cli"
	"github.com/cerebra-labs/cerebra-cli/internal/core/services"
	"github.com/cerebra-labs/cerebra-cli/internal/extractors"
	"github.com/cerebra-labs/cerebra-cli/internal/extractors/image"
	"github.com/cerebra-labs/cerebra-cli/internal/extractors/markdown"
	"github.com/cerebra-labs/cerebra-cli/internal/extractors/pdf"
	"github.com/cerebra-labs/cerebra-cli/internal/extractors/plaintext"
	"github.com/cerebra-labs/cerebra-cli/internal/taggers"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := sqlite.NewStore(cfg.GetString("storage.data_dir"))
	if err != nil {
		return fmt.Errorf("opening document store: %w", err)
	}
	defer store.Close()

	registry := extractors.NewRegistry()
	registry.Register(plaintext.New())
	registry.Register(markdown.New())
	registry.Register(pdf.New())
	registry.Register(image.New())

	tagging, err := taggers.Init(taggers.Settings{
		Strategy:       cfg.GetString("tagger.strategy"),
		OllamaBaseURL:  cfg.GetString("embedding.base_url"),
		OllamaModel:    cfg.GetString("embedding.model"),
		MaxTags:        cfg.GetInt("tagger.max_tags"),
		SummaryBudget:  cfg.GetInt("tagger.summary_budget"),
		ExtraStopWords: cfg.GetStringSlice("tagger.stop_words"),
	})
	if err != nil {
		return fmt.Errorf("initialising tagger: %w", err)
	}
	defer tagging.Close()

	for _, warning := range tagging.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	library := services.NewLibraryService(store, registry, tagging.Tagger)

	cli.SetServices(&cli.Services{
		Library: library,
		Search:  services.NewSearchService(store),
		Stats:   services.NewStatsService(store),
		Ingest:  services.NewIngestService(library, cfg.GetInt("ingest.workers")),
		Config:  cfg,
		BlobDir: filepath.Join(home, ".cerebra", "blobs"),
	})
	cli.SetVersion(version)

	return cli.Execute()
}
