package cli

import (
	"github.com/cerebra-labs/cerebra-cli/internal/adapters/driven/storage/memory"
	"github.com/cerebra-labs/cerebra-cli/internal/core/services"
	"github.com/cerebra-labs/cerebra-cli/internal/extractors"
	"github.com/cerebra-labs/cerebra-cli/internal/extractors/markdown"
	"github.com/cerebra-labs/cerebra-cli/internal/extractors/plaintext"
	"github.com/cerebra-labs/cerebra-cli/internal/taggers/keyword"
)

// setupTestServices wires real services over an in-memory store and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	prevLibrary := libraryService
	prevSearch := searchService
	prevStats := statsService
	prevIngest := ingestService
	prevBlobDir := blobDir

	store := memory.NewDocumentStore()
	registry := extractors.NewRegistry()
	registry.Register(plaintext.New())
	registry.Register(markdown.New())

	library := services.NewLibraryService(store, registry, keyword.New(keyword.Config{}))

	libraryService = library
	searchService = services.NewSearchService(store)
	statsService = services.NewStatsService(store)
	ingestService = services.NewIngestService(library, 1)
	blobDir = ""

	return func() {
		libraryService = prevLibrary
		searchService = prevSearch
		statsService = prevStats
		ingestService = prevIngest
		blobDir = prevBlobDir
	}
}
