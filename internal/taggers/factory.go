package taggers

import (
	"context"
	"fmt"
	"time"

	"github.com/cerebra-labs/cerebra-cli/internal/adapters/driven/embedding/ollama"
	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
	"github.com/cerebra-labs/cerebra-cli/internal/taggers/embedding"
	"github.com/cerebra-labs/cerebra-cli/internal/taggers/keyword"
)

// Strategy names accepted in configuration.
const (
	StrategyKeyword   = "keyword"
	StrategyEmbedding = "embedding"
)

// pingTimeout is the maximum time to wait for backend connectivity validation.
const pingTimeout = 5 * time.Second

// Settings selects and configures the tagging strategy.
type Settings struct {
	// Strategy is "keyword" or "embedding" (default: keyword).
	Strategy string

	// OllamaBaseURL overrides the embedding backend URL.
	OllamaBaseURL string

	// OllamaModel overrides the embedding model.
	OllamaModel string

	// MaxTags overrides the tag bound (default domain.MaxTags).
	MaxTags int

	// SummaryBudget overrides the summary length (default domain.SummaryBudget).
	SummaryBudget int

	// ExtraStopWords extends the keyword strategy's stop-word set.
	ExtraStopWords []string
}

// InitResult contains the result of tagger initialisation.
type InitResult struct {
	Tagger           driven.Tagger
	EmbeddingService driven.EmbeddingService // Nil when the keyword strategy is active.
	Warnings         []string                // Non-fatal issues that caused fallback.
	FellBack         bool                    // True if fell back to the keyword strategy.
}

// Close releases resources held by InitResult.
func (r *InitResult) Close() {
	if r.EmbeddingService != nil {
		r.EmbeddingService.Close()
	}
}

// Init builds the configured tagger. The embedding strategy requires a
// reachable backend; when it is unavailable Init falls back to the
// keyword strategy with a warning instead of failing, so ingestion
// always has a working tagger.
func Init(settings Settings) (*InitResult, error) {
	fallback := keyword.New(keyword.Config{
		MaxTags:        settings.MaxTags,
		SummaryBudget:  settings.SummaryBudget,
		ExtraStopWords: settings.ExtraStopWords,
	})

	switch settings.Strategy {
	case "", StrategyKeyword:
		return &InitResult{Tagger: fallback}, nil

	case StrategyEmbedding:
		svc, err := createAndValidateEmbeddingService(settings)
		if err != nil {
			return &InitResult{
				Tagger:   fallback,
				Warnings: []string{err.Error()},
				FellBack: true,
			}, nil
		}
		return &InitResult{
			Tagger:           embedding.New(svc, fallback),
			EmbeddingService: svc,
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown tagger strategy %q", domain.ErrInvalidInput, settings.Strategy)
	}
}

// createAndValidateEmbeddingService creates the embedding backend and
// validates connectivity before handing it out.
func createAndValidateEmbeddingService(settings Settings) (driven.EmbeddingService, error) {
	svc := ollama.NewEmbeddingService(ollama.Config{
		BaseURL: settings.OllamaBaseURL,
		Model:   settings.OllamaModel,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w)", domain.ErrEmbeddingUnavailable, err)
	}

	return svc, nil
}
