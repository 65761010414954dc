package driving

import (
	"context"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

// StatsService aggregates collection-level counts on demand.
type StatsService interface {
	// Stats returns total document count, counts per file type, and the
	// topTags most frequent tags.
	Stats(ctx context.Context, topTags int) (*domain.Stats, error)
}
