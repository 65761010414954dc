package driving

import (
	"context"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

// SearchService answers queries over the document collection.
// Each call is stateless given the current store contents.
type SearchService interface {
	// Search returns ranked documents for the query under the mode in opts.
	// An empty query is a browse: the most recent documents up to the
	// limit. An empty result set is returned as an empty slice, never an
	// error. Unknown modes return domain.ErrInvalidInput.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Document, error)
}
