package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driving"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers queries over the document collection. Matching
// and ranking are deterministic: the same store contents and query
// always yield the same ordering.
type SearchService struct {
	store driven.DocumentStore
}

// NewSearchService creates a new search service.
func NewSearchService(store driven.DocumentStore) *SearchService {
	return &SearchService{store: store}
}

// Search returns ranked documents for the query under the mode in opts.
// An empty query is a browse: the most recent documents up to the limit.
func (s *SearchService) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Document, error) {
	mode := opts.Mode
	if mode == "" {
		mode = domain.SearchModeFullText
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: search mode %q", domain.ErrInvalidInput, opts.Mode)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	query = strings.TrimSpace(query)
	if query == "" {
		docs, err := s.store.ListDocuments(ctx, limit)
		if err != nil {
			return nil, err
		}
		return nonNil(docs), nil
	}

	// The store lists by UpdatedAt descending, ID ascending; stable
	// sorting below preserves that order within equal ranks.
	docs, err := s.store.ListDocuments(ctx, 0)
	if err != nil {
		return nil, err
	}

	var matched []domain.Document
	switch mode {
	case domain.SearchModeFullText:
		matched = rankFullText(docs, query)
	case domain.SearchModeTags:
		matched = rankTags(docs, query)
	case domain.SearchModeSimple:
		matched = rankSimple(docs, query)
	}

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return nonNil(matched), nil
}

// rankFullText matches title, content and summary, ranked by the number
// of fields hit.
func rankFullText(docs []domain.Document, query string) []domain.Document {
	q := strings.ToLower(query)

	type hit struct {
		doc   domain.Document
		score int
	}
	var hits []hit
	for _, doc := range docs {
		score := 0
		for _, field := range []string{doc.Title, doc.Content, doc.Summary} {
			if strings.Contains(strings.ToLower(field), q) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, hit{doc: doc, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	result := make([]domain.Document, len(hits))
	for i, h := range hits {
		result[i] = h.doc
	}
	return result
}

// rankTags matches tag entries; exact tag matches rank before substring
// matches.
func rankTags(docs []domain.Document, query string) []domain.Document {
	q := strings.ToLower(query)

	var exact, partial []domain.Document
	for _, doc := range docs {
		switch tagMatch(doc.Tags, q) {
		case matchExact:
			exact = append(exact, doc)
		case matchPartial:
			partial = append(partial, doc)
		}
	}
	return append(exact, partial...)
}

type tagMatchKind int

const (
	matchNone tagMatchKind = iota
	matchPartial
	matchExact
)

// tagMatch returns the strongest match kind across the document's tags.
func tagMatch(tags []string, q string) tagMatchKind {
	best := matchNone
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		if lower == q {
			return matchExact
		}
		if strings.Contains(lower, q) {
			best = matchPartial
		}
	}
	return best
}

// rankSimple matches the title only, keeping recency order.
func rankSimple(docs []domain.Document, query string) []domain.Document {
	q := strings.ToLower(query)

	var matched []domain.Document
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Title), q) {
			matched = append(matched, doc)
		}
	}
	return matched
}

// nonNil normalises a nil slice to an empty one.
func nonNil(docs []domain.Document) []domain.Document {
	if docs == nil {
		return []domain.Document{}
	}
	return docs
}
