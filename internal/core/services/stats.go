package services

import (
	"context"
	"sort"
	"strings"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driving"
)

// defaultTopTags is the number of tags reported when no count is given.
const defaultTopTags = 10

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// StatsService aggregates collection-level counts on demand.
type StatsService struct {
	store driven.DocumentStore
}

// NewStatsService creates a new stats service.
func NewStatsService(store driven.DocumentStore) *StatsService {
	return &StatsService{store: store}
}

// Stats returns total document count, counts per file type, and the
// topTags most frequent tags. A topTags <= 0 reports the default count.
func (s *StatsService) Stats(ctx context.Context, topTags int) (*domain.Stats, error) {
	if topTags <= 0 {
		topTags = defaultTopTags
	}

	docs, err := s.store.ListDocuments(ctx, 0)
	if err != nil {
		return nil, err
	}

	byType := make(map[domain.FileType]int)
	tagCounts := make(map[string]int)
	for _, doc := range docs {
		byType[doc.FileType]++
		for _, tag := range doc.Tags {
			tagCounts[strings.ToLower(tag)]++
		}
	}

	counts := make([]domain.TagCount, 0, len(tagCounts))
	for tag, count := range tagCounts {
		counts = append(counts, domain.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Tag < counts[j].Tag
	})
	if len(counts) > topTags {
		counts = counts[:topTags]
	}

	return &domain.Stats{
		TotalDocuments: len(docs),
		ByFileType:     byType,
		TopTags:        counts,
	}, nil
}
