package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebra-labs/cerebra-cli/internal/adapters/driven/storage/memory"
	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

func seedSearchDocs(t *testing.T, store *memory.DocumentStore) {
	t.Helper()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	docs := []domain.Document{
		{
			ID:        "doc-budget",
			Title:     "Quarterly budget review",
			Content:   "Numbers for Q3 and projections.",
			Summary:   "Numbers for Q3",
			FileType:  domain.FileTypeNote,
			Tags:      []string{"finance", "meeting"},
			UpdatedAt: base.Add(3 * time.Hour),
		},
		{
			ID:        "doc-recipe",
			Title:     "Bread recipe",
			Content:   "Flour, water, salt, yeast. Budget friendly.",
			Summary:   "Flour, water, salt",
			FileType:  domain.FileTypeMarkdown,
			Tags:      []string{"recipe", "food"},
			UpdatedAt: base.Add(2 * time.Hour),
		},
		{
			ID:        "doc-research",
			Title:     "Research findings",
			Content:   "The study shows budget constraints affect outcomes.",
			Summary:   "Budget constraints study",
			FileType:  domain.FileTypeText,
			Tags:      []string{"research", "financial-planning"},
			UpdatedAt: base.Add(1 * time.Hour),
		},
	}
	for i := range docs {
		docs[i].CreatedAt = docs[i].UpdatedAt
		require.NoError(t, store.SaveDocument(context.Background(), &docs[i]))
	}
}

func newTestSearch(t *testing.T) (*SearchService, *memory.DocumentStore) {
	t.Helper()
	store := memory.NewDocumentStore()
	return NewSearchService(store), store
}

func TestSearch_FullTextRankedByFieldHits(t *testing.T) {
	svc, store := newTestSearch(t)
	seedSearchDocs(t, store)

	docs, err := svc.Search(context.Background(), "budget", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// doc-budget hits title+content+summary (3), doc-research
	// content+summary (2), doc-recipe content only (1).
	assert.Equal(t, "doc-budget", docs[0].ID)
	assert.Equal(t, "doc-research", docs[1].ID)
	assert.Equal(t, "doc-recipe", docs[2].ID)
}

func TestSearch_FullTextTiesBrokenByRecency(t *testing.T) {
	svc, store := newTestSearch(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"doc-old", "doc-new"} {
		require.NoError(t, store.SaveDocument(ctx, &domain.Document{
			ID:        id,
			Title:     "identical words",
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	docs, err := svc.Search(ctx, "identical", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-new", docs[0].ID)
	assert.Equal(t, "doc-old", docs[1].ID)
}

func TestSearch_TagsExactBeforeSubstring(t *testing.T) {
	svc, store := newTestSearch(t)
	seedSearchDocs(t, store)

	docs, err := svc.Search(context.Background(), "finance", domain.SearchOptions{Mode: domain.SearchModeTags})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Exact tag "finance" beats substring match "financial-planning",
	// despite doc-research being older.
	assert.Equal(t, "doc-budget", docs[0].ID)
	assert.Equal(t, "doc-research", docs[1].ID)
}

func TestSearch_TagsCaseInsensitive(t *testing.T) {
	svc, store := newTestSearch(t)
	seedSearchDocs(t, store)

	docs, err := svc.Search(context.Background(), "FOOD", domain.SearchOptions{Mode: domain.SearchModeTags})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-recipe", docs[0].ID)
}

func TestSearch_SimpleMatchesTitleOnly(t *testing.T) {
	svc, store := newTestSearch(t)
	seedSearchDocs(t, store)

	// "budget" appears in doc-research's content but not its title.
	docs, err := svc.Search(context.Background(), "budget", domain.SearchOptions{Mode: domain.SearchModeSimple})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-budget", docs[0].ID)
}

func TestSearch_EmptyQueryBrowsesByRecency(t *testing.T) {
	svc, store := newTestSearch(t)
	seedSearchDocs(t, store)

	docs, err := svc.Search(context.Background(), "   ", domain.SearchOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-budget", docs[0].ID)
	assert.Equal(t, "doc-recipe", docs[1].ID)
}

func TestSearch_NoMatchesReturnsEmptySlice(t *testing.T) {
	svc, store := newTestSearch(t)
	seedSearchDocs(t, store)

	docs, err := svc.Search(context.Background(), "zeppelin", domain.SearchOptions{})
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestSearch_InvalidMode(t *testing.T) {
	svc, _ := newTestSearch(t)

	_, err := svc.Search(context.Background(), "query", domain.SearchOptions{Mode: domain.SearchMode("vector")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSearch_DefaultLimit(t *testing.T) {
	svc, store := newTestSearch(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < domain.DefaultSearchLimit+5; i++ {
		require.NoError(t, store.SaveDocument(ctx, &domain.Document{
			ID:        fmt.Sprintf("doc-%03d", i),
			Title:     "common title",
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	docs, err := svc.Search(ctx, "common", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Len(t, docs, domain.DefaultSearchLimit)
}

func TestSearch_Deterministic(t *testing.T) {
	svc, store := newTestSearch(t)
	seedSearchDocs(t, store)
	ctx := context.Background()

	first, err := svc.Search(ctx, "budget", domain.SearchOptions{})
	require.NoError(t, err)
	second, err := svc.Search(ctx, "budget", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
