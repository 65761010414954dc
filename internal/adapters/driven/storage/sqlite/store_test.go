package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testDocument(id string, updatedAt time.Time) *domain.Document {
	return &domain.Document{
		ID:        id,
		Title:     "Title " + id,
		Content:   "Content for " + id,
		FileType:  domain.FileTypeNote,
		Tags:      []string{"alpha", "beta"},
		Summary:   "Summary for " + id,
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func TestSaveAndGetDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	doc := &domain.Document{
		ID:        "doc-1",
		Title:     "Meeting Notes",
		Content:   "Agenda and action items",
		FileType:  domain.FileTypeMarkdown,
		FilePath:  "/tmp/notes.md",
		Degraded:  false,
		Tags:      []string{"meeting", "agenda"},
		Summary:   "Agenda and action items",
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.Content, got.Content)
	assert.Equal(t, domain.FileTypeMarkdown, got.FileType)
	assert.Equal(t, doc.FilePath, got.FilePath)
	assert.False(t, got.Degraded)
	assert.Equal(t, doc.Tags, got.Tags)
	assert.Equal(t, doc.Summary, got.Summary)
}

func TestSaveDocument_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("doc-1", time.Now().UTC())
	require.NoError(t, store.SaveDocument(ctx, doc))

	doc.Title = "Updated Title"
	doc.Tags = []string{"gamma"}
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", got.Title)
	assert.Equal(t, []string{"gamma"}, got.Tags)

	count, err := store.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSaveDocument_EmptyID(t *testing.T) {
	store := newTestStore(t)
	err := store.SaveDocument(context.Background(), &domain.Document{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSaveDocument_DegradedAndEmptyTags(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        "doc-degraded",
		Title:     "scan.pdf",
		FileType:  domain.FileTypePDF,
		Degraded:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.SaveDocument(ctx, doc))

	got, err := store.GetDocument(ctx, "doc-degraded")
	require.NoError(t, err)
	assert.True(t, got.Degraded)
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.Content)
}

func TestGetDocument_NotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetDocument(context.Background(), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListDocuments_OrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-b", base.Add(-2*time.Minute))))
	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-c", base)))
	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-a", base.Add(-1*time.Minute))))
	// Same timestamp as doc-c: tie broken by ID ascending.
	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-d", base)))

	docs, err := store.ListDocuments(ctx, 0)
	require.NoError(t, err)
	require.Len(t, docs, 4)
	assert.Equal(t, "doc-c", docs[0].ID)
	assert.Equal(t, "doc-d", docs[1].ID)
	assert.Equal(t, "doc-a", docs[2].ID)
	assert.Equal(t, "doc-b", docs[3].ID)

	limited, err := store.ListDocuments(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "doc-c", limited[0].ID)
	assert.Equal(t, "doc-d", limited[1].ID)
}

func TestUpdateMetadata(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-1", created)))

	require.NoError(t, store.UpdateMetadata(ctx, "doc-1", []string{"fresh"}, "new summary"))

	got, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, got.Tags)
	assert.Equal(t, "new summary", got.Summary)
	assert.True(t, got.UpdatedAt.After(created))
}

func TestUpdateMetadata_NotFound(t *testing.T) {
	store := newTestStore(t)
	err := store.UpdateMetadata(context.Background(), "missing", nil, "")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDeleteDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-1", time.Now().UTC())))
	require.NoError(t, store.DeleteDocument(ctx, "doc-1"))

	_, err := store.GetDocument(ctx, "doc-1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.True(t, errors.Is(store.DeleteDocument(ctx, "doc-1"), domain.ErrNotFound))
}

func TestCountDocuments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	count, err := store.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-1", time.Now().UTC())))
	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-2", time.Now().UTC())))

	count, err = store.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveDocument(ctx, testDocument("doc-1", time.Now().UTC())))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", got.ID)
}
