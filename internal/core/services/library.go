package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driving"
	"github.com/cerebra-labs/cerebra-cli/internal/logger"
)

// defaultNoteTitle is used when no title can be derived from a note.
const defaultNoteTitle = "Quick Note"

// noteTitleLimit caps a title derived from the first line of a note.
const noteTitleLimit = 50

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// LibraryService manages the document collection. Ingestion runs the
// extract/tag pipeline; degraded extractions still produce documents.
type LibraryService struct {
	store    driven.DocumentStore
	registry driven.ExtractorRegistry
	tagger   driven.Tagger
}

// NewLibraryService creates a new library service.
func NewLibraryService(
	store driven.DocumentStore,
	registry driven.ExtractorRegistry,
	tagger driven.Tagger,
) *LibraryService {
	return &LibraryService{
		store:    store,
		registry: registry,
		tagger:   tagger,
	}
}

// AddNote runs a manual note through the tagging pipeline and stores it.
func (s *LibraryService) AddNote(ctx context.Context, note driving.NoteInput) (*domain.Document, error) {
	title := strings.TrimSpace(note.Title)
	content := strings.TrimSpace(note.Content)
	if title == "" && content == "" {
		return nil, fmt.Errorf("%w: note needs a title or content", domain.ErrInvalidInput)
	}

	if title == "" {
		title = titleFromContent(content)
	}

	tags, summary := s.generateMetadata(ctx, content)

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		FileType:  domain.FileTypeNote,
		Tags:      tags,
		Summary:   summary,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}

	logger.Debug("stored note %s (%d tags)", doc.ID, len(doc.Tags))
	return doc, nil
}

// UploadFile extracts text from raw bytes, tags it, and stores the result.
// A degraded extraction still creates the document, with Degraded set.
func (s *LibraryService) UploadFile(ctx context.Context, upload driving.UploadInput) (*domain.Document, error) {
	if !upload.FileType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, upload.FileType)
	}

	extractor, err := s.registry.ForType(upload.FileType)
	if err != nil {
		return nil, err
	}

	result, err := extractor.Extract(ctx, &driven.RawInput{
		Name:     upload.Name,
		FileType: upload.FileType,
		Content:  upload.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", upload.Name, err)
	}

	degraded := result.Status == driven.StatusDegraded
	if degraded {
		logger.Warn("degraded extraction for %s: %s", upload.Name, result.Diagnostic)
	}

	tags, summary := s.generateMetadata(ctx, result.Text)

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        uuid.NewString(),
		Title:     result.Title,
		Content:   result.Text,
		FileType:  upload.FileType,
		FilePath:  upload.StorePath,
		Degraded:  degraded,
		Tags:      tags,
		Summary:   summary,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}

	logger.Debug("stored document %s from %s (degraded=%t)", doc.ID, upload.Name, degraded)
	return doc, nil
}

// Get retrieves a document by ID.
func (s *LibraryService) Get(ctx context.Context, id string) (*domain.Document, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.GetDocument(ctx, id)
}

// List returns documents by recency, capped by limit (<= 0 means all).
func (s *LibraryService) List(ctx context.Context, limit int) ([]domain.Document, error) {
	return s.store.ListDocuments(ctx, limit)
}

// Regenerate re-runs the tagger over stored content and updates tags
// and summary.
func (s *LibraryService) Regenerate(ctx context.Context, id string) (*domain.Document, error) {
	doc, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, summary := s.generateMetadata(ctx, doc.Content)

	if err := s.store.UpdateMetadata(ctx, id, tags, summary); err != nil {
		return nil, fmt.Errorf("updating metadata: %w", err)
	}

	return s.store.GetDocument(ctx, id)
}

// Delete removes a document and, if present, its raw-file blob.
func (s *LibraryService) Delete(ctx context.Context, id string) error {
	doc, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteDocument(ctx, id); err != nil {
		return err
	}

	if doc.FilePath != "" {
		if err := os.Remove(doc.FilePath); err != nil && !os.IsNotExist(err) {
			logger.Warn("removing blob %s: %v", doc.FilePath, err)
		}
	}

	return nil
}

// generateMetadata tags the text. Tagging problems degrade to empty
// metadata rather than failing ingestion.
func (s *LibraryService) generateMetadata(ctx context.Context, text string) (tags []string, summary string) {
	tags, summary, err := s.tagger.Generate(ctx, text)
	if err != nil {
		logger.Warn("tagging failed, storing without metadata: %v", err)
		return nil, ""
	}
	return tags, summary
}

// titleFromContent derives a note title from the first line of content.
func titleFromContent(content string) string {
	line := content
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultNoteTitle
	}

	runes := []rune(line)
	if len(runes) > noteTitleLimit {
		line = strings.TrimSpace(string(runes[:noteTitleLimit]))
	}
	return line
}
