package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// MaxTags bounds the number of tags a document may carry.
const MaxTags = 10

// SummaryBudget is the maximum length of a derived summary in characters,
// excluding the truncation marker.
const SummaryBudget = 150

// FileType describes the declared format of an ingested document.
type FileType string

const (
	// FileTypeNote is a manually entered note (no backing file).
	FileTypeNote FileType = "note"
	// FileTypeText is a plain text file.
	FileTypeText FileType = "txt"
	// FileTypeMarkdown is a Markdown file.
	FileTypeMarkdown FileType = "md"
	// FileTypePDF is a PDF file.
	FileTypePDF FileType = "pdf"
	// FileTypeImage is an image file processed via OCR.
	FileTypeImage FileType = "image"
)

// Valid reports whether the file type is one of the supported values.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeNote, FileTypeText, FileTypeMarkdown, FileTypePDF, FileTypeImage:
		return true
	}
	return false
}

// FileTypeForPath maps a file extension to its declared type.
// Returns ErrUnsupportedType for extensions outside the supported set.
func FileTypeForPath(path string) (FileType, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FileTypeText, nil
	case ".md", ".markdown":
		return FileTypeMarkdown, nil
	case ".pdf":
		return FileTypePDF, nil
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
		return FileTypeImage, nil
	}
	return "", ErrUnsupportedType
}

// Document represents a stored unit of text with derived metadata.
// It is the canonical representation after extraction and tagging.
type Document struct {
	// ID is the unique identifier, assigned at creation and immutable.
	ID string

	// Title is the optional human-readable title.
	Title string

	// Content is the normalised extracted text.
	Content string

	// FileType records which extractor produced Content.
	FileType FileType

	// FilePath references the stored raw-file blob, if any.
	FilePath string

	// Degraded is set when extraction completed without usable text
	// (e.g. a scanned PDF without OCR). The document is still valid.
	Degraded bool

	// Tags is an ordered, case-insensitively deduplicated set of labels,
	// at most MaxTags entries.
	Tags []string

	// Summary is a short synopsis derived from Content,
	// at most SummaryBudget characters plus a truncation marker.
	Summary string

	// CreatedAt is when the document was first stored.
	CreatedAt time.Time

	// UpdatedAt is bumped whenever tags, summary or content are regenerated.
	UpdatedAt time.Time
}

// HasTag reports whether the document carries the given tag,
// compared case-insensitively.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
