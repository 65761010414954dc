package domain

// TagCount pairs a tag with its occurrence count across the collection.
type TagCount struct {
	Tag   string
	Count int
}

// Stats is a read-side aggregation over the document collection.
// It is computed on demand and never persisted.
type Stats struct {
	// TotalDocuments is the number of stored documents.
	TotalDocuments int

	// ByFileType counts documents per file type.
	ByFileType map[FileType]int

	// TopTags lists the most frequent tags, ordered by count descending
	// then tag ascending.
	TopTags []TagCount
}
