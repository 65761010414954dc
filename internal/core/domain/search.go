package domain

// DefaultSearchLimit caps result size when no explicit limit is given.
const DefaultSearchLimit = 20

// SearchMode selects which fields are matched and how results are ranked.
type SearchMode string

const (
	// SearchModeFullText matches title, content and summary, ranked by
	// number of field hits.
	SearchModeFullText SearchMode = "fulltext"

	// SearchModeTags matches tag entries; exact tag matches rank before
	// substring matches.
	SearchModeTags SearchMode = "tags"

	// SearchModeSimple matches the title only, ranked by recency.
	SearchModeSimple SearchMode = "simple"
)

// Valid reports whether the mode is one of the supported values.
func (m SearchMode) Valid() bool {
	switch m {
	case SearchModeFullText, SearchModeTags, SearchModeSimple:
		return true
	}
	return false
}

// ParseSearchMode converts a user-supplied string to a SearchMode.
// Returns ErrInvalidInput for unknown modes; the empty string defaults
// to full-text search.
func ParseSearchMode(s string) (SearchMode, error) {
	switch s {
	case "", "fulltext", "full-text", "full":
		return SearchModeFullText, nil
	case "tags", "tag":
		return SearchModeTags, nil
	case "simple", "title":
		return SearchModeSimple, nil
	}
	return "", ErrInvalidInput
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Mode selects the matching semantics. Zero value means full-text.
	Mode SearchMode

	// Limit is the maximum number of results.
	// When zero or negative, DefaultSearchLimit applies.
	Limit int
}
