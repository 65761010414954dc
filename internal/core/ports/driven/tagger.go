package driven

import "context"

// Tagger derives descriptive metadata from normalised text.
// Implementations are interchangeable strategies selected once at startup;
// call sites never branch on which strategy is active.
type Tagger interface {
	// Generate returns an ordered, case-insensitively deduplicated tag set
	// (bounded by domain.MaxTags) and a short summary (bounded by
	// domain.SummaryBudget).
	//
	// It never fails on well-formed text: empty or whitespace-only input
	// yields empty tags and an empty summary, not an error.
	Generate(ctx context.Context, text string) (tags []string, summary string, err error)

	// Name identifies the strategy for logging and stats.
	Name() string
}
