package keyword

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
)

// Ensure Tagger implements the interface.
var _ driven.Tagger = (*Tagger)(nil)

// maxKeywords bounds the frequency-derived portion of the tag set.
// Category tags take priority and are not counted against it.
const maxKeywords = 5

// tokenRe matches candidate keyword tokens: lower-case words of at
// least three letters. Matching is byte-level and locale-agnostic.
var tokenRe = regexp.MustCompile(`\b[a-z]{3,}\b`)

// categoryPattern maps a content pattern to a category label.
// Patterns are evaluated in slice order so results are reproducible;
// the table is configuration data, not part of the tagging contract.
type categoryPattern struct {
	label   string
	pattern *regexp.Regexp
}

// defaultCategories lists the built-in category patterns in priority order.
var defaultCategories = []categoryPattern{
	{"code", regexp.MustCompile(`\b(function|class|def|import|return|if|else|for|while)\b`)},
	{"meeting", regexp.MustCompile(`\b(meeting|agenda|discussion|attendees|action items)\b`)},
	{"idea", regexp.MustCompile(`\b(idea|concept|brainstorm|think|maybe|could)\b`)},
	{"task", regexp.MustCompile(`\b(todo|task|deadline|complete|finish|done)\b`)},
	{"research", regexp.MustCompile(`\b(study|research|paper|article|analysis|findings)\b`)},
	{"recipe", regexp.MustCompile(`\b(recipe|ingredients|cook|bake|mix|serve)\b`)},
	{"finance", regexp.MustCompile(`\b(budget|money|cost|price|expense|payment|invoice|revenue|investment|income|tax)\b`)},
	{"personal", regexp.MustCompile(`\b(journal|diary|feeling|thought|reflect)\b`)},
}

// defaultStopWords are filtered out before frequency scoring.
var defaultStopWords = []string{
	"the", "is", "at", "which", "on", "a", "an", "and", "or", "but",
	"in", "with", "to", "for", "of", "as", "by", "that", "this",
	"it", "from", "be", "are", "was", "were", "been", "have", "has",
	"had", "do", "does", "did", "will", "would", "could", "should",
	"not", "all", "its", "into", "than", "then", "also", "about",
}

// Config adjusts tagging bounds. Zero values take the domain defaults.
type Config struct {
	// MaxTags bounds the merged tag set (default domain.MaxTags).
	MaxTags int

	// SummaryBudget bounds the summary length (default domain.SummaryBudget).
	SummaryBudget int

	// ExtraStopWords extends the built-in stop-word set.
	ExtraStopWords []string
}

// Tagger derives tags from token frequency and category patterns, and a
// summary from the leading text. It is deterministic: the same text
// always yields the same tags and summary.
type Tagger struct {
	maxTags       int
	summaryBudget int
	stopWords     map[string]struct{}
	categories    []categoryPattern
}

// New creates a keyword tagger with the given config.
func New(cfg Config) *Tagger {
	if cfg.MaxTags <= 0 {
		cfg.MaxTags = domain.MaxTags
	}
	if cfg.SummaryBudget <= 0 {
		cfg.SummaryBudget = domain.SummaryBudget
	}

	stop := make(map[string]struct{}, len(defaultStopWords)+len(cfg.ExtraStopWords))
	for _, w := range defaultStopWords {
		stop[w] = struct{}{}
	}
	for _, w := range cfg.ExtraStopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}

	return &Tagger{
		maxTags:       cfg.MaxTags,
		summaryBudget: cfg.SummaryBudget,
		stopWords:     stop,
		categories:    defaultCategories,
	}
}

// Name identifies the strategy.
func (t *Tagger) Name() string {
	return "keyword"
}

// Generate derives tags and a summary from the text.
// Empty or whitespace-only input yields empty tags and an empty summary.
func (t *Tagger) Generate(_ context.Context, text string) ([]string, string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, "", nil
	}

	lower := strings.ToLower(text)

	merged := make([]string, 0, t.maxTags)
	seen := make(map[string]struct{}, t.maxTags)
	add := func(tag string) {
		if len(merged) >= t.maxTags {
			return
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		merged = append(merged, key)
	}

	// Category tags first, in fixed priority order.
	for _, c := range t.categories {
		if c.pattern.MatchString(lower) {
			add(c.label)
		}
	}

	for _, kw := range t.keywords(lower) {
		add(kw)
	}

	return merged, t.Summarize(text), nil
}

// Keywords returns the frequency-derived tokens for the text, without
// category tags. Used by other strategies for supplementary tags.
func (t *Tagger) Keywords(text string) []string {
	return t.keywords(strings.ToLower(text))
}

// keywords returns up to maxKeywords tokens scored by frequency,
// ties broken by first occurrence to keep results deterministic.
func (t *Tagger) keywords(lower string) []string {
	type tokenStat struct {
		token string
		count int
		first int
	}

	stats := make(map[string]*tokenStat)
	var order []*tokenStat
	for i, tok := range tokenRe.FindAllString(lower, -1) {
		if _, stop := t.stopWords[tok]; stop {
			continue
		}
		s, ok := stats[tok]
		if !ok {
			s = &tokenStat{token: tok, first: i}
			stats[tok] = s
			order = append(order, s)
		}
		s.count++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	n := maxKeywords
	if n > len(order) {
		n = len(order)
	}
	keywords := make([]string, n)
	for i := 0; i < n; i++ {
		keywords[i] = order[i].token
	}
	return keywords
}

// Summarize returns the leading text up to the summary budget, trimmed
// to the nearest word boundary, with an ellipsis marker when truncated.
func (t *Tagger) Summarize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if len(text) <= t.summaryBudget {
		return text
	}

	cut := text[:t.summaryBudget]
	if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut) + "..."
}
