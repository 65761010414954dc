package embedding

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
	"github.com/cerebra-labs/cerebra-cli/internal/logger"
	"github.com/cerebra-labs/cerebra-cli/internal/taggers/keyword"
)

// Ensure Tagger implements the interface.
var _ driven.Tagger = (*Tagger)(nil)

// defaultLabels is the fixed candidate set for nearest-label classification.
var defaultLabels = []string{
	"technology", "business", "personal", "work", "idea",
	"task", "meeting", "research", "finance", "health",
	"education", "travel", "food", "entertainment", "project",
}

const (
	// scoreThreshold is the minimum cosine similarity for a label to
	// qualify as a category tag.
	scoreThreshold = 0.5

	// maxLabels caps the number of classified category tags.
	maxLabels = 3

	// snippetLimit bounds how much text is embedded per document.
	snippetLimit = 500
)

// Tagger assigns category tags by nearest-label classification over a
// local embedding service, supplemented by the keyword strategy's
// frequency tokens. Any embedding failure falls back to the keyword
// strategy for the whole call, so tagging never fails.
type Tagger struct {
	embedder driven.EmbeddingService
	fallback *keyword.Tagger
	labels   []string
	maxTags  int

	mu        sync.Mutex
	labelVecs [][]float32
}

// New creates an embedding tagger backed by the given service, with the
// keyword tagger as supplement and fallback.
func New(embedder driven.EmbeddingService, fallback *keyword.Tagger) *Tagger {
	return &Tagger{
		embedder: embedder,
		fallback: fallback,
		labels:   defaultLabels,
		maxTags:  domain.MaxTags,
	}
}

// Name identifies the strategy.
func (t *Tagger) Name() string {
	return "embedding"
}

// Generate classifies the text against the candidate labels and merges
// in frequency keywords. Backend failures degrade to the keyword
// strategy, never to an error.
func (t *Tagger) Generate(ctx context.Context, text string) ([]string, string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, "", nil
	}

	categories, err := t.classify(ctx, trimmed)
	if err != nil {
		logger.Warn("embedding tagger unavailable, falling back to keyword: %v", err)
		return t.fallback.Generate(ctx, text)
	}

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

	for _, c := range categories {
		add(c)
	}
	for _, kw := range t.fallback.Keywords(trimmed) {
		add(kw)
	}

	return merged, t.fallback.Summarize(trimmed), nil
}

// classify embeds a snippet of the text and returns candidate labels
// above the similarity threshold, best first.
func (t *Tagger) classify(ctx context.Context, text string) ([]string, error) {
	if err := t.ensureLabelVectors(ctx); err != nil {
		return nil, err
	}

	snippet := text
	if len(snippet) > snippetLimit {
		snippet = snippet[:snippetLimit]
		if idx := strings.LastIndexAny(snippet, " \t\n"); idx > 0 {
			snippet = snippet[:idx]
		}
	}

	vec, err := t.embedder.Embed(ctx, snippet)
	if err != nil {
		return nil, err
	}

	type scored struct {
		label string
		score float64
	}
	var hits []scored
	for i, lv := range t.labelVecs {
		if s := cosine(vec, lv); s >= scoreThreshold {
			hits = append(hits, scored{label: t.labels[i], score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > maxLabels {
		hits = hits[:maxLabels]
	}

	labels := make([]string, len(hits))
	for i, h := range hits {
		labels[i] = h.label
	}
	return labels, nil
}

// ensureLabelVectors embeds the candidate labels once, on first use.
func (t *Tagger) ensureLabelVectors(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.labelVecs != nil {
		return nil
	}

	vecs := make([][]float32, len(t.labels))
	for i, label := range t.labels {
		vec, err := t.embedder.Embed(ctx, label)
		if err != nil {
			return err
		}
		vecs[i] = vec
	}
	t.labelVecs = vecs
	return nil
}

// cosine returns the cosine similarity of two vectors, 0 when either
// is empty or they differ in length.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
