package extractors

import (
	"sync"

	"github.com/cerebra-labs/cerebra-cli/internal/core/domain"
	"github.com/cerebra-labs/cerebra-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps declared file types to their extractors.
type Registry struct {
	mu         sync.RWMutex
	extractors map[domain.FileType]driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[domain.FileType]driven.Extractor),
	}
}

// Register adds an extractor for each of its declared types.
// A later registration for the same type replaces the earlier one.
func (r *Registry) Register(e driven.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range e.FileTypes() {
		r.extractors[t] = e
	}
}

// ForType returns the extractor registered for the given type.
// Returns domain.ErrUnsupportedType when none is registered.
func (r *Registry) ForType(t domain.FileType) (driven.Extractor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.extractors[t]
	if !ok {
		return nil, domain.ErrUnsupportedType
	}
	return e, nil
}
