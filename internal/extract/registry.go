package extract

import (
	"strings"
	"sync"
)

// ColumnPostProcessor rewrites one mapped line-item value. Processors are
// selected per rule via the post_processor key and run after column mapping,
// before the record is assembled.
type ColumnPostProcessor func(column, value string) string

// Registry holds named column post-processors. Registration happens at
// process startup; lookups during extraction are read-only.
type Registry struct {
	mu    sync.RWMutex
	procs map[string]ColumnPostProcessor
}

func NewRegistry() *Registry {
	return &Registry{procs: make(map[string]ColumnPostProcessor)}
}

func (r *Registry) Register(name string, p ColumnPostProcessor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procs[name] = p
}

func (r *Registry) Get(name string) (ColumnPostProcessor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.procs[name]
	return p, ok
}

// DefaultRegistry returns a registry preloaded with the built-in processors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("normalize_whitespace", func(_, value string) string {
		return strings.Join(strings.Fields(value), " ")
	})
	r.Register("strip_currency_symbols", func(column, value string) string {
		if column != ColUnitPrice && column != ColTotalPrice {
			return value
		}
		return strings.TrimSpace(nonNumeric.ReplaceAllString(value, ""))
	})
	return r
}

func (r *Registry) apply(name string, item LineItem) {
	p, ok := r.Get(name)
	if !ok {
		return
	}
	for col, v := range item {
		item[col] = p(col, v)
	}
}
