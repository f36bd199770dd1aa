package locale

import (
	"sort"
	"strings"
)

// Registry holds named locales.
type Registry struct {
	locales map[string]*Locale
}

// NewRegistry creates an empty locale registry.
func NewRegistry() *Registry {
	return &Registry{locales: make(map[string]*Locale)}
}

// Register adds a locale. Panics on duplicate name.
func (r *Registry) Register(l *Locale) {
	key := strings.ToLower(l.Name)
	if _, ok := r.locales[key]; ok {
		panic("duplicate locale: " + key)
	}
	r.locales[key] = l
}

// Get returns the locale for name, or nil.
func (r *Registry) Get(name string) *Locale {
	return r.locales[strings.ToLower(name)]
}

// Names returns the registered locale names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.locales))
	for name := range r.locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultName is used when no locale is configured.
const DefaultName = "en"

// DefaultRegistry returns a registry with all built-in locales.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(English())
	r.Register(German())
	r.Register(French())
	return r
}
