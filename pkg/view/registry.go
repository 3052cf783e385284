package view

import (
	"sync"

	verrors "github.com/vango-dev/vadmin/internal/errors"
)

// Kind distinguishes the two registry namespaces.
type Kind uint8

const (
	KindList Kind = iota // Collection list views
	KindEdit             // Edit/create form views
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// System default view ids.
const (
	DefaultListViewID = "table"
	DefaultEditViewID = "form"
)

// Definition is one registered view implementation.
type Definition struct {
	// Loadable supplies the component, directly or deferred.
	Loadable *Loadable

	// BaseConfig is the view's default configuration, shallow-merged under
	// the route's local config during resolution.
	BaseConfig map[string]any
}

type registryKey struct {
	kind Kind
	id   string
}

// Registry maps (kind, id) to view definitions.
//
// Entries freeze on first lookup: once a definition has been resolved for a
// session, re-registering the same id is rejected rather than silently
// swapping the implementation mid-flight.
type Registry struct {
	mu       sync.RWMutex
	defs     map[registryKey]Definition
	resolved map[registryKey]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:     make(map[registryKey]Definition),
		resolved: make(map[registryKey]bool),
	}
}

// Register adds or replaces a view definition.
// Replacing an id that has already been resolved returns an E004 error.
func (r *Registry) Register(kind Kind, id string, def Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey{kind: kind, id: id}
	if r.resolved[key] {
		return verrors.New("E004").WithDetail("view " + kind.String() + "/" + id + " was already resolved this session")
	}
	r.defs[key] = def
	return nil
}

// MustRegister is Register, panicking on error. Intended for package-level
// view registration at startup.
func (r *Registry) MustRegister(kind Kind, id string, def Definition) {
	if err := r.Register(kind, id, def); err != nil {
		panic(err)
	}
}

// Lookup resolves a view id, marking the entry as frozen.
func (r *Registry) Lookup(kind Kind, id string) (Definition, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey{kind: kind, id: id}
	def, ok := r.defs[key]
	if ok {
		r.resolved[key] = true
	}
	return def, ok
}

// Has reports whether an id is registered without freezing it.
func (r *Registry) Has(kind Kind, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[registryKey{kind: kind, id: id}]
	return ok
}

// IDs returns the registered ids for a kind, in no particular order.
func (r *Registry) IDs(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for key := range r.defs {
		if key.kind == kind {
			ids = append(ids, key.id)
		}
	}
	return ids
}
