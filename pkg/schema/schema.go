package schema

// ViewMeta is a server-declared view selection plus its view-specific
// configuration.
type ViewMeta struct {
	// View names a registry view id. Empty means no server preference.
	View string `json:"view,omitempty"`

	// Config is arbitrary view-specific configuration merged into the
	// effective props during resolution.
	Config map[string]any `json:"config,omitempty"`
}

// AdminMeta is the admin-panel portion of a schema entry.
type AdminMeta struct {
	List ViewMeta `json:"list,omitempty"`
	Form ViewMeta `json:"form,omitempty"`
}

// Entry is one collection or global as the server declares it.
type Entry struct {
	Admin AdminMeta `json:"admin,omitempty"`
}

// Schema is the server-declared configuration, keyed by entity name.
// The zero value is a valid, empty schema.
type Schema struct {
	Collections map[string]Entry `json:"collections,omitempty"`
	Globals     map[string]Entry `json:"globals,omitempty"`
}

// Collection returns the entry for a collection name.
func (s Schema) Collection(name string) (Entry, bool) {
	e, ok := s.Collections[name]
	return e, ok
}

// Global returns the entry for a global name.
func (s Schema) Global(name string) (Entry, bool) {
	e, ok := s.Globals[name]
	return e, ok
}

// HasEntity reports whether the schema declares the named collection or
// global at all. Routes to undeclared entities render as restricted access.
func (s Schema) HasEntity(name string) bool {
	if _, ok := s.Collections[name]; ok {
		return true
	}
	_, ok := s.Globals[name]
	return ok
}
