package panel

import (
	"fmt"

	"github.com/vango-dev/vadmin/internal/errors"
	"github.com/vango-dev/vadmin/pkg/dashboard"
	"github.com/vango-dev/vadmin/pkg/route"
	"github.com/vango-dev/vadmin/pkg/ui"
	"github.com/vango-dev/vadmin/pkg/view"
)

// Collection declares one CRUD-managed entity.
type Collection struct {
	// Name is the URL slug and the key into the server schema.
	Name string

	// Label is the human-facing name. Defaults to Name.
	Label string

	// ListView / EditView name registry views for this collection's list and
	// edit routes. Empty means the schema-declared view or the system default
	// applies.
	ListView string
	EditView string

	// ListOverride / EditOverride bypass view resolution entirely when set.
	ListOverride ui.Component
	EditOverride ui.Component

	// ListConfig / EditConfig are merged over the winning view's base config.
	ListConfig map[string]any
	EditConfig map[string]any
}

// Global declares one singleton entity edited in place.
type Global struct {
	Name  string
	Label string

	// EditView names a registry view. Empty keeps the dedicated global-edit
	// default unless the server schema names one.
	EditView string

	Override ui.Component
	Config   map[string]any
}

// Page declares a custom admin page outside the CRUD surface.
type Page struct {
	Name string
	Path string

	Component ui.Component
}

// Panel is the declarative description of one admin panel. It is plain data;
// New validates it and produces the runtime handle.
type Panel struct {
	// Title is shown in the shell chrome and the CLI.
	Title string

	// BasePath is the mount point, "/admin" by default.
	BasePath string

	Collections []Collection
	Globals     []Global
	Pages       []Page

	// Dashboard is the root layout tree. DashboardColumns defaults to 12.
	Dashboard        []dashboard.LayoutNode
	DashboardColumns int

	// Registry resolves view ids. A panel without one still routes; every
	// non-overridden view renders as unknown.
	Registry *view.Registry

	// DefaultGlobalEdit backs global edit routes that select no explicit
	// view. Required for globals to render.
	DefaultGlobalEdit *view.Loadable
}

// Validate checks the declaration for contradictions: unnamed entities and
// duplicate names within a namespace.
func (p *Panel) Validate() error {
	seen := map[string]bool{}
	for _, c := range p.Collections {
		if c.Name == "" {
			return errors.New("E103").WithSuggestion("Every collection needs a name.")
		}
		if seen[c.Name] {
			return errors.New("E103").WithSuggestion(fmt.Sprintf("Collection %q is declared twice.", c.Name))
		}
		seen[c.Name] = true
	}

	seen = map[string]bool{}
	for _, g := range p.Globals {
		if g.Name == "" {
			return errors.New("E103").WithSuggestion("Every global needs a name.")
		}
		if seen[g.Name] {
			return errors.New("E103").WithSuggestion(fmt.Sprintf("Global %q is declared twice.", g.Name))
		}
		seen[g.Name] = true
	}

	seen = map[string]bool{}
	for _, pg := range p.Pages {
		if pg.Name == "" || pg.Path == "" {
			return errors.New("E103").WithSuggestion("Every page needs a name and a path.")
		}
		if seen[pg.Name] {
			return errors.New("E103").WithSuggestion(fmt.Sprintf("Page %q is declared twice.", pg.Name))
		}
		seen[pg.Name] = true
	}

	return nil
}

// Known derives the matcher's name sets from the declaration. Pages keep
// their registration order.
func (p *Panel) Known() route.Known {
	known := route.Known{
		Collections: make(map[string]bool, len(p.Collections)),
		Globals:     make(map[string]bool, len(p.Globals)),
		Pages:       make([]route.PageDef, 0, len(p.Pages)),
	}
	for _, c := range p.Collections {
		known.Collections[c.Name] = true
	}
	for _, g := range p.Globals {
		known.Globals[g.Name] = true
	}
	for _, pg := range p.Pages {
		known.Pages = append(known.Pages, route.PageDef{Name: pg.Name, Path: pg.Path})
	}
	return known
}

// Collection returns the declaration for a collection name.
func (p *Panel) Collection(name string) (*Collection, bool) {
	for i := range p.Collections {
		if p.Collections[i].Name == name {
			return &p.Collections[i], true
		}
	}
	return nil, false
}

// Global returns the declaration for a global name.
func (p *Panel) Global(name string) (*Global, bool) {
	for i := range p.Globals {
		if p.Globals[i].Name == name {
			return &p.Globals[i], true
		}
	}
	return nil, false
}

// PageByName returns the declaration for a page name.
func (p *Panel) PageByName(name string) (*Page, bool) {
	for i := range p.Pages {
		if p.Pages[i].Name == name {
			return &p.Pages[i], true
		}
	}
	return nil, false
}

// Base returns the mount path, defaulting to "/admin".
func (p *Panel) Base() string {
	if p.BasePath == "" {
		return "/admin"
	}
	return p.BasePath
}

// Columns returns the dashboard grid width, defaulting to 12.
func (p *Panel) Columns() int {
	if p.DashboardColumns <= 0 {
		return 12
	}
	return p.DashboardColumns
}
