package panel

import (
	"testing"

	"github.com/vango-dev/vadmin/pkg/route"
	"github.com/vango-dev/vadmin/pkg/schema"
	"github.com/vango-dev/vadmin/pkg/ui"
	"github.com/vango-dev/vadmin/pkg/view"
)

func stub(text string) ui.Component {
	return ui.Func(func() *ui.Node { return ui.Text(text) })
}

func testPanel() *Panel {
	reg := view.NewRegistry()
	reg.MustRegister(view.KindList, "table", view.Definition{
		Loadable:   view.ComponentOf(stub("table")),
		BaseConfig: map[string]any{"pageSize": 25},
	})
	reg.MustRegister(view.KindEdit, "form", view.Definition{
		Loadable: view.ComponentOf(stub("form")),
	})
	reg.MustRegister(view.KindList, "kanban", view.Definition{
		Loadable: view.ComponentOf(stub("kanban")),
	})

	return &Panel{
		Title: "Barbershop",
		Collections: []Collection{
			{Name: "appointments"},
			{Name: "barbers", ListView: "kanban", ListConfig: map[string]any{"groupBy": "status"}},
			{Name: "invoices", ListOverride: stub("custom-invoices")},
		},
		Globals: []Global{
			{Name: "settings"},
		},
		Pages: []Page{
			{Name: "reports", Path: "/reports", Component: stub("reports")},
		},
		Registry:          reg,
		DefaultGlobalEdit: view.ComponentOf(stub("global-edit")),
	}
}

func TestPanelKnown(t *testing.T) {
	known := testPanel().Known()

	if !known.Collections["appointments"] || !known.Collections["invoices"] {
		t.Error("Collections missing from Known")
	}
	if !known.Globals["settings"] {
		t.Error("Globals missing from Known")
	}
	if len(known.Pages) != 1 || known.Pages[0].Path != "/reports" {
		t.Errorf("Pages = %+v", known.Pages)
	}

	m := route.MatchPath([]string{"collections", "appointments"}, known)
	if m.Kind != route.KindCollectionList {
		t.Errorf("Match through Known failed: %+v", m)
	}
}

func TestPanelValidate(t *testing.T) {
	if err := testPanel().Validate(); err != nil {
		t.Fatalf("Valid panel rejected: %v", err)
	}

	bad := &Panel{Collections: []Collection{{Name: "a"}, {Name: "a"}}}
	if err := bad.Validate(); err == nil {
		t.Error("Duplicate collection name accepted")
	}

	bad = &Panel{Globals: []Global{{Name: ""}}}
	if err := bad.Validate(); err == nil {
		t.Error("Unnamed global accepted")
	}

	bad = &Panel{Pages: []Page{{Name: "p"}}}
	if err := bad.Validate(); err == nil {
		t.Error("Page without a path accepted")
	}
}

func TestViewOptionsStaticView(t *testing.T) {
	p := testPanel()
	m := route.MatchPath([]string{"collections", "barbers"}, p.Known())

	cfg := view.Resolve(m, p.ViewOptions(m, schema.Schema{}))
	if cfg.ViewID != "kanban" {
		t.Errorf("ViewID = %q, want the declared static view", cfg.ViewID)
	}
	if cfg.Props["groupBy"] != "status" {
		t.Errorf("Local config lost: %+v", cfg.Props)
	}
}

func TestViewOptionsSchemaBeatsStatic(t *testing.T) {
	p := testPanel()
	m := route.MatchPath([]string{"collections", "barbers"}, p.Known())

	sch := schema.Schema{Collections: map[string]schema.Entry{
		"barbers": {Admin: schema.AdminMeta{List: schema.ViewMeta{
			View:   "table",
			Config: map[string]any{"groupBy": "server", "sort": "name"},
		}}},
	}}

	cfg := view.Resolve(m, p.ViewOptions(m, sch))
	if cfg.ViewID != "table" {
		t.Errorf("ViewID = %q, want the schema-declared view", cfg.ViewID)
	}
	// Declaration config wins key-by-key over schema config.
	if cfg.Props["groupBy"] != "status" {
		t.Errorf("groupBy = %v, want declaration value", cfg.Props["groupBy"])
	}
	if cfg.Props["sort"] != "name" {
		t.Errorf("Schema-only keys should survive: %+v", cfg.Props)
	}
	// The winning definition's base config flows through too.
	if cfg.Props["pageSize"] != 25 {
		t.Errorf("Base config lost: %+v", cfg.Props)
	}
}

func TestViewOptionsOverride(t *testing.T) {
	p := testPanel()
	m := route.MatchPath([]string{"collections", "invoices"}, p.Known())

	cfg := view.Resolve(m, p.ViewOptions(m, schema.Schema{}))
	if cfg.ViewID != "" || cfg.Loadable == nil {
		t.Errorf("Override should bypass selection: %+v", cfg)
	}
}

func TestViewOptionsDefaults(t *testing.T) {
	p := testPanel()

	m := route.MatchPath([]string{"collections", "appointments", "create"}, p.Known())
	cfg := view.Resolve(m, p.ViewOptions(m, schema.Schema{}))
	if cfg.ViewID != "form" {
		t.Errorf("Create route ViewID = %q, want default form", cfg.ViewID)
	}

	m = route.MatchPath([]string{"globals", "settings"}, p.Known())
	cfg = view.Resolve(m, p.ViewOptions(m, schema.Schema{}))
	if cfg.ViewID != view.GlobalEditViewID || cfg.Loadable == nil {
		t.Errorf("Global edit should use the dedicated default: %+v", cfg)
	}
}

func TestPanelDefaults(t *testing.T) {
	p := &Panel{}
	if p.Base() != "/admin" {
		t.Errorf("Base = %q", p.Base())
	}
	if p.Columns() != 12 {
		t.Errorf("Columns = %d", p.Columns())
	}
}
