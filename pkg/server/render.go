package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vango-dev/vadmin/pkg/dashboard"
	"github.com/vango-dev/vadmin/pkg/ui"
)

// collapsedPrefPrefix namespaces collapsed-section preferences.
const collapsedPrefPrefix = "dashboard:collapsed:"

// writeShell wraps a body node in the HTML document shell.
func writeShell(w http.ResponseWriter, status int, title string, body *ui.Node) {
	if title == "" {
		title = "Admin"
	}
	doc := ui.El("html",
		ui.El("head",
			ui.El("meta").WithAttr("charset", "utf-8"),
			ui.El("title", ui.Text(title)),
		),
		ui.El("body",
			ui.El("main", body).WithAttr("id", "vadmin-root"),
		),
	).WithAttr("lang", "en")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte("<!DOCTYPE html>\n"))
	w.Write([]byte(ui.RenderHTML(doc)))
}

// propsScript embeds the effective props for the client runtime.
func propsScript(props map[string]any) *ui.Node {
	data, err := json.Marshal(props)
	if err != nil {
		data = []byte("{}")
	}
	return ui.El("script", ui.Raw(string(data))).
		WithAttr("type", "application/json").
		WithAttr("data-view-props", "")
}

// Inline states. Every failure renders something specific and recoverable;
// nothing escapes to a blank page.

func notFoundView(base string) *ui.Node {
	return ui.El("div",
		ui.El("h1", ui.Text("Page not found")),
		ui.El("p", ui.Text("Nothing is registered at this address.")),
		dashboardLink(base),
	).WithClass("vadmin-not-found")
}

func restrictedView(name, base string) *ui.Node {
	return ui.El("div",
		ui.El("h1", ui.Text("Restricted access")),
		ui.El("p", ui.Text("You do not have access to "+name+", or it does not exist.")),
		dashboardLink(base),
	).WithClass("vadmin-restricted")
}

func unknownViewNotice(viewID string) *ui.Node {
	return ui.El("div",
		ui.El("strong", ui.Text("Unknown view: "+viewID)),
		ui.El("p", ui.Text("No view with this id is registered. Register it or fix the configured name.")),
	).WithClass("vadmin-unknown-view").WithAttr("data-view-id", viewID)
}

func loadFailedView(err error) *ui.Node {
	detail := "The view failed to load."
	if err != nil {
		detail = err.Error()
	}
	return ui.El("div",
		ui.El("strong", ui.Text("Failed to load view")),
		ui.El("p", ui.Text(detail)),
	).WithClass("vadmin-load-failed")
}

func loadingView() *ui.Node {
	return ui.El("div", ui.Text("Loading…")).WithClass("vadmin-loading")
}

func dashboardLink(base string) *ui.Node {
	return ui.El("a", ui.Text("Back to dashboard")).WithAttr("href", base)
}

// dashboardNode renders flattened layout instructions into the grid.
func dashboardNode(instructions []dashboard.Instruction) *ui.Node {
	root := ui.El("div", instructionNodes(instructions)...).
		WithClass("vadmin-dashboard", "grid", "grid-cols-12", "gap-4")
	return root
}

func instructionNodes(instructions []dashboard.Instruction) []*ui.Node {
	nodes := make([]*ui.Node, 0, len(instructions))
	for _, inst := range instructions {
		nodes = append(nodes, instructionNode(inst))
	}
	return nodes
}

func instructionNode(inst dashboard.Instruction) *ui.Node {
	switch inst.Kind {
	case dashboard.InstructionWidget:
		return widgetNode(inst)
	case dashboard.InstructionSection:
		return sectionNode(inst)
	case dashboard.InstructionTabs:
		return tabsNode(inst)
	default:
		return ui.Fragment()
	}
}

func widgetNode(inst dashboard.Instruction) *ui.Node {
	n := ui.El("div", propsScript(inst.Props)).
		WithKey(inst.Key).
		WithClass(inst.SpanClass, "vadmin-widget").
		WithAttr("data-widget-id", inst.WidgetID).
		WithAttr("data-widget-type", inst.WidgetType)
	return n
}

func sectionNode(inst dashboard.Instruction) *ui.Node {
	children := []*ui.Node{}
	if inst.Label != "" {
		children = append(children, ui.El("h2", ui.Text(inst.Label)))
	}
	if !inst.Collapsed {
		body := ui.El("div", instructionNodes(inst.Children)...).
			WithClass("grid", "gap-4", "grid-cols-"+strconv.Itoa(inst.Columns))
		children = append(children, body)
	}

	n := ui.El("section", children...).
		WithKey(inst.Key).
		WithClass(inst.SpanClass, "vadmin-section", "vadmin-section-"+inst.Wrapper.String()).
		WithAttr("data-section-id", inst.SectionID)
	if inst.Wrapper == dashboard.WrapperCollapsible {
		n = n.WithAttr("data-collapsed", strconv.FormatBool(inst.Collapsed))
	}
	return n
}

func tabsNode(inst dashboard.Instruction) *ui.Node {
	headers := make([]*ui.Node, 0, len(inst.Tabs))
	for _, tab := range inst.Tabs {
		h := ui.El("button", ui.Text(tab.Label)).
			WithAttr("data-tab-id", tab.ID)
		if tab.ID == inst.ActiveTab {
			h = h.WithClass("active")
		}
		headers = append(headers, h)
	}

	// Only the active tab's children were resolved; inactive panes render
	// nothing until selected.
	return ui.El("div",
		ui.El("nav", headers...),
		ui.El("div", instructionNodes(inst.Children)...).WithClass("grid", "gap-4", "grid-cols-12"),
	).
		WithKey(inst.Key).
		WithClass(inst.SpanClass, "vadmin-tabs").
		WithAttr("data-active-tab", inst.ActiveTab)
}
