package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/vango-dev/vadmin/pkg/dashboard"
)

func dashboardPanelLayout() []dashboard.LayoutNode {
	return []dashboard.LayoutNode{
		dashboard.Widget{ID: "revenue", Type: "stat", Span: 3, Props: map[string]any{"metric": "revenue"}},
		dashboard.Section{
			ID:      "filters",
			Label:   "Filters",
			Wrapper: dashboard.WrapperCollapsible,
			Columns: 6,
			Items: []dashboard.LayoutNode{
				dashboard.Widget{ID: "range", Type: "picker", Span: 6},
			},
		},
		dashboard.Tabs{Tabs: []dashboard.Tab{
			{ID: "week", Label: "Week", Items: []dashboard.LayoutNode{
				dashboard.Widget{ID: "w", Type: "chart", Span: 12},
			}},
			{ID: "month", Label: "Month", Items: []dashboard.LayoutNode{
				dashboard.Widget{ID: "m", Type: "chart", Span: 12},
			}},
		}},
	}
}

func TestDashboardRendersLayout(t *testing.T) {
	p := barbershopPanel(nil)
	p.Dashboard = dashboardPanelLayout()

	s := newTestServer(t, Options{Panel: p})
	rec := get(t, s.Handler(), "/admin")
	body := rec.Body.String()

	if !strings.Contains(body, `data-widget-id="revenue"`) {
		t.Errorf("Widget missing:\n%s", body)
	}
	// Span 3 resolves through the precomputed class table.
	if !strings.Contains(body, "col-span-12 md:col-span-6 lg:col-span-3") {
		t.Errorf("Span class missing:\n%s", body)
	}
	if !strings.Contains(body, `data-section-id="filters"`) {
		t.Errorf("Section missing:\n%s", body)
	}
	// Only the active (first) tab's subtree renders.
	if !strings.Contains(body, `data-widget-id="w"`) {
		t.Errorf("Active tab content missing:\n%s", body)
	}
	if strings.Contains(body, `data-widget-id="m"`) {
		t.Errorf("Inactive tab content rendered eagerly:\n%s", body)
	}
}

func TestDashboardTabSelection(t *testing.T) {
	p := barbershopPanel(nil)
	p.Dashboard = dashboardPanelLayout()

	s := newTestServer(t, Options{Panel: p})
	rec := get(t, s.Handler(), "/admin?tab.tabs-week%2Bmonth=month")
	body := rec.Body.String()

	if !strings.Contains(body, `data-active-tab="month"`) {
		t.Errorf("Tab selection ignored:\n%s", body)
	}
	if !strings.Contains(body, `data-widget-id="m"`) {
		t.Errorf("Selected tab content missing:\n%s", body)
	}
}

func TestCollapsedSectionHidesChildren(t *testing.T) {
	p := barbershopPanel(nil)
	p.Dashboard = []dashboard.LayoutNode{
		dashboard.Section{
			ID:               "filters",
			Label:            "Filters",
			Wrapper:          dashboard.WrapperCollapsible,
			DefaultCollapsed: true,
			Items: []dashboard.LayoutNode{
				dashboard.Widget{ID: "range", Type: "picker"},
			},
		},
	}

	s := newTestServer(t, Options{Panel: p})
	rec := get(t, s.Handler(), "/admin")
	body := rec.Body.String()

	if !strings.Contains(body, `data-collapsed="true"`) {
		t.Errorf("Collapsed marker missing:\n%s", body)
	}
	if strings.Contains(body, `data-widget-id="range"`) {
		t.Errorf("Collapsed section rendered its children:\n%s", body)
	}
}

func TestShellEscapesTitle(t *testing.T) {
	p := barbershopPanel(nil)
	p.Title = `<script>alert(1)</script>`

	s := newTestServer(t, Options{Panel: p})
	rec := get(t, s.Handler(), "/admin")

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "<script>alert") {
		t.Error("Title not escaped")
	}
}
