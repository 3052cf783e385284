package dashboard

// LayoutNode is one element of the recursive dashboard layout tree.
// Concrete types are Widget, Section, and Tabs. The tree is a tree, never
// a graph; cycles are not representable through the value types and depth
// is guarded during flattening.
type LayoutNode interface {
	layoutNode()
}

// Wrapper selects the chrome a section renders with.
type Wrapper uint8

const (
	WrapperFlat        Wrapper = iota // Label + content, no chrome
	WrapperCard                       // Titled container
	WrapperCollapsible                // Accordion, independent per section
)

// String returns the string representation of the Wrapper.
func (w Wrapper) String() string {
	switch w {
	case WrapperFlat:
		return "flat"
	case WrapperCard:
		return "card"
	case WrapperCollapsible:
		return "collapsible"
	default:
		return "unknown"
	}
}

// SectionLayout selects how a section arranges its items.
type SectionLayout uint8

const (
	LayoutStack  SectionLayout = iota // Vertical flow
	LayoutGrid                        // Column grid
	LayoutInline                      // Horizontal flow
)

// String returns the string representation of the SectionLayout.
func (l SectionLayout) String() string {
	switch l {
	case LayoutStack:
		return "stack"
	case LayoutGrid:
		return "grid"
	case LayoutInline:
		return "inline"
	default:
		return "unknown"
	}
}

// Widget is a leaf node: one dashboard widget occupying a column span.
type Widget struct {
	// ID identifies the widget instance; part of its render key.
	ID string

	// Type is the widget type tag (e.g. "chart", "stat"); part of the key
	// and the dispatch hint for the widget library.
	Type string

	// Span is the desired column span, 1..12. Out-of-range values are
	// clamped during flattening, never fatal.
	Span int

	// Props is widget-specific configuration passed through untouched.
	Props map[string]any
}

func (Widget) layoutNode() {}

// Section groups child nodes under a wrapper and an arrangement.
// Sections always consume the full parent column span.
type Section struct {
	// ID identifies the section for collapsed-state persistence.
	ID string

	Label   string
	Wrapper Wrapper
	Layout  SectionLayout

	// Columns is the grid width for LayoutGrid. Zero inherits the parent's
	// column count.
	Columns int

	// DefaultCollapsed is the collapsed state used when no per-user
	// preference is stored. Only meaningful for WrapperCollapsible.
	DefaultCollapsed bool

	Items []LayoutNode
}

func (Section) layoutNode() {}

// Tab is one pane of a Tabs node.
type Tab struct {
	ID    string
	Label string
	Items []LayoutNode
}

// Tabs holds mutually exclusive panes; only the active tab's subtree is
// resolved at any time.
type Tabs struct {
	Tabs []Tab
}

func (Tabs) layoutNode() {}
