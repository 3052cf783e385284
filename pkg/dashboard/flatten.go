package dashboard

import (
	"log/slog"
	"strconv"
	"strings"
)

// DefaultMaxDepth bounds layout nesting. Hand-authored configuration can
// nest arbitrarily; anything deeper than this is dropped with a warning
// instead of risking pathological recursion.
const DefaultMaxDepth = 32

// InstructionKind discriminates render instructions.
type InstructionKind uint8

const (
	InstructionWidget InstructionKind = iota
	InstructionSection
	InstructionTabs
)

// String returns the string representation of the InstructionKind.
func (k InstructionKind) String() string {
	switch k {
	case InstructionWidget:
		return "widget"
	case InstructionSection:
		return "section"
	case InstructionTabs:
		return "tabs"
	default:
		return "unknown"
	}
}

// TabMeta describes one tab header in a Tabs instruction.
type TabMeta struct {
	ID    string
	Label string
}

// Instruction is one resolved render step. The tree of instructions mirrors
// the layout tree minus dropped nodes, with all presentation decisions
// (span classes, collapsed state, active tab) already made.
type Instruction struct {
	Kind InstructionKind

	// Key is stable across re-resolution: widget id+type+index for widgets,
	// section index for sections, joined tab ids for tabs. Never derived
	// from array position alone once items can reorder.
	Key string

	// SpanClass is the resolved responsive class. Sections and tabs always
	// consume the full parent span.
	SpanClass string

	// Widget fields.
	WidgetID   string
	WidgetType string
	Props      map[string]any

	// Section fields.
	SectionID string
	Label     string
	Wrapper   Wrapper
	Layout    SectionLayout
	Columns   int
	Collapsed bool

	// Tabs fields.
	Tabs      []TabMeta
	ActiveTab string

	// Children holds the resolved subtree for sections and the active tab.
	Children []Instruction
}

// Resolver flattens layout trees. The zero value is usable: default depth
// guard, first tab active, sections at their declared collapsed default.
type Resolver struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int

	// Logger receives depth-guard warnings. Nil uses slog.Default.
	Logger *slog.Logger

	// ActiveTab picks the active tab id for a Tabs node, keyed by the
	// node's joined-ids key. Nil or an unknown id falls back to the
	// first tab.
	ActiveTab func(tabsKey string) string

	// Collapsed resolves a collapsible section's state from its id and
	// declared default. Nil uses the declared default.
	Collapsed func(sectionID string, defaultCollapsed bool) bool
}

// Flatten resolves a layout tree into render instructions using a default
// Resolver.
func Flatten(root LayoutNode, columns int) []Instruction {
	return (&Resolver{}).Flatten(root, columns)
}

// Flatten resolves a layout tree into ordered render instructions.
// A nil root yields nil. Unknown node types are dropped silently; nesting
// beyond the depth limit is dropped with a warning. Flatten never panics
// on malformed configuration.
func (r *Resolver) Flatten(root LayoutNode, columns int) []Instruction {
	if root == nil {
		return nil
	}
	return r.flattenItems([]LayoutNode{root}, columns, 0)
}

// FlattenAll resolves a top-level list of layout nodes.
func (r *Resolver) FlattenAll(items []LayoutNode, columns int) []Instruction {
	return r.flattenItems(items, columns, 0)
}

func (r *Resolver) maxDepth() int {
	if r.MaxDepth > 0 {
		return r.MaxDepth
	}
	return DefaultMaxDepth
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Resolver) flattenItems(items []LayoutNode, columns, depth int) []Instruction {
	if depth > r.maxDepth() {
		r.logger().Warn("dashboard layout exceeds depth limit, dropping subtree",
			"depth", depth, "limit", r.maxDepth())
		return nil
	}

	var out []Instruction
	for i, item := range items {
		switch node := item.(type) {
		case Widget:
			out = append(out, r.widgetInstruction(node, i))
		case *Widget:
			if node != nil {
				out = append(out, r.widgetInstruction(*node, i))
			}
		case Section:
			out = append(out, r.sectionInstruction(node, i, columns, depth))
		case *Section:
			if node != nil {
				out = append(out, r.sectionInstruction(*node, i, columns, depth))
			}
		case Tabs:
			if inst, ok := r.tabsInstruction(node, columns, depth); ok {
				out = append(out, inst)
			}
		case *Tabs:
			if node != nil {
				if inst, ok := r.tabsInstruction(*node, columns, depth); ok {
					out = append(out, inst)
				}
			}
		default:
			// Unrecognized node type: dropped, not fatal. Dashboard config
			// is often hand-authored and partially invalid configurations
			// must not blank the page.
		}
	}
	return out
}

func (r *Resolver) widgetInstruction(w Widget, index int) Instruction {
	return Instruction{
		Kind:       InstructionWidget,
		Key:        w.ID + "-" + w.Type + "-" + strconv.Itoa(index),
		SpanClass:  ResolveSpanClass(w.Span),
		WidgetID:   w.ID,
		WidgetType: w.Type,
		Props:      w.Props,
	}
}

func (r *Resolver) sectionInstruction(s Section, index, columns, depth int) Instruction {
	cols := s.Columns
	if cols <= 0 {
		cols = columns
	}

	collapsed := s.DefaultCollapsed
	if s.Wrapper == WrapperCollapsible && r.Collapsed != nil {
		collapsed = r.Collapsed(s.ID, s.DefaultCollapsed)
	}

	return Instruction{
		Kind:      InstructionSection,
		Key:       "section-" + strconv.Itoa(index),
		SpanClass: ResolveSpanClass(gridColumns),
		SectionID: s.ID,
		Label:     s.Label,
		Wrapper:   s.Wrapper,
		Layout:    s.Layout,
		Columns:   cols,
		Collapsed: collapsed,
		Children:  r.flattenItems(s.Items, cols, depth+1),
	}
}

func (r *Resolver) tabsInstruction(tabs Tabs, columns, depth int) (Instruction, bool) {
	if len(tabs.Tabs) == 0 {
		return Instruction{}, false
	}

	ids := make([]string, len(tabs.Tabs))
	meta := make([]TabMeta, len(tabs.Tabs))
	for i, tab := range tabs.Tabs {
		ids[i] = tab.ID
		meta[i] = TabMeta{ID: tab.ID, Label: tab.Label}
	}
	key := "tabs-" + strings.Join(ids, "+")

	active := tabs.Tabs[0]
	if r.ActiveTab != nil {
		want := r.ActiveTab(key)
		for _, tab := range tabs.Tabs {
			if tab.ID == want {
				active = tab
				break
			}
		}
	}

	// Only the active tab's subtree is resolved; inactive tabs stay lazy.
	return Instruction{
		Kind:      InstructionTabs,
		Key:       key,
		SpanClass: ResolveSpanClass(gridColumns),
		Tabs:      meta,
		ActiveTab: active.ID,
		Children:  r.flattenItems(active.Items, columns, depth+1),
	}, true
}
