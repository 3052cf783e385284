package dashboard

import "encoding/json"

// rawNode is the JSON shape shared by all layout node kinds.
type rawNode struct {
	Type             string          `json:"type"`
	ID               string          `json:"id,omitempty"`
	Label            string          `json:"label,omitempty"`
	Span             int             `json:"span,omitempty"`
	Widget           string          `json:"widget,omitempty"`
	Wrapper          string          `json:"wrapper,omitempty"`
	Layout           string          `json:"layout,omitempty"`
	Columns          int             `json:"columns,omitempty"`
	DefaultCollapsed *bool           `json:"defaultCollapsed,omitempty"`
	Props            map[string]any  `json:"props,omitempty"`
	Items            []json.RawMessage `json:"items,omitempty"`
	Tabs             []rawTab        `json:"tabs,omitempty"`
}

type rawTab struct {
	ID    string            `json:"id"`
	Label string            `json:"label,omitempty"`
	Items []json.RawMessage `json:"items,omitempty"`
}

// ParseLayout decodes a hand-authored JSON layout list.
//
// Nodes with an unrecognized "type" tag are dropped silently, matching the
// flattening leniency: partially invalid configuration must not take the
// whole dashboard down. Structural JSON errors (not valid JSON at all) do
// return an error.
func ParseLayout(data []byte) ([]LayoutNode, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	return parseNodes(raws), nil
}

func parseNodes(raws []json.RawMessage) []LayoutNode {
	var nodes []LayoutNode
	for _, raw := range raws {
		var rn rawNode
		if err := json.Unmarshal(raw, &rn); err != nil {
			continue
		}
		if node, ok := parseNode(rn); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func parseNode(rn rawNode) (LayoutNode, bool) {
	switch rn.Type {
	case "widget":
		return Widget{
			ID:    rn.ID,
			Type:  rn.Widget,
			Span:  rn.Span,
			Props: rn.Props,
		}, true

	case "section":
		wrapper := parseWrapper(rn.Wrapper)
		// Collapsible sections with no explicit default start collapsed.
		collapsed := wrapper == WrapperCollapsible
		if rn.DefaultCollapsed != nil {
			collapsed = *rn.DefaultCollapsed
		}
		return Section{
			ID:               rn.ID,
			Label:            rn.Label,
			Wrapper:          wrapper,
			Layout:           parseSectionLayout(rn.Layout),
			Columns:          rn.Columns,
			DefaultCollapsed: collapsed,
			Items:            parseNodes(rn.Items),
		}, true

	case "tabs":
		tabs := make([]Tab, 0, len(rn.Tabs))
		for _, rt := range rn.Tabs {
			tabs = append(tabs, Tab{
				ID:    rt.ID,
				Label: rt.Label,
				Items: parseNodes(rt.Items),
			})
		}
		return Tabs{Tabs: tabs}, true

	default:
		return nil, false
	}
}

func parseWrapper(s string) Wrapper {
	switch s {
	case "card":
		return WrapperCard
	case "collapsible":
		return WrapperCollapsible
	default:
		return WrapperFlat
	}
}

func parseSectionLayout(s string) SectionLayout {
	switch s {
	case "grid":
		return LayoutGrid
	case "inline":
		return LayoutInline
	default:
		return LayoutStack
	}
}
