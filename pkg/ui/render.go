package ui

import (
	"html"
	"sort"
	"strings"
)

// voidElements never carry children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// RenderHTML renders a node tree to an HTML string.
// Text content and attribute values are escaped; KindRaw is emitted verbatim.
func RenderHTML(n *Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// RenderComponent renders a component to HTML.
// A nil component renders to an empty string.
func RenderComponent(c Component) string {
	if c == nil {
		return ""
	}
	node := c.Render()
	if node == nil {
		return ""
	}
	return RenderHTML(node)
}

func writeNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindText:
		b.WriteString(html.EscapeString(n.Text))

	case KindRaw:
		b.WriteString(n.Text)

	case KindFragment:
		for _, child := range n.Children {
			writeNode(b, child)
		}

	case KindElement:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		writeAttrs(b, n.Attrs)
		if voidElements[n.Tag] {
			b.WriteString("/>")
			return
		}
		b.WriteByte('>')
		for _, child := range n.Children {
			writeNode(b, child)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

// writeAttrs writes attributes in sorted key order for deterministic output.
func writeAttrs(b *strings.Builder, attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrs[k]))
		b.WriteByte('"')
	}
}
