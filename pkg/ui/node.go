package ui

import "strings"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <section>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is a renderable tree node.
type Node struct {
	Kind     Kind
	Tag      string            // Element tag name (e.g., "div")
	Attrs    map[string]string // Attributes
	Children []*Node
	Key      string // Reconciliation key for keyed lists
	Text     string // For KindText and KindRaw
}

// Component is anything that can render to a Node.
type Component interface {
	Render() *Node
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *Node
}

// Render implements Component.
func (f *FuncComponent) Render() *Node {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *Node) Component {
	return &FuncComponent{render: render}
}

// El creates an element node with the given tag and children.
func El(tag string, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Children: children}
}

// Text creates a text node.
func Text(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// Fragment groups nodes without introducing a wrapper element.
func Fragment(children ...*Node) *Node {
	return &Node{Kind: KindFragment, Children: children}
}

// Raw creates a raw HTML node. The content is emitted verbatim.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// WithAttr sets an attribute and returns the node for chaining.
func (n *Node) WithAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// WithClass appends CSS classes, joining with the existing value.
func (n *Node) WithClass(classes ...string) *Node {
	joined := strings.Join(classes, " ")
	if joined == "" {
		return n
	}
	if existing := n.attr("class"); existing != "" {
		joined = existing + " " + joined
	}
	return n.WithAttr("class", joined)
}

// WithKey sets the reconciliation key and returns the node for chaining.
func (n *Node) WithKey(key string) *Node {
	n.Key = key
	return n
}

func (n *Node) attr(key string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}
