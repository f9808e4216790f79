package htmlwriter

import "strings"

// Attr is a single element attribute. Attribute order is significant:
// attributes render in the order they are supplied.
type Attr struct {
	Key   string
	Value string
}

// ID returns an id attribute.
func ID(v string) Attr {
	return Attr{Key: "id", Value: v}
}

// Classes returns a class attribute with the given class names space-joined.
func Classes(names ...string) Attr {
	return Attr{Key: "class", Value: strings.Join(names, " ")}
}

// StyleProp is a single CSS declaration used with Styles.
type StyleProp struct {
	Property string
	Value    string
}

// Styles returns a style attribute. Each declaration renders as
// "property: value;", space-joined, in argument order.
func Styles(props ...StyleProp) Attr {
	decls := make([]string, 0, len(props))
	for _, p := range props {
		decls = append(decls, p.Property+": "+p.Value+";")
	}
	return Attr{Key: "style", Value: strings.Join(decls, " ")}
}

type nodeKind int

const (
	kindElement nodeKind = iota
	kindText
)

// Node is one entry in the document tree: a tagged element or a raw text
// fragment. Nodes are created and wired exclusively through Builder calls.
type Node struct {
	kind        nodeKind
	name        string
	attrs       []Attr
	selfClosing bool
	text        string
	children    []*Node
}

func newElement(name string, selfClosing bool, attrs []Attr) (*Node, error) {
	if name == "" {
		return nil, newUsageError(KindInvalidTagName, "tag name must not be empty")
	}
	return &Node{
		kind:        kindElement,
		name:        name,
		attrs:       append([]Attr(nil), attrs...),
		selfClosing: selfClosing,
	}, nil
}

func newText(text string) *Node {
	return &Node{kind: kindText, text: text}
}

// appendChild enforces the content invariants: text fragments and
// self-closing elements never acquire children.
func (n *Node) appendChild(child *Node) error {
	if n.kind == kindText {
		return newUsageError(KindSelfClosingContent, "cannot append children to a text fragment")
	}
	if n.selfClosing {
		return newUsageError(KindSelfClosingContent, "cannot append children to self-closing element <"+n.name+">")
	}
	n.children = append(n.children, child)
	return nil
}

// clone deep-copies the subtree. When seen is non-nil it records the
// old-to-new node mapping, which Builder.Clone uses to re-point its
// insertion-point stack into the copied tree.
func (n *Node) clone(seen map[*Node]*Node) *Node {
	c := &Node{
		kind:        n.kind,
		name:        n.name,
		selfClosing: n.selfClosing,
		text:        n.text,
	}
	if len(n.attrs) > 0 {
		c.attrs = append([]Attr(nil), n.attrs...)
	}
	for _, ch := range n.children {
		c.children = append(c.children, ch.clone(seen))
	}
	if seen != nil {
		seen[n] = c
	}
	return c
}
