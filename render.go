package htmlwriter

import "strings"

// DefaultIndentSize is the indentation used by String.
const DefaultIndentSize = 2

// Render serializes the tree to text, depth-first. Each nesting level is
// indented by indentSize spaces (negative values are treated as zero); the
// document's top-level children sit at depth zero.
//
// Elements render as an opening tag line, their children one level deeper,
// then a closing tag line at the opening tag's depth. An element with no
// children still renders both lines; only elements created with
// SelfClosingTag collapse to a single "<name .../>" line. Attributes render
// in insertion order as key="value", space-separated. Text fragments render
// verbatim, one source line per output line, at the fragment's depth.
//
// Rendering is deterministic and does not mutate the tree: rendering the
// same unmutated builder twice yields identical output.
func (b *Builder) Render(indentSize int) string {
	if indentSize < 0 {
		indentSize = 0
	}
	var sb strings.Builder
	for _, n := range b.roots {
		writeNode(&sb, n, 0, indentSize)
	}
	return sb.String()
}

// String renders with DefaultIndentSize.
func (b *Builder) String() string {
	return b.Render(DefaultIndentSize)
}

func writeNode(sb *strings.Builder, n *Node, depth, indentSize int) {
	prefix := strings.Repeat(" ", depth*indentSize)

	if n.kind == kindText {
		for _, line := range strings.Split(n.text, "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		return
	}

	sb.WriteString(prefix)
	sb.WriteByte('<')
	sb.WriteString(n.name)
	for _, a := range n.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	if n.selfClosing {
		sb.WriteString("/>\n")
		return
	}
	sb.WriteString(">\n")

	for _, c := range n.children {
		writeNode(sb, c, depth+1, indentSize)
	}

	sb.WriteString(prefix)
	sb.WriteString("</")
	sb.WriteString(n.name)
	sb.WriteString(">\n")
}
