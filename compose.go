package htmlwriter

// Combine deep-copies the builders' top-level sequences into a new Builder,
// in argument order. The inputs are not mutated and share no nodes with the
// result; nil builders are skipped. Open scopes on the inputs are ignored:
// only the trees built so far are copied.
func Combine(builders ...*Builder) *Builder {
	out := New()
	for _, src := range builders {
		if src == nil {
			continue
		}
		for _, n := range src.roots {
			out.roots = append(out.roots, n.clone(nil))
		}
	}
	return out
}

// Append deep-copies other's top-level children onto b's current insertion
// point. other is not mutated; appending a builder to itself is allowed and
// copies the content as it was before the call.
func (b *Builder) Append(other *Builder) error {
	if other == nil {
		return nil
	}
	src := other.roots
	for _, n := range src {
		if err := b.appendNode(n.clone(nil)); err != nil {
			return err
		}
	}
	return nil
}

// EncloseWithTag wraps the builder's existing top-level children in a new
// root element, so content can be built first and its container decided
// later. It is a usage error while any tag scope is open.
func (b *Builder) EncloseWithTag(name string, attrs ...Attr) error {
	if len(b.stack) != 0 {
		return newUsageError(KindUnbalancedScope, "enclose while tag scopes are open")
	}
	root, err := newElement(name, false, attrs)
	if err != nil {
		return err
	}
	root.children = b.roots
	b.roots = []*Node{root}
	return nil
}

// Clone returns a deep copy of the builder. Open scopes survive the copy:
// the clone's insertion-point stack points at the corresponding nodes of the
// copied tree, so both builders can keep building independently.
func (b *Builder) Clone() *Builder {
	seen := make(map[*Node]*Node, len(b.stack))
	out := New()
	for _, n := range b.roots {
		out.roots = append(out.roots, n.clone(seen))
	}
	for _, n := range b.stack {
		out.stack = append(out.stack, seen[n])
	}
	return out
}

// HTMLTemplate assembles a complete page: a doctype line, then an <html>
// element wrapping a <head> and a <body> filled with deep copies of the
// given builders' top-level content. Either input may be nil for an empty
// section; neither is mutated.
func HTMLTemplate(head, body *Builder) *Builder {
	headEl := &Node{kind: kindElement, name: "head"}
	if head != nil {
		for _, n := range head.roots {
			headEl.children = append(headEl.children, n.clone(nil))
		}
	}
	bodyEl := &Node{kind: kindElement, name: "body"}
	if body != nil {
		for _, n := range body.roots {
			bodyEl.children = append(bodyEl.children, n.clone(nil))
		}
	}
	htmlEl := &Node{kind: kindElement, name: "html", children: []*Node{headEl, bodyEl}}

	out := New()
	out.roots = append(out.roots, newText("<!DOCTYPE html>"), htmlEl)
	return out
}
