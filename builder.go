package htmlwriter

// Builder constructs a document tree through scoped tag nesting.
//
// The zero value is not usable; create builders with New. A Builder is not
// safe for concurrent use (see the package documentation).
type Builder struct {
	roots []*Node
	stack []*Node
}

// New returns an empty Builder whose insertion point is the document top
// level. Multiple top-level children are allowed, raw text included, so a
// builder can hold e.g. a doctype line followed by an <html> element.
func New() *Builder {
	return &Builder{roots: make([]*Node, 0, 4)}
}

// current returns the node new children are appended to, or nil when the
// insertion point is the document top level.
func (b *Builder) current() *Node {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) appendNode(n *Node) error {
	cur := b.current()
	if cur == nil {
		b.roots = append(b.roots, n)
		return nil
	}
	return cur.appendChild(n)
}

// OpenTag creates an element, appends it at the current insertion point, and
// pushes it as the new insertion point. The returned Tag must be closed on
// every exit path; prefer Tag, which does this automatically.
func (b *Builder) OpenTag(name string, attrs ...Attr) (*Tag, error) {
	n, err := newElement(name, false, attrs)
	if err != nil {
		return nil, err
	}
	if err := b.appendNode(n); err != nil {
		return nil, err
	}
	b.stack = append(b.stack, n)
	return &Tag{builder: b, node: n}, nil
}

// CloseTag pops the innermost open scope, returning the insertion point to
// the parent. Closing with no open scope is a usage error.
func (b *Builder) CloseTag() error {
	if len(b.stack) == 0 {
		return newUsageError(KindUnbalancedScope, "close without a matching open")
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// Tag opens an element, runs fn inside its scope, and closes the scope again
// on every exit path, panics included. fn may be nil for an empty element.
// fn's error, if any, is returned after the scope has closed.
func (b *Builder) Tag(name string, attrs []Attr, fn func(*Tag) error) (err error) {
	t, openErr := b.OpenTag(name, attrs...)
	if openErr != nil {
		return openErr
	}
	defer func() {
		if closeErr := t.Close(); err == nil {
			err = closeErr
		}
	}()
	if fn != nil {
		return fn(t)
	}
	return nil
}

// SelfClosingTag appends a self-closing element at the current insertion
// point. The insertion point does not change, and the element can never
// receive children or text.
func (b *Builder) SelfClosingTag(name string, attrs ...Attr) error {
	n, err := newElement(name, true, attrs)
	if err != nil {
		return err
	}
	return b.appendNode(n)
}

// AppendText appends a text fragment at the current insertion point. At the
// top level this adds a top-level text line (e.g. a doctype). The text is
// emitted verbatim; escaping is the caller's responsibility.
func (b *Builder) AppendText(text string) error {
	return b.appendNode(newText(text))
}

// TagWithContent opens an element, appends content as its only text child,
// and closes it again.
func (b *Builder) TagWithContent(content, name string, attrs ...Attr) error {
	return b.Tag(name, attrs, func(t *Tag) error {
		return t.AppendText(content)
	})
}

// Tag is the scope handle for an open element, returned by OpenTag.
type Tag struct {
	builder *Builder
	node    *Node
	closed  bool
}

// AppendText appends a text fragment as a child of this element.
func (t *Tag) AppendText(text string) error {
	if t.closed {
		return newUsageError(KindUnbalancedScope, "append to a closed tag scope")
	}
	return t.node.appendChild(newText(text))
}

// Close pops this element's scope. Closing twice, or closing while an inner
// scope is still open, is a usage error.
func (t *Tag) Close() error {
	if t.closed {
		return newUsageError(KindUnbalancedScope, "tag scope closed twice")
	}
	if t.builder.current() != t.node {
		return newUsageError(KindUnbalancedScope, "close out of nesting order: <"+t.node.name+"> is not the innermost open scope")
	}
	t.closed = true
	return t.builder.CloseTag()
}
