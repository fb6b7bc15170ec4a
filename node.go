package svgdom

// NodeKind discriminates tree nodes.
type NodeKind uint8

const (
	KindRoot NodeKind = iota
	KindElement
	KindText
	KindComment
	KindDeclaration
)

// TagName is a known element id or an opaque name.
type TagName struct {
	ID    ElementID
	Local string // used when ID == ElUnknown
}

// NewTagName builds a TagName from a raw element name.
func NewTagName(name string) TagName {
	if id := LookupElement(name); id != ElUnknown {
		return TagName{ID: id}
	}
	return TagName{Local: name}
}

func (t TagName) String() string {
	if t.ID != ElUnknown {
		return t.ID.String()
	}
	return t.Local
}

type refEdge struct {
	node *Node
	attr QName
}

// Node is a single entity of the document tree.
type Node struct {
	doc    *Document
	parent *Node
	prev   *Node
	next   *Node
	first  *Node
	last   *Node

	kind NodeKind
	tag  TagName
	text string // text or comment content, already unescaped

	attrs Attributes

	// referrers lists the (node, attribute) pairs whose values currently
	// link here. It is the exact transposition of the forward link set.
	referrers []refEdge
}

// Kind returns the node discriminator.
func (n *Node) Kind() NodeKind { return n.kind }

// Document returns the owning document.
func (n *Node) Document() *Document { return n.doc }

// Parent returns the parent node, or nil for detached nodes and the root.
func (n *Node) Parent() *Node { return n.parent }

// PrevSibling returns the previous sibling, if any.
func (n *Node) PrevSibling() *Node { return n.prev }

// NextSibling returns the next sibling, if any.
func (n *Node) NextSibling() *Node { return n.next }

// FirstChild returns the first child, if any.
func (n *Node) FirstChild() *Node { return n.first }

// LastChild returns the last child, if any.
func (n *Node) LastChild() *Node { return n.last }

// HasChildren reports whether the node has children.
func (n *Node) HasChildren() bool { return n.first != nil }

// IsElement reports whether the node is an element.
func (n *Node) IsElement() bool { return n.kind == KindElement }

// Tag returns the element tag name. It is the zero TagName for non-elements.
func (n *Node) Tag() TagName { return n.tag }

// Is reports whether the node is an element with the given id.
func (n *Node) Is(id ElementID) bool {
	return n.kind == KindElement && n.tag.ID == id
}

// SetTag renames an element.
func (n *Node) SetTag(t TagName) error {
	if n.kind != KindElement {
		return ErrNotAnElement
	}
	n.tag = t
	return nil
}

// Text returns the content of a text or comment node.
func (n *Node) Text() string { return n.text }

// SetText replaces the content of a text or comment node.
func (n *Node) SetText(s string) { n.text = s }

// Attributes returns the node's attribute set.
func (n *Node) Attributes() *Attributes { return &n.attrs }

// ID returns the value of the id attribute, or "".
func (n *Node) ID() string {
	if v, ok := n.attrs.Get(AttrID); ok {
		if s, ok := v.(String); ok {
			return string(s)
		}
	}
	return ""
}

// Referrers returns the nodes currently linking here. The slice is a copy.
func (n *Node) Referrers() []*Node {
	out := make([]*Node, 0, len(n.referrers))
	for _, e := range n.referrers {
		out = append(out, e.node)
	}
	return out
}

// IsReferenced reports whether any node links here.
func (n *Node) IsReferenced() bool { return len(n.referrers) > 0 }

func (n *Node) addReferrer(src *Node, attr QName) {
	for _, e := range n.referrers {
		if e.node == src && e.attr == attr {
			return
		}
	}
	n.referrers = append(n.referrers, refEdge{node: src, attr: attr})
}

func (n *Node) dropReferrer(src *Node, attr QName) {
	for i, e := range n.referrers {
		if e.node == src && e.attr == attr {
			n.referrers = append(n.referrers[:i], n.referrers[i+1:]...)
			return
		}
	}
}

// AppendChild attaches child as the last child of n. The child must be
// detached.
func (n *Node) AppendChild(child *Node) {
	child.parent = n
	child.prev = n.last
	child.next = nil
	if n.last != nil {
		n.last.next = child
	} else {
		n.first = child
	}
	n.last = child
}

// PrependChild attaches child as the first child of n.
func (n *Node) PrependChild(child *Node) {
	child.parent = n
	child.next = n.first
	child.prev = nil
	if n.first != nil {
		n.first.prev = child
	} else {
		n.last = child
	}
	n.first = child
}

// InsertBefore attaches child immediately before n. Fails when n has no
// parent.
func (n *Node) InsertBefore(child *Node) error {
	if n.parent == nil {
		return ErrDetachedNode
	}
	child.parent = n.parent
	child.prev = n.prev
	child.next = n
	if n.prev != nil {
		n.prev.next = child
	} else {
		n.parent.first = child
	}
	n.prev = child
	return nil
}

// InsertAfter attaches child immediately after n. Fails when n has no
// parent.
func (n *Node) InsertAfter(child *Node) error {
	if n.parent == nil {
		return ErrDetachedNode
	}
	child.parent = n.parent
	child.next = n.next
	child.prev = n
	if n.next != nil {
		n.next.prev = child
	} else {
		n.parent.last = child
	}
	n.next = child
	return nil
}

// Detach unlinks the node from its parent and siblings. The subtree, its
// outgoing links and its incoming referrers stay intact.
func (n *Node) Detach() {
	if n.parent != nil {
		if n.parent.first == n {
			n.parent.first = n.next
		}
		if n.parent.last == n {
			n.parent.last = n.prev
		}
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.parent = nil
	n.prev = nil
	n.next = nil
}

// Remove detaches the node and erases its subtree from the link index: every
// outgoing link of the subtree is unregistered, and every attribute outside
// the subtree that links into it is rewritten per the broken-link policy
// (fill/stroke fall back to their fallback color or none; other link-valued
// attributes are dropped). Both directions are updated before Remove
// returns; there is no observable intermediate state.
func (n *Node) Remove() {
	n.Detach()

	inside := map[*Node]bool{}
	n.Descendants(func(d *Node) bool {
		inside[d] = true
		return true
	})

	for d := range inside {
		// Release outgoing links.
		for _, a := range d.attrs.list {
			for _, t := range linkTargets(a.Value) {
				t.dropReferrer(d, a.Name)
			}
		}
		// Rewrite incoming links per the broken-link policy.
		for _, e := range append([]refEdge(nil), d.referrers...) {
			if inside[e.node] {
				d.dropReferrer(e.node, e.attr)
				continue
			}
			e.node.attrs.breakLink(e.attr, d)
		}
		d.referrers = nil
		if d.doc != nil {
			d.doc.forgetID(d)
		}
	}
}

// Descendants visits n and its subtree in pre-order. Returning false skips
// the node's subtree.
func (n *Node) Descendants(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.first; c != nil; c = c.next {
		c.Descendants(visit)
	}
}

// Ancestors visits the node and each ancestor up to and including the root.
// Returning false stops the walk.
func (n *Node) Ancestors(visit func(*Node) bool) {
	for a := n; a != nil; a = a.parent {
		if !visit(a) {
			return
		}
	}
}

// EachChild visits the direct children in order. Returning false stops.
func (n *Node) EachChild(visit func(*Node) bool) {
	for c := n.first; c != nil; {
		next := c.next
		if !visit(c) {
			return
		}
		c = next
	}
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for c := n.first; c != nil; c = c.next {
		count++
	}
	return count
}
