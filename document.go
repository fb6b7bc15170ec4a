package svgdom

import "strings"

// Document owns a node tree. The tree root is a Root node; a well-formed
// document has exactly one element child of the root, an svg element.
type Document struct {
	root *Node
	ids  map[string]*Node
}

// New returns an empty document.
func New() *Document {
	d := &Document{ids: map[string]*Node{}}
	d.root = d.newNode(KindRoot)
	return d
}

func (d *Document) newNode(kind NodeKind) *Node {
	n := &Node{doc: d, kind: kind}
	n.attrs.owner = n
	return n
}

// Root returns the document container node.
func (d *Document) Root() *Node { return d.root }

// SVGElement returns the first svg element child of the root, or nil.
func (d *Document) SVGElement() *Node {
	for c := d.root.first; c != nil; c = c.next {
		if c.Is(ElSVG) {
			return c
		}
	}
	return nil
}

// CreateElement returns a detached element node.
func (d *Document) CreateElement(tag TagName) *Node {
	n := d.newNode(KindElement)
	n.tag = tag
	return n
}

// CreateText returns a detached text node. The content is unescaped.
func (d *Document) CreateText(text string) *Node {
	n := d.newNode(KindText)
	n.text = text
	return n
}

// CreateComment returns a detached comment node.
func (d *Document) CreateComment(text string) *Node {
	n := d.newNode(KindComment)
	n.text = text
	return n
}

// ElementByID returns the first element parsed or registered with the id.
func (d *Document) ElementByID(id string) *Node {
	return d.ids[id]
}

// registerID records an id value, first occurrence winning. It reports
// whether the id was fresh.
func (d *Document) registerID(id string, n *Node) bool {
	if _, dup := d.ids[id]; dup {
		return false
	}
	d.ids[id] = n
	return true
}

func (d *Document) forgetID(n *Node) {
	if id := n.ID(); id != "" && d.ids[id] == n {
		delete(d.ids, id)
	}
}

// CheckIDs validates id uniqueness over the whole tree, returning a
// DuplicateIDError for the first repeated value.
func (d *Document) CheckIDs() error {
	seen := map[string]bool{}
	var dup *DuplicateIDError
	d.root.Descendants(func(n *Node) bool {
		if dup != nil {
			return false
		}
		if id := n.ID(); id != "" {
			if seen[id] {
				dup = &DuplicateIDError{ID: id}
				return false
			}
			seen[id] = true
		}
		return true
	})
	if dup != nil {
		return dup
	}
	return nil
}

// CopyNode returns a detached shallow copy of an element: same tag and
// attributes, no children. Link-valued attributes keep their targets, so the
// copy is registered in the targets' referrers.
func (d *Document) CopyNode(n *Node) *Node {
	c := d.newNode(n.kind)
	c.tag = n.tag
	c.text = n.text
	for _, attr := range n.attrs.list {
		c.attrs.SetQ(attr.Name, attr.Value)
		if !attr.Visible {
			c.attrs.list[len(c.attrs.list)-1].Visible = false
		}
	}
	return c
}

// CopyTree returns a detached deep copy of a subtree.
func (d *Document) CopyTree(n *Node) *Node {
	c := d.CopyNode(n)
	for child := n.first; child != nil; child = child.next {
		c.AppendChild(d.CopyTree(child))
	}
	return c
}

// TextContent concatenates the text nodes of a subtree in document order.
func TextContent(n *Node) string {
	var b strings.Builder
	n.Descendants(func(d *Node) bool {
		if d.kind == KindText {
			b.WriteString(d.text)
		}
		return true
	})
	return b.String()
}
