package svgdom

import (
	"io"
	"sort"
	"strings"
)

// WriteTo serializes the document. A nil opts means DefaultWriteOptions.
// Output is deterministic: equal trees and equal options produce identical
// bytes.
func (d *Document) WriteTo(w io.Writer, opts *WriteOptions) error {
	if opts == nil {
		opts = DefaultWriteOptions()
	}
	wr := &writer{opts: opts, needXlink: treeUsesXlink(d.root)}
	for c := d.root.first; c != nil; c = c.next {
		wr.writeNode(c, 0, false)
		if opts.Indent.Kind != IndentNone {
			wr.b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, wr.b.String())
	return err
}

// String serializes with the default options.
func (d *Document) String() string {
	var b strings.Builder
	d.WriteTo(&b, nil)
	return b.String()
}

// StringWith serializes with the given options.
func (d *Document) StringWith(opts *WriteOptions) string {
	var b strings.Builder
	d.WriteTo(&b, opts)
	return b.String()
}

func treeUsesXlink(root *Node) bool {
	used := false
	root.Descendants(func(n *Node) bool {
		if used {
			return false
		}
		n.attrs.Each(func(a *Attribute) bool {
			if a.Name.Space == NSXlink || strings.HasPrefix(a.Name.Local, "xlink:") {
				used = true
				return false
			}
			return true
		})
		return true
	})
	return used
}

type writer struct {
	b         strings.Builder
	opts      *WriteOptions
	needXlink bool
}

func (w *writer) quote() byte {
	if w.opts.UseSingleQuote {
		return '\''
	}
	return '"'
}

func (w *writer) indent(depth int) {
	switch w.opts.Indent.Kind {
	case IndentSpaces:
		w.b.WriteString(strings.Repeat(" ", int(w.opts.Indent.Count)*depth))
	case IndentTabs:
		w.b.WriteString(strings.Repeat("\t", depth))
	}
}

func (w *writer) writeNode(n *Node, depth int, inline bool) {
	switch n.kind {
	case KindDeclaration:
		w.writeDeclaration(n)
	case KindComment:
		w.b.WriteString("<!--")
		w.b.WriteString(n.text)
		w.b.WriteString("-->")
	case KindText:
		w.b.WriteString(escapeText(n.text))
	case KindElement:
		w.writeElement(n, depth, inline)
	}
}

func (w *writer) writeDeclaration(n *Node) {
	w.b.WriteString("<?xml")
	n.attrs.Each(func(a *Attribute) bool {
		w.b.WriteByte(' ')
		w.b.WriteString(a.Name.String())
		w.b.WriteByte('=')
		w.b.WriteByte(w.quote())
		w.writeValue(a)
		w.b.WriteByte(w.quote())
		return true
	})
	w.b.WriteString("?>")
}

func (w *writer) writeElement(n *Node, depth int, inline bool) {
	w.b.WriteByte('<')
	w.b.WriteString(n.tag.String())

	if n.Is(ElSVG) && n.parent != nil && n.parent.kind == KindRoot {
		w.writeNamespaces(n, depth)
	}
	w.writeAttributes(n, depth)

	if n.first == nil {
		w.b.WriteString("/>")
		return
	}

	w.b.WriteByte('>')

	// Mixed content is written verbatim: indentation inside a text run
	// would change it.
	childInline := inline || hasTextChild(n)
	for c := n.first; c != nil; c = c.next {
		if !childInline && w.opts.Indent.Kind != IndentNone {
			w.b.WriteByte('\n')
			w.indent(depth + 1)
		}
		w.writeNode(c, depth+1, childInline)
	}
	if !childInline && w.opts.Indent.Kind != IndentNone {
		w.b.WriteByte('\n')
		w.indent(depth)
	}

	w.b.WriteString("</")
	w.b.WriteString(n.tag.String())
	w.b.WriteByte('>')
}

func hasTextChild(n *Node) bool {
	for c := n.first; c != nil; c = c.next {
		if c.kind == KindText {
			return true
		}
	}
	return false
}

func (w *writer) writeNamespaces(n *Node, depth int) {
	w.writeRawAttr(depth, "xmlns", svgNamespace)
	if w.needXlink {
		w.writeRawAttr(depth, "xmlns:xlink", xlinkNamespace)
	}
}

func (w *writer) writeRawAttr(depth int, name, value string) {
	w.attrSeparator(depth)
	w.b.WriteString(name)
	w.b.WriteByte('=')
	w.b.WriteByte(w.quote())
	w.b.WriteString(escapeAttr(value, w.quote()))
	w.b.WriteByte(w.quote())
}

func (w *writer) attrSeparator(depth int) {
	switch w.opts.AttributesIndent.Kind {
	case IndentNone:
		w.b.WriteByte(' ')
	case IndentSpaces:
		w.b.WriteByte('\n')
		w.b.WriteString(strings.Repeat(" ", int(w.opts.AttributesIndent.Count)*(depth+1)))
	case IndentTabs:
		w.b.WriteByte('\n')
		w.b.WriteString(strings.Repeat("\t", depth+1))
	}
}

func (w *writer) writeAttributes(n *Node, depth int) {
	attrs := make([]*Attribute, 0, n.attrs.Len())
	n.attrs.Each(func(a *Attribute) bool {
		if !a.Visible && !w.opts.WriteHiddenAttributes {
			return true
		}
		attrs = append(attrs, a)
		return true
	})

	switch w.opts.AttributesOrder {
	case OrderAlphabetical:
		sort.SliceStable(attrs, func(i, j int) bool {
			return attrSortKey(attrs[i].Name) < attrSortKey(attrs[j].Name)
		})
	case OrderSpecification:
		sort.SliceStable(attrs, func(i, j int) bool {
			if pi, pj := specPriority(attrs[i].Name), specPriority(attrs[j].Name); pi != pj {
				return pi < pj
			}
			return attrSortKey(attrs[i].Name) < attrSortKey(attrs[j].Name)
		})
	}

	for _, a := range attrs {
		w.attrSeparator(depth)
		w.b.WriteString(a.Name.String())
		w.b.WriteByte('=')
		w.b.WriteByte(w.quote())
		w.writeValue(a)
		w.b.WriteByte(w.quote())
	}
}

func attrSortKey(name QName) string {
	if name.ID == AttrID && name.Space == NSNone {
		return "" // id sorts first
	}
	return name.String()
}

func specPriority(name QName) int {
	switch {
	case name.Space == NSNone && name.ID == AttrID:
		return 0
	case name.Space == NSNone && name.ID == AttrClass:
		return 1
	case name.Space == NSNone && name.ID == AttrStyle:
		return 2
	case name.ID != AttrUnknown && !name.ID.IsPresentation():
		return 3
	case name.ID != AttrUnknown:
		return 4
	}
	return 5
}

func (w *writer) writeValue(a *Attribute) {
	opts := w.opts
	b := &w.b
	quote := w.quote()

	switch v := a.Value.(type) {
	case None:
		b.WriteString("none")
	case Inherit:
		b.WriteString("inherit")
	case CurrentColor:
		b.WriteString("currentColor")
	case String:
		b.WriteString(escapeAttr(string(v), quote))
	case Keyword:
		b.WriteString(string(v))
	case Number:
		b.WriteString(formatNumber(float64(v), opts.numbersPrecision(), opts.RemoveLeadingZero))
	case NumberList:
		sep := opts.ListSeparator.String()
		for i, f := range v {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(formatNumber(f, opts.numbersPrecision(), opts.RemoveLeadingZero))
		}
	case Length:
		prec := opts.numbersPrecision()
		if isCoordinateAttr(a.Name.ID) {
			prec = opts.coordinatesPrecision()
		}
		b.WriteString(formatNumber(v.Num, prec, opts.RemoveLeadingZero))
		b.WriteString(v.Unit.String())
	case LengthList:
		sep := opts.ListSeparator.String()
		for i, l := range v {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(formatNumber(l.Num, opts.numbersPrecision(), opts.RemoveLeadingZero))
			b.WriteString(l.Unit.String())
		}
	case Color:
		v.writeTo(b, opts)
	case Transform:
		v.writeTo(b, opts)
	case Path:
		v.writeTo(b, opts)
	case ViewBox:
		sep := opts.ListSeparator.String()
		for i, f := range [4]float64{v.X, v.Y, v.W, v.H} {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(formatNumber(f, opts.coordinatesPrecision(), opts.RemoveLeadingZero))
		}
	case AspectRatio:
		if v.Defer {
			b.WriteString("defer ")
		}
		b.WriteString(alignNames[v.Align])
		if v.Slice {
			b.WriteString(" slice")
		}
	case Points:
		sep := opts.ListSeparator.String()
		for i, pt := range v {
			if i > 0 {
				b.WriteString(sep)
			}
			b.WriteString(formatNumber(pt.X, opts.coordinatesPrecision(), opts.RemoveLeadingZero))
			b.WriteString(sep)
			b.WriteString(formatNumber(pt.Y, opts.coordinatesPrecision(), opts.RemoveLeadingZero))
		}
	case Link:
		b.WriteByte('#')
		b.WriteString(v.Node.ID())
	case FuncLink:
		b.WriteString("url(#")
		b.WriteString(v.Node.ID())
		b.WriteByte(')')
	case Paint:
		switch v.Kind {
		case PaintColor:
			v.Color.writeTo(b, opts)
		case PaintFuncIRI:
			b.WriteString("url(#")
			b.WriteString(v.Link.ID())
			b.WriteByte(')')
			if v.HasFallback {
				b.WriteByte(' ')
				switch v.Fallback.Kind {
				case FallbackNone:
					b.WriteString("none")
				case FallbackCurrentColor:
					b.WriteString("currentColor")
				default:
					v.Fallback.Color.writeTo(b, opts)
				}
			}
		}
	}
}

func isCoordinateAttr(id AttributeID) bool {
	switch id {
	case AttrX, AttrY, AttrX1, AttrY1, AttrX2, AttrY2, AttrCx, AttrCy,
		AttrFx, AttrFy, AttrR, AttrRx, AttrRy, AttrWidth, AttrHeight,
		AttrRefX, AttrRefY, AttrMarkerWidth, AttrMarkerHeight:
		return true
	}
	return false
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string, quote byte) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	if quote == '\'' {
		return strings.ReplaceAll(s, "'", "&apos;")
	}
	return strings.ReplaceAll(s, `"`, "&quot;")
}
