package svgdom

import (
	"log/slog"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// preprocess runs the normalization stages in their fixed order. Every stage
// is total: a second run over its output changes nothing.
func preprocess(doc *Document, opts *ParseOptions, log *slog.Logger) error {
	splitStyleAttributes(doc, opts, log)
	if err := resolveStylesheets(doc, opts, log); err != nil {
		return err
	}
	normalizeText(doc)
	if err := resolveLinks(doc, opts, log); err != nil {
		return err
	}
	breakCrosslinks(doc, log)
	pruneDefaults(doc)
	return nil
}

// Preprocess normalizes a tree built or mutated outside of Parse. Parse runs
// it implicitly.
func Preprocess(doc *Document, opts *ParseOptions) error {
	if opts == nil {
		opts = DefaultParseOptions()
	}
	return preprocess(doc, opts, opts.logger())
}

// splitStyleAttributes tokenizes each `style` attribute as a CSS declaration
// list and inserts every declaration as a peer attribute, overwriting any
// direct attribute of the same name.
func splitStyleAttributes(doc *Document, opts *ParseOptions, log *slog.Logger) {
	doc.Root().Descendants(func(n *Node) bool {
		if !n.IsElement() {
			return true
		}
		v, ok := n.attrs.Get(AttrStyle)
		if !ok {
			return true
		}
		text, ok := v.(String)
		if !ok {
			return true
		}
		n.attrs.Remove(AttrStyle)
		applyDeclarations(n, string(text), opts, log, nil)
		return true
	})
}

// applyDeclarations parses a CSS declaration list and sets each declaration
// as a typed attribute. When skip is non-nil, declarations whose attribute
// is listed there are not applied.
func applyDeclarations(n *Node, declList string, opts *ParseOptions, log *slog.Logger, skip map[QName]bool) {
	p := css.NewParser(parse.NewInputString(declList), true)
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			return
		}
		if gt != css.DeclarationGrammar {
			continue
		}

		property := string(data)
		var value strings.Builder
		for _, val := range p.Values() {
			value.Write(val.Data)
		}

		id := LookupAttribute(property)
		if id == AttrUnknown || !id.IsPresentation() {
			log.Warn("skipping non-presentation style declaration", "property", property)
			continue
		}
		if skip != nil && skip[AName(id)] {
			continue
		}
		if err := n.attrs.SetRaw(id, strings.TrimSpace(value.String())); err != nil {
			log.Warn("dropping invalid style declaration", "property", property, "error", err)
		}
	}
}

// textChunk is one text node plus its resolved xml:space mode.
type textChunk struct {
	node     *Node
	preserve bool
}

// normalizeText rewrites text content: XML whitespace becomes plain spaces,
// runs collapse and boundary whitespace is trimmed, except under
// xml:space="preserve". The innermost xml:space wins.
func normalizeText(doc *Document) {
	var groups [][]textChunk
	var current []textChunk
	var currentRoot *Node

	doc.Root().Descendants(func(n *Node) bool {
		if n.kind != KindText {
			return true
		}
		root, inText := textBlockRoot(n)
		if !inText {
			// Element content whitespace: every chunk stands alone.
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			currentRoot = nil
			groups = append(groups, []textChunk{{node: n, preserve: spacePreserved(n)}})
			return true
		}
		if root != currentRoot || current == nil {
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = nil
			currentRoot = root
		}
		current = append(current, textChunk{node: n, preserve: spacePreserved(n)})
		return true
	})
	if len(current) > 0 {
		groups = append(groups, current)
	}

	for _, group := range groups {
		for i, c := range group {
			text := strings.Map(func(r rune) rune {
				switch r {
				case '\t', '\n', '\f', '\r':
					return ' '
				}
				return r
			}, c.node.text)

			if !c.preserve {
				text = collapseSpaces(text)
				if i == 0 {
					text = strings.TrimPrefix(text, " ")
				}
				if i == len(group)-1 {
					text = strings.TrimSuffix(text, " ")
				}
			}

			if text == "" {
				c.node.Detach()
			} else {
				c.node.text = text
			}
		}
	}
}

// textBlockRoot finds the outermost text-content element a text node lives
// in. Text nodes sharing a root are normalized as one run; text outside of
// text content elements is element content whitespace.
func textBlockRoot(n *Node) (*Node, bool) {
	var root *Node
	for a := n.parent; a != nil && a.kind == KindElement; a = a.parent {
		switch a.tag.ID {
		case ElText, ElTspan, ElTref, ElTextPath, ElAltGlyph:
			root = a
		}
	}
	if root == nil {
		return n.parent, false
	}
	return root, true
}

// spacePreserved resolves the nearest ancestor's xml:space.
func spacePreserved(n *Node) bool {
	for a := n.parent; a != nil; a = a.parent {
		if v, ok := a.attrs.GetQ(XMLName(AttrXmlSpace)); ok {
			return v == Keyword("preserve")
		}
	}
	return false
}

func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}

// resolveLinks finishes typing the deferred link-valued attributes:
// xlink:href IRIs, FuncIRI attributes and paints, including the paint
// fallback rewrite for references that do not resolve.
func resolveLinks(doc *Document, opts *ParseOptions, log *slog.Logger) error {
	var firstErr error
	doc.Root().Descendants(func(n *Node) bool {
		if firstErr != nil {
			return false
		}
		if !n.IsElement() || n.tag.ID == ElUnknown {
			return true
		}
		for _, name := range linkAttrNames(n) {
			if err := resolveLinkAttr(doc, n, name, opts, log); err != nil {
				firstErr = err
				return false
			}
		}
		return true
	})
	return firstErr
}

// linkAttrNames snapshots the attribute names a link pass must visit.
func linkAttrNames(n *Node) []QName {
	var names []QName
	n.attrs.Each(func(a *Attribute) bool {
		if _, ok := a.Value.(String); !ok {
			return true
		}
		switch {
		case a.Name.Space == NSXlink && a.Name.ID == AttrHref:
			names = append(names, a.Name)
		case a.Name.Space == NSNone:
			switch attrValueKind(a.Name.ID) {
			case kindFuncIRI, kindPaint:
				names = append(names, a.Name)
			}
		}
		return true
	})
	return names
}

func resolveLinkAttr(doc *Document, n *Node, name QName, opts *ParseOptions, log *slog.Logger) error {
	raw := ""
	if v, ok := n.attrs.GetQ(name); ok {
		raw = string(v.(String))
	}

	if name.Space == NSXlink && name.ID == AttrHref {
		id, ok := strings.CutPrefix(strings.TrimSpace(raw), "#")
		if !ok {
			return nil // external reference, kept as a string
		}
		target := doc.ElementByID(id)
		if target == nil || target == n {
			log.Warn("unresolved reference", "attribute", name.String(), "id", id)
			return nil
		}
		return n.attrs.SetQ(name, Link{Node: target})
	}

	if attrValueKind(name.ID) == kindFuncIRI {
		id, tail, ok := funcIRI(raw)
		if !ok || tail != "" {
			return nil
		}
		target := doc.ElementByID(id)
		if target == nil || target == n {
			log.Warn("unresolved reference", "attribute", name.String(), "id", id)
			return nil
		}
		return n.attrs.SetQ(name, FuncLink{Node: target})
	}

	return resolvePaintAttr(doc, n, name, raw, opts, log)
}

func resolvePaintAttr(doc *Document, n *Node, name QName, raw string, opts *ParseOptions, log *slog.Logger) error {
	invalid := func(err error) error {
		if opts.SkipInvalidAttributes {
			log.Warn("dropping invalid attribute", "attribute", name.String(), "value", raw, "error", err)
			n.attrs.RemoveQ(name)
			return nil
		}
		return &InvalidAttributeValueError{Attr: name.String(), Value: raw, Cause: err}
	}

	id, tail, ok := funcIRI(raw)
	if !ok {
		c, err := ParseColor(raw)
		if err != nil {
			return invalid(err)
		}
		return n.attrs.SetQ(name, c)
	}

	var fallback *PaintFallback
	switch tail {
	case "":
	case "none":
		fallback = &PaintFallback{Kind: FallbackNone}
	case "currentColor":
		fallback = &PaintFallback{Kind: FallbackCurrentColor}
	default:
		c, err := ParseColor(tail)
		if err != nil {
			return invalid(err)
		}
		fallback = &PaintFallback{Kind: FallbackColor, Color: c}
	}

	target := doc.ElementByID(id)
	if target != nil && target != n {
		paint := Paint{Kind: PaintFuncIRI, Link: target}
		if fallback != nil {
			paint.HasFallback = true
			paint.Fallback = *fallback
		}
		return n.attrs.SetQ(name, paint)
	}

	// Broken reference: kept as written when fallbacks are skipped, otherwise
	// rewritten to the fallback.
	if opts.SkipPaintFallback {
		log.Warn("unresolved paint reference", "attribute", name.String(), "id", id)
		return nil
	}
	if fallback == nil {
		return &BrokenFuncIRIError{IRI: id}
	}
	log.Warn("unresolved paint reference; using the fallback", "attribute", name.String(), "id", id)
	switch fallback.Kind {
	case FallbackNone:
		return n.attrs.SetQ(name, None{})
	case FallbackCurrentColor:
		return n.attrs.SetQ(name, CurrentColor{})
	default:
		return n.attrs.SetQ(name, fallback.Color)
	}
}

// breakCrosslinks removes xlink:href attributes that close reference cycles
// between paint servers. Within a cycle the node last in document order
// loses its href.
func breakCrosslinks(doc *Document, log *slog.Logger) {
	order := map[*Node]int{}
	var servers []*Node
	i := 0
	doc.Root().Descendants(func(n *Node) bool {
		if n.IsElement() && n.tag.ID.IsPaintServer() {
			order[n] = i
			servers = append(servers, n)
		}
		i++
		return true
	})

	hrefTarget := func(n *Node) *Node {
		if v, ok := n.attrs.GetQ(XlinkName(AttrHref)); ok {
			if l, ok := v.(Link); ok && l.Node.tag.ID.IsPaintServer() {
				return l.Node
			}
		}
		return nil
	}

	for _, start := range servers {
		path := []*Node{start}
		onPath := map[*Node]bool{start: true}
		for {
			next := hrefTarget(path[len(path)-1])
			if next == nil {
				break
			}
			if onPath[next] {
				// Cycle: drop the href of the member latest in document
				// order.
				last := next
				for _, m := range path {
					if order[m] > order[last] && pathContains(path, next, m) {
						last = m
					}
				}
				last.attrs.RemoveQ(XlinkName(AttrHref))
				log.Warn("broke a reference cycle", "id", last.ID())
				break
			}
			path = append(path, next)
			onPath[next] = true
		}
	}
}

// pathContains reports whether m is on the cycle that starts at from.
func pathContains(path []*Node, from, m *Node) bool {
	seen := false
	for _, n := range path {
		if n == from {
			seen = true
		}
		if seen && n == m {
			return true
		}
	}
	return false
}

// presentationDefaults maps attributes to their SVG-defined default, in raw
// form. Defaults are parsed on demand and compared fuzzily.
var presentationDefaults = map[AttributeID]string{
	AttrClipRule:            "nonzero",
	AttrDisplay:             "inline",
	AttrFill:                "black",
	AttrFillOpacity:         "1",
	AttrFillRule:            "nonzero",
	AttrFloodOpacity:        "1",
	AttrOpacity:             "1",
	AttrStopOpacity:         "1",
	AttrStroke:              "none",
	AttrStrokeDasharray:     "none",
	AttrStrokeDashoffset:    "0",
	AttrStrokeLinecap:       "butt",
	AttrStrokeLinejoin:      "miter",
	AttrStrokeMiterlimit:    "4",
	AttrStrokeOpacity:       "1",
	AttrStrokeWidth:         "1",
	AttrVisibility:          "visible",
	AttrPreserveAspectRatio: "xMidYMid meet",
	AttrGradientUnits:       "objectBoundingBox",
	AttrPatternUnits:        "objectBoundingBox",
	AttrPatternContentUnits: "userSpaceOnUse",
	AttrClipPathUnits:       "userSpaceOnUse",
	AttrMaskUnits:           "objectBoundingBox",
	AttrMaskContentUnits:    "userSpaceOnUse",
	AttrFilterUnits:         "objectBoundingBox",
	AttrPrimitiveUnits:      "userSpaceOnUse",
	AttrSpreadMethod:        "pad",
	AttrMarkerUnits:         "strokeWidth",
	AttrXmlSpace:            "default",
}

var defaultValues = map[AttributeID]Value{}

func defaultValue(id AttributeID) Value {
	if v, ok := defaultValues[id]; ok {
		return v
	}
	raw, ok := presentationDefaults[id]
	if !ok {
		return nil
	}
	var v Value
	switch attrValueKind(id) {
	case kindPaint:
		// Paints are link-typed and deferred by ParseValue; defaults are
		// plain colors or none.
		if raw == "none" {
			v = None{}
		} else if c, err := ParseColor(raw); err == nil {
			v = c
		} else {
			return nil
		}
	default:
		parsed, err := ParseValue(id, raw)
		if err != nil {
			return nil
		}
		v = parsed
	}
	defaultValues[id] = v
	return v
}

// pruneDefaults drops attributes whose value equals the SVG default,
// identity transforms and empty lists. Inheritable presentation attributes
// are kept when an ancestor overrides them, since removal would then change
// what the element inherits.
func pruneDefaults(doc *Document) {
	doc.Root().Descendants(func(n *Node) bool {
		if !n.IsElement() {
			return true
		}
		var drop []QName
		n.attrs.Each(func(a *Attribute) bool {
			switch v := a.Value.(type) {
			case Transform:
				if v.IsIdentity() {
					drop = append(drop, a.Name)
				}
				return true
			case NumberList:
				if len(v) == 0 {
					drop = append(drop, a.Name)
				}
				return true
			case LengthList:
				if len(v) == 0 {
					drop = append(drop, a.Name)
				}
				return true
			case Points:
				if len(v) == 0 {
					drop = append(drop, a.Name)
				}
				return true
			}

			var def Value
			switch {
			case a.Name == AName(a.Name.ID) && a.Name.ID != AttrUnknown:
				def = defaultValue(a.Name.ID)
			case a.Name == XMLName(AttrXmlSpace):
				def = defaultValue(AttrXmlSpace)
			}
			if def == nil || !ValuesEqual(a.Value, def) {
				return true
			}
			if (a.Name.ID.IsPresentation() || a.Name.ID == AttrXmlSpace) && ancestorDefines(n, a.Name) {
				return true
			}
			drop = append(drop, a.Name)
			return true
		})
		for _, name := range drop {
			n.attrs.RemoveQ(name)
		}
		return true
	})
}

func ancestorDefines(n *Node, name QName) bool {
	for a := n.parent; a != nil; a = a.parent {
		if a.attrs.ContainsQ(name) {
			return true
		}
	}
	return false
}
