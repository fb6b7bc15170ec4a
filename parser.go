package svgdom

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

// Parse parses SVG text into a preprocessed document. A nil opts means
// DefaultParseOptions.
func Parse(text string, opts *ParseOptions) (*Document, error) {
	if opts == nil {
		opts = DefaultParseOptions()
	}

	text = strings.TrimPrefix(text, "\ufeff")
	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}

	p := &parser{
		doc:      New(),
		opts:     opts,
		log:      opts.logger(),
		entities: map[string]string{},
		prefixes: map[string]string{"xlink": xlinkNamespace},
	}

	if err := p.parseInto(p.doc.Root(), text, true); err != nil {
		return nil, err
	}
	if p.doc.SVGElement() == nil {
		return nil, ErrEmptyDocument
	}
	if err := preprocess(p.doc, opts, p.log); err != nil {
		return nil, err
	}
	return p.doc, nil
}

type parser struct {
	doc      *Document
	opts     *ParseOptions
	log      *slog.Logger
	entities map[string]string
	prefixes map[string]string // namespace prefix -> URI
	depth    int               // entity fragment nesting
}

type rawAttr struct {
	name  string
	value string
}

// parseInto tokenizes text and appends the resulting nodes to parent. The
// same routine parses both whole documents and entity fragments.
func (p *parser) parseInto(parent *Node, text string, top bool) error {
	input := parse.NewInputString(text)
	l := xml.NewLexer(input)

	cur := parent
	var pendingName string
	var pendingAttrs []rawAttr
	pendingPI := false

	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if !errors.Is(l.Err(), io.EOF) {
				return &XMLError{Err: l.Err(), Offset: input.Offset()}
			}
			if cur != parent {
				return &XMLError{Err: errors.New("unexpected end of document"), Offset: input.Offset()}
			}
			return nil

		case xml.DOCTYPEToken:
			harvestEntities(string(data), p.entities)

		case xml.StartTagToken:
			pendingName = string(l.Text())
			pendingAttrs = pendingAttrs[:0]
			pendingPI = false

		case xml.StartTagPIToken:
			pendingName = string(l.Text())
			pendingAttrs = pendingAttrs[:0]
			pendingPI = true

		case xml.AttributeToken:
			pendingAttrs = append(pendingAttrs, rawAttr{
				name:  string(l.Text()),
				value: unquoteAttr(string(l.AttrVal())),
			})

		case xml.StartTagCloseToken, xml.StartTagCloseVoidToken:
			el, err := p.finishElement(cur, pendingName, pendingAttrs, input.Offset())
			if err != nil {
				return err
			}
			if tt == xml.StartTagCloseToken {
				cur = el
			}

		case xml.StartTagClosePIToken:
			if pendingPI && pendingName == "xml" && top && cur == p.doc.Root() {
				p.finishDeclaration(pendingAttrs)
			}
			pendingPI = false

		case xml.EndTagToken:
			name := string(l.Text())
			if cur == parent {
				return &XMLError{Err: fmt.Errorf("unexpected closing tag %q", name), Offset: input.Offset()}
			}
			if got := p.tagName(name).String(); got != cur.tag.String() {
				return &XMLError{
					Err:    fmt.Errorf("closing tag %q does not match %q", got, cur.tag.String()),
					Offset: input.Offset(),
				}
			}
			cur = cur.parent

		case xml.TextToken:
			if err := p.appendText(cur, string(data), input.Offset()); err != nil {
				return err
			}

		case xml.CDATAToken:
			cur.AppendChild(p.doc.CreateText(string(l.Text())))

		case xml.CommentToken:
			cur.AppendChild(p.doc.CreateComment(string(l.Text())))
		}
	}
}

// tagName resolves a possibly prefixed element name. Elements in the SVG
// namespace get catalog ids; foreign-namespace elements stay opaque.
func (p *parser) tagName(name string) TagName {
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return NewTagName(name)
	}
	if p.prefixes[prefix] == svgNamespace {
		return NewTagName(local)
	}
	return TagName{Local: name}
}

func (p *parser) finishElement(cur *Node, name string, attrs []rawAttr, offset int) (*Node, error) {
	// Namespace declarations first: they decide how the element and its
	// attribute names are interpreted.
	for _, a := range attrs {
		if a.name == "xmlns" {
			p.prefixes[""] = a.value
		} else if local, ok := strings.CutPrefix(a.name, "xmlns:"); ok {
			p.prefixes[local] = a.value
		}
	}

	tag := p.tagName(name)
	el := p.doc.CreateElement(tag)
	cur.AppendChild(el)

	for _, a := range attrs {
		if err := p.setElementAttr(el, a, offset); err != nil {
			return nil, err
		}
	}
	return el, nil
}

func (p *parser) setElementAttr(el *Node, a rawAttr, offset int) error {
	if a.name == "xmlns" {
		return nil // re-emitted by the writer
	}
	if local, ok := strings.CutPrefix(a.name, "xmlns:"); ok {
		switch p.prefixes[local] {
		case svgNamespace, xlinkNamespace:
			return nil
		}
		// Foreign namespace declarations are preserved as opaque strings.
		el.attrs.SetQ(QName{Local: a.name}, String(a.value))
		return nil
	}

	value, err := p.resolveAttrEntities(a.value, offset)
	if err != nil {
		return err
	}

	name := p.attrName(a.name)
	if name.ID == AttrUnknown || el.tag.ID == ElUnknown {
		el.attrs.SetQ(name, String(value))
		return nil
	}

	if name.ID == AttrID && name.Space == NSNone {
		if !p.doc.registerID(value, el) {
			p.log.Warn("duplicate id; the first occurrence wins", "id", value)
		}
		el.attrs.Set(AttrID, String(value))
		return nil
	}

	v, err := ParseValue(name.ID, value)
	if err != nil {
		if p.opts.SkipInvalidAttributes {
			p.log.Warn("dropping invalid attribute", "attribute", name.String(), "value", value, "error", err)
			return nil
		}
		return &InvalidAttributeValueError{Attr: name.String(), Value: value, Cause: err}
	}
	el.attrs.SetQ(name, v)
	return nil
}

// attrName resolves a possibly prefixed attribute name into a QName. Only
// the xml and xlink namespaces are meaningful.
func (p *parser) attrName(name string) QName {
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		if id := LookupAttribute(name); id != AttrUnknown {
			return AName(id)
		}
		return QName{Local: name}
	}
	if prefix == "xml" {
		if id := LookupXMLAttribute(local); id != AttrUnknown {
			return XMLName(id)
		}
		return QName{Space: NSXml, Local: local}
	}
	if p.prefixes[prefix] == xlinkNamespace {
		if id := LookupAttribute(local); id != AttrUnknown {
			return XlinkName(id)
		}
		return QName{Space: NSXlink, Local: local}
	}
	if p.prefixes[prefix] == svgNamespace {
		if id := LookupAttribute(local); id != AttrUnknown {
			return AName(id)
		}
		return QName{Local: local}
	}
	return QName{Local: name}
}

func (p *parser) finishDeclaration(attrs []rawAttr) {
	decl := p.doc.newNode(KindDeclaration)
	for _, a := range attrs {
		name := QName{Local: a.name}
		if id := LookupAttribute(a.name); id != AttrUnknown {
			name = AName(id)
		}
		decl.attrs.SetQ(name, String(a.value))
	}
	p.doc.Root().PrependChild(decl)
}

// appendText resolves entity references inside a text run and appends the
// resulting text nodes and entity-expanded elements.
func (p *parser) appendText(cur *Node, text string, offset int) error {
	if cur.kind == KindRoot {
		if strings.Trim(text, "\t\n\f\r ") == "" {
			return nil
		}
		return &XMLError{Err: errors.New("text outside of the root element"), Offset: offset}
	}

	rest := text
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			cur.AppendChild(p.doc.CreateText(plain.String()))
			plain.Reset()
		}
	}

	for {
		amp := strings.IndexByte(rest, '&')
		if amp < 0 {
			plain.WriteString(rest)
			break
		}
		plain.WriteString(rest[:amp])
		rest = rest[amp:]

		name, tail, ok := cutEntityRef(rest)
		if !ok {
			return &XMLError{Err: errors.New("malformed entity reference"), Offset: offset}
		}
		rest = tail

		if s, ok := resolveCharRef(name); ok {
			plain.WriteString(s)
			continue
		}
		value, ok := p.entities[name]
		if !ok {
			return &UnsupportedEntityError{Name: name, Offset: offset}
		}
		if strings.HasPrefix(strings.TrimSpace(value), "<") {
			// Element-valued entity: re-tokenize the fragment as children
			// of the host element.
			if p.depth > 8 {
				return &UnsupportedEntityError{Name: name, Offset: offset}
			}
			flush()
			p.depth++
			err := p.parseInto(cur, value, false)
			p.depth--
			if err != nil {
				return err
			}
			continue
		}
		expanded, err := p.expandEntityValue(value, offset, 0)
		if err != nil {
			return err
		}
		plain.WriteString(expanded)
	}
	flush()
	return nil
}

// resolveAttrEntities substitutes entity references in an attribute value
// before typed parsing. Element-valued entities are not legal here.
func (p *parser) resolveAttrEntities(value string, offset int) (string, error) {
	if !strings.ContainsRune(value, '&') {
		return value, nil
	}
	return p.expandEntityValue(value, offset, 0)
}

func (p *parser) expandEntityValue(value string, offset, depth int) (string, error) {
	if depth > 8 {
		return "", &UnsupportedEntityError{Name: value, Offset: offset}
	}

	var b strings.Builder
	rest := value
	for {
		amp := strings.IndexByte(rest, '&')
		if amp < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:amp])
		rest = rest[amp:]

		name, tail, ok := cutEntityRef(rest)
		if !ok {
			return "", &XMLError{Err: errors.New("malformed entity reference"), Offset: offset}
		}
		rest = tail

		if s, ok := resolveCharRef(name); ok {
			b.WriteString(s)
			continue
		}
		ent, ok := p.entities[name]
		if !ok {
			return "", &UnsupportedEntityError{Name: name, Offset: offset}
		}
		if strings.HasPrefix(strings.TrimSpace(ent), "<") {
			return "", &UnsupportedEntityError{Name: name, Offset: offset}
		}
		expanded, err := p.expandEntityValue(ent, offset, depth+1)
		if err != nil {
			return "", err
		}
		b.WriteString(expanded)
	}
}

// cutEntityRef splits "&name;..." into the reference name and the tail.
func cutEntityRef(s string) (name, tail string, ok bool) {
	if len(s) < 3 || s[0] != '&' {
		return "", "", false
	}
	end := strings.IndexByte(s, ';')
	if end < 0 {
		return "", "", false
	}
	return s[1:end], s[end+1:], true
}

// resolveCharRef handles the predefined XML entities and character
// references.
func resolveCharRef(name string) (string, bool) {
	switch name {
	case "amp":
		return "&", true
	case "lt":
		return "<", true
	case "gt":
		return ">", true
	case "quot":
		return `"`, true
	case "apos":
		return "'", true
	}
	if strings.HasPrefix(name, "#") {
		digits := name[1:]
		base := 10
		if strings.HasPrefix(digits, "x") || strings.HasPrefix(digits, "X") {
			digits = digits[1:]
			base = 16
		}
		n, err := strconv.ParseUint(digits, base, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return "", false
		}
		return string(rune(n)), true
	}
	return "", false
}

func unquoteAttr(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// harvestEntities collects <!ENTITY name "value"> declarations from a
// DOCTYPE internal subset. Parameter entities are ignored.
func harvestEntities(doctype string, entities map[string]string) {
	rest := doctype
	for {
		i := strings.Index(rest, "<!ENTITY")
		if i < 0 {
			return
		}
		rest = rest[i+len("<!ENTITY"):]

		j := 0
		for j < len(rest) && isXMLSpace(rest[j]) {
			j++
		}
		rest = rest[j:]
		if strings.HasPrefix(rest, "%") {
			continue
		}

		j = 0
		for j < len(rest) && !isXMLSpace(rest[j]) && rest[j] != '"' && rest[j] != '\'' {
			j++
		}
		name := rest[:j]
		rest = rest[j:]

		j = 0
		for j < len(rest) && isXMLSpace(rest[j]) {
			j++
		}
		rest = rest[j:]
		if len(rest) == 0 || rest[0] != '"' && rest[0] != '\'' {
			continue
		}
		quote := rest[0]
		end := strings.IndexByte(rest[1:], quote)
		if end < 0 {
			return
		}
		if name != "" {
			entities[name] = rest[1 : 1+end]
		}
		rest = rest[end+2:]
	}
}
