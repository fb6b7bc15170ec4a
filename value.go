package svgdom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Value is the typed content of an attribute. The set of implementations is
// closed: None, Inherit, CurrentColor, String, Number, NumberList, Length,
// LengthList, Color, Paint, Transform, Path, ViewBox, AspectRatio, Points,
// Link, FuncLink and Keyword.
type Value interface {
	isValue()
}

// None is the `none` sentinel keyword.
type None struct{}

// Inherit is the `inherit` sentinel keyword.
type Inherit struct{}

// CurrentColor is the `currentColor` sentinel keyword.
type CurrentColor struct{}

// String is an untyped attribute value.
type String string

// Number is an SVG <number>.
type Number float64

// NumberList is a list of SVG <number>s.
type NumberList []float64

// LengthList is a list of SVG <length>s.
type LengthList []Length

// Keyword is a value from an attribute's enumerated keyword set.
type Keyword string

// Point is a coordinate pair.
type Point struct {
	X, Y float64
}

// Points is the value of the polygon/polyline `points` attribute.
type Points []Point

// ViewBox is the value of the `viewBox` attribute.
type ViewBox struct {
	X, Y, W, H float64
}

// Align is the alignment part of preserveAspectRatio.
type Align int

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignNames = [...]string{
	AlignNone: "none", AlignXMinYMin: "xMinYMin", AlignXMidYMin: "xMidYMin",
	AlignXMaxYMin: "xMaxYMin", AlignXMinYMid: "xMinYMid",
	AlignXMidYMid: "xMidYMid", AlignXMaxYMid: "xMaxYMid",
	AlignXMinYMax: "xMinYMax", AlignXMidYMax: "xMidYMax",
	AlignXMaxYMax: "xMaxYMax",
}

// AspectRatio is the value of the `preserveAspectRatio` attribute.
type AspectRatio struct {
	Defer bool
	Align Align
	Slice bool
}

// Link is an IRI reference to another element ("#id").
type Link struct {
	Node *Node
}

// FuncLink is a FuncIRI reference to another element ("url(#id)").
type FuncLink struct {
	Node *Node
}

// PaintKind discriminates Paint values.
type PaintKind int

const (
	PaintColor PaintKind = iota
	PaintFuncIRI
)

// FallbackKind discriminates FuncIRI fallbacks.
type FallbackKind int

const (
	FallbackColor FallbackKind = iota
	FallbackNone
	FallbackCurrentColor
)

// PaintFallback is the fallback part of a `url(#id) <fallback>` paint.
type PaintFallback struct {
	Kind  FallbackKind
	Color Color
}

// Paint is a fill/stroke value that references a paint server, optionally
// with a fallback. Plain color/none/inherit/currentColor paints are
// represented by the corresponding top-level Value variants.
type Paint struct {
	Kind  PaintKind
	Color Color
	Link  *Node

	HasFallback bool
	Fallback    PaintFallback
}

func (None) isValue()         {}
func (Inherit) isValue()      {}
func (CurrentColor) isValue() {}
func (String) isValue()       {}
func (Number) isValue()       {}
func (NumberList) isValue()   {}
func (LengthList) isValue()   {}
func (Keyword) isValue()      {}
func (Points) isValue()       {}
func (ViewBox) isValue()      {}
func (AspectRatio) isValue()  {}
func (Link) isValue()         {}
func (FuncLink) isValue()     {}
func (Paint) isValue()        {}

type cssToken struct {
	Type  css.TokenType
	Value string
}

func cssTokens(s string) ([]cssToken, error) {
	var tokens []cssToken

	l := css.NewLexer(parse.NewInputString(s))
	for {
		typ, value := l.Next()
		if typ == css.ErrorToken {
			if l.Err() == io.EOF {
				break
			}
			return nil, l.Err()
		}
		tokens = append(tokens, cssToken{Type: typ, Value: string(value)})
	}

	return tokens, nil
}

func dropSpaceTokens(tokens []cssToken) []cssToken {
	out := tokens[:0:0]
	for _, t := range tokens {
		if t.Type != css.WhitespaceToken {
			out = append(out, t)
		}
	}
	return out
}

// valueKind is the target parse type inferred from an AttributeID.
type valueKind int

const (
	kindString valueKind = iota
	kindNumber
	kindNumberList
	kindLength
	kindLengthList
	kindColor
	kindPaint
	kindTransform
	kindPath
	kindViewBox
	kindAspectRatio
	kindPoints
	kindLink
	kindFuncIRI
	kindKeyword
)

func attrValueKind(id AttributeID) valueKind {
	switch id {
	case AttrTransform, AttrGradientTransform, AttrPatternTransform:
		return kindTransform
	case AttrD:
		return kindPath
	case AttrPoints:
		return kindPoints
	case AttrViewBox:
		return kindViewBox
	case AttrPreserveAspectRatio:
		return kindAspectRatio
	case AttrFill, AttrStroke:
		return kindPaint
	case AttrColor, AttrStopColor, AttrFloodColor, AttrLightingColor:
		return kindColor
	case AttrHref:
		return kindLink
	case AttrClipPath, AttrFilter, AttrMask, AttrMarkerStart, AttrMarkerMid,
		AttrMarkerEnd, AttrMarker:
		return kindFuncIRI
	case AttrX, AttrY, AttrWidth, AttrHeight, AttrRx, AttrRy, AttrCx, AttrCy,
		AttrR, AttrX1, AttrY1, AttrX2, AttrY2, AttrFx, AttrFy, AttrRefX,
		AttrRefY, AttrMarkerWidth, AttrMarkerHeight, AttrStartOffset,
		AttrTextLength, AttrStrokeWidth, AttrStrokeDashoffset, AttrFontSize,
		AttrLetterSpacing, AttrWordSpacing, AttrBaselineShift:
		return kindLength
	case AttrDx, AttrDy, AttrStrokeDasharray:
		return kindLengthList
	case AttrOpacity, AttrFillOpacity, AttrStrokeOpacity, AttrStopOpacity,
		AttrFloodOpacity, AttrStrokeMiterlimit, AttrOffset, AttrPathLength,
		AttrVersion:
		return kindNumber
	case AttrStdDeviation, AttrTableValues, AttrKernelMatrix,
		AttrBaseFrequency, AttrOrder, AttrRotate, AttrValues:
		return kindNumberList
	case AttrGradientUnits, AttrPatternUnits, AttrPatternContentUnits,
		AttrClipPathUnits, AttrMaskUnits, AttrMaskContentUnits,
		AttrFilterUnits, AttrPrimitiveUnits, AttrSpreadMethod, AttrFillRule,
		AttrClipRule, AttrStrokeLinecap, AttrStrokeLinejoin, AttrMarkerUnits,
		AttrMethod, AttrSpacing, AttrLengthAdjust, AttrZoomAndPan,
		AttrXmlSpace, AttrVisibility, AttrDisplay, AttrOverflow:
		return kindKeyword
	}
	return kindString
}

var attrKeywords = map[AttributeID][]string{
	AttrGradientUnits:       {"userSpaceOnUse", "objectBoundingBox"},
	AttrPatternUnits:        {"userSpaceOnUse", "objectBoundingBox"},
	AttrPatternContentUnits: {"userSpaceOnUse", "objectBoundingBox"},
	AttrClipPathUnits:       {"userSpaceOnUse", "objectBoundingBox"},
	AttrMaskUnits:           {"userSpaceOnUse", "objectBoundingBox"},
	AttrMaskContentUnits:    {"userSpaceOnUse", "objectBoundingBox"},
	AttrFilterUnits:         {"userSpaceOnUse", "objectBoundingBox"},
	AttrPrimitiveUnits:      {"userSpaceOnUse", "objectBoundingBox"},
	AttrSpreadMethod:        {"pad", "reflect", "repeat"},
	AttrFillRule:            {"nonzero", "evenodd"},
	AttrClipRule:            {"nonzero", "evenodd"},
	AttrStrokeLinecap:       {"butt", "round", "square"},
	AttrStrokeLinejoin:      {"miter", "round", "bevel"},
	AttrMarkerUnits:         {"strokeWidth", "userSpaceOnUse"},
	AttrMethod:              {"align", "stretch"},
	AttrSpacing:             {"auto", "exact"},
	AttrLengthAdjust:        {"spacing", "spacingAndGlyphs"},
	AttrZoomAndPan:          {"disable", "magnify"},
	AttrXmlSpace:            {"default", "preserve"},
	AttrVisibility:          {"visible", "hidden", "collapse"},
	AttrDisplay: {"inline", "block", "list-item", "run-in", "compact",
		"marker", "table", "inline-table", "table-row-group",
		"table-header-group", "table-footer-group", "table-row",
		"table-column-group", "table-column", "table-cell",
		"table-caption"},
	AttrOverflow: {"visible", "hidden", "scroll", "auto"},
}

// ParseValue parses a raw attribute value into its typed form. Paint
// attributes (fill, stroke) other than the none/inherit/currentColor
// sentinels, plain colors included, and link-valued attributes (xlink:href,
// clip-path and friends) are returned as String: colors, references and
// fallbacks are resolved against the document tree in a separate pass.
func ParseValue(id AttributeID, raw string) (Value, error) {
	kind := attrValueKind(id)

	trimmed := strings.TrimSpace(raw)
	if id.IsPresentation() || kind == kindPaint {
		switch trimmed {
		case "none":
			return None{}, nil
		case "inherit":
			return Inherit{}, nil
		case "currentColor":
			return CurrentColor{}, nil
		}
	}

	switch kind {
	case kindNumber:
		n, err := ParseNumber(trimmed)
		if err != nil {
			return nil, err
		}
		return Number(n), nil
	case kindNumberList:
		list, err := ParseNumberList(trimmed)
		if err != nil {
			return nil, err
		}
		return NumberList(list), nil
	case kindLength:
		l, err := ParseLength(trimmed)
		if err != nil {
			return nil, err
		}
		return l, nil
	case kindLengthList:
		list, err := ParseLengthList(trimmed)
		if err != nil {
			return nil, err
		}
		return LengthList(list), nil
	case kindColor:
		c, err := ParseColor(trimmed)
		if err != nil {
			return nil, err
		}
		return c, nil
	case kindTransform:
		t, err := ParseTransform(trimmed)
		if err != nil {
			return nil, err
		}
		return t, nil
	case kindPath:
		p, err := ParsePath(trimmed)
		if err != nil {
			return nil, err
		}
		return p, nil
	case kindViewBox:
		return parseViewBox(trimmed)
	case kindAspectRatio:
		return parseAspectRatio(trimmed)
	case kindPoints:
		return parsePoints(trimmed)
	case kindKeyword:
		for _, kw := range attrKeywords[id] {
			if trimmed == kw {
				return Keyword(trimmed), nil
			}
		}
		return nil, fmt.Errorf("invalid keyword %q", trimmed)
	case kindPaint, kindLink, kindFuncIRI:
		// Deferred; resolved by the link pass.
		return String(trimmed), nil
	}
	return String(raw), nil
}

func parseViewBox(s string) (Value, error) {
	list, err := ParseNumberList(s)
	if err != nil {
		return nil, err
	}
	if len(list) != 4 {
		return nil, errors.New("viewBox requires 4 numbers")
	}
	return ViewBox{X: list[0], Y: list[1], W: list[2], H: list[3]}, nil
}

func parseAspectRatio(s string) (Value, error) {
	fields := strings.Fields(s)
	var ar AspectRatio
	if len(fields) > 0 && fields[0] == "defer" {
		ar.Defer = true
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return nil, errors.New("preserveAspectRatio requires an alignment")
	}
	found := false
	for a, name := range alignNames {
		if fields[0] == name {
			ar.Align = Align(a)
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("invalid alignment %q", fields[0])
	}
	fields = fields[1:]
	if len(fields) > 0 {
		switch fields[0] {
		case "meet":
		case "slice":
			ar.Slice = true
		default:
			return nil, fmt.Errorf("invalid meetOrSlice %q", fields[0])
		}
		fields = fields[1:]
	}
	if len(fields) != 0 {
		return nil, errors.New("trailing data in preserveAspectRatio")
	}
	return ar, nil
}

func parsePoints(s string) (Value, error) {
	list, err := ParseNumberList(s)
	if err != nil {
		return nil, err
	}
	if len(list)%2 != 0 {
		return nil, errors.New("odd number of coordinates in points")
	}
	pts := make(Points, 0, len(list)/2)
	for i := 0; i < len(list); i += 2 {
		pts = append(pts, Point{X: list[i], Y: list[i+1]})
	}
	return pts, nil
}

// funcIRI splits a "url(#id)" prefix from a raw value, returning the id,
// the remaining tail and whether the prefix was present.
func funcIRI(s string) (id, tail string, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "url(") {
		return "", "", false
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return "", "", false
	}
	ref := strings.TrimSpace(s[len("url("):end])
	if !strings.HasPrefix(ref, "#") {
		return "", "", false
	}
	return ref[1:], strings.TrimSpace(s[end+1:]), true
}

// ValuesEqual compares two typed values with float tolerance.
func ValuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case None:
		_, ok := b.(None)
		return ok
	case Inherit:
		_, ok := b.(Inherit)
		return ok
	case CurrentColor:
		_, ok := b.(CurrentColor)
		return ok
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Keyword:
		bv, ok := b.(Keyword)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && fuzzyEq(float64(av), float64(bv))
	case NumberList:
		bv, ok := b.(NumberList)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !fuzzyEq(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Length:
		bv, ok := b.(Length)
		return ok && av.fuzzyEq(bv)
	case LengthList:
		bv, ok := b.(LengthList)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !av[i].fuzzyEq(bv[i]) {
				return false
			}
		}
		return true
	case Color:
		bv, ok := b.(Color)
		return ok && av == bv
	case Transform:
		bv, ok := b.(Transform)
		return ok && av.fuzzyEq(bv)
	case Path:
		bv, ok := b.(Path)
		return ok && av.fuzzyEq(bv)
	case ViewBox:
		bv, ok := b.(ViewBox)
		return ok && fuzzyEq(av.X, bv.X) && fuzzyEq(av.Y, bv.Y) &&
			fuzzyEq(av.W, bv.W) && fuzzyEq(av.H, bv.H)
	case AspectRatio:
		bv, ok := b.(AspectRatio)
		return ok && av == bv
	case Points:
		bv, ok := b.(Points)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !fuzzyEq(av[i].X, bv[i].X) || !fuzzyEq(av[i].Y, bv[i].Y) {
				return false
			}
		}
		return true
	case Link:
		bv, ok := b.(Link)
		return ok && av.Node == bv.Node
	case FuncLink:
		bv, ok := b.(FuncLink)
		return ok && av.Node == bv.Node
	case Paint:
		bv, ok := b.(Paint)
		if !ok || av.Kind != bv.Kind {
			return false
		}
		switch av.Kind {
		case PaintColor:
			return av.Color == bv.Color
		default:
			return av.Link == bv.Link &&
				av.HasFallback == bv.HasFallback &&
				av.Fallback == bv.Fallback
		}
	}
	return false
}

// linkTargets returns the nodes a value references.
func linkTargets(v Value) []*Node {
	switch tv := v.(type) {
	case Link:
		if tv.Node != nil {
			return []*Node{tv.Node}
		}
	case FuncLink:
		if tv.Node != nil {
			return []*Node{tv.Node}
		}
	case Paint:
		if tv.Kind == PaintFuncIRI && tv.Link != nil {
			return []*Node{tv.Link}
		}
	}
	return nil
}
