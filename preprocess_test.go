package svgdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleSplitAndCSSResolution(t *testing.T) {
	doc := mustParse(t, `<svg><style>.c{fill:blue}</style><rect class="c" fill="red" style="fill:green"/></svg>`)

	svg := doc.SVGElement()
	require.Equal(t, 1, svg.ChildCount(), "the style element is removed")

	rect := svg.FirstChild()
	require.True(t, rect.Is(ElRect))

	// The style attribute beats the direct attribute, the class rule loses
	// to both.
	fill, ok := rect.Attributes().Get(AttrFill)
	require.True(t, ok)
	assert.Equal(t, Color{0, 128, 0}, fill)

	assert.False(t, rect.Attributes().Contains(AttrStyle))
	assert.False(t, rect.Attributes().Contains(AttrClass))
}

func TestCSSAppliesWhereNoAttribute(t *testing.T) {
	doc := mustParse(t, `<svg><style>rect{fill:blue}#b{fill:red}</style><rect/><rect id="b"/></svg>`)

	svg := doc.SVGElement()
	first := svg.FirstChild()
	fill, ok := first.Attributes().Get(AttrFill)
	require.True(t, ok)
	assert.Equal(t, Color{0, 0, 255}, fill)

	// The id selector outranks the type selector.
	second := first.NextSibling()
	fill, ok = second.Attributes().Get(AttrFill)
	require.True(t, ok)
	assert.Equal(t, Color{255, 0, 0}, fill)
}

func TestInvalidCSS(t *testing.T) {
	input := `<svg><style>.c{fill:</style><rect/></svg>`

	doc, err := Parse(input, &ParseOptions{SkipInvalidCSS: true, SkipUnresolvedClasses: true})
	require.NoError(t, err)
	assert.NotNil(t, doc.SVGElement())
}

func TestUnresolvedClasses(t *testing.T) {
	input := `<svg><style>.a{fill:blue}</style><rect class="a b"/></svg>`

	doc := mustParse(t, input)
	rect := doc.SVGElement().FirstChild()
	assert.False(t, rect.Attributes().Contains(AttrClass), "unresolved classes are dropped by default")

	doc, err := Parse(input, &ParseOptions{})
	require.NoError(t, err)
	rect = doc.SVGElement().FirstChild()
	v, ok := rect.Attributes().Get(AttrClass)
	require.True(t, ok)
	assert.Equal(t, String("b"), v)
}

func TestPaintFallbackUnresolved(t *testing.T) {
	doc := mustParse(t, `<svg><rect fill="url(#g) green"/></svg>`)

	fill, ok := doc.SVGElement().FirstChild().Attributes().Get(AttrFill)
	require.True(t, ok)
	assert.Equal(t, Color{0, 128, 0}, fill)
}

func TestPaintFallbackResolved(t *testing.T) {
	doc := mustParse(t, `<svg><linearGradient id="g"/><rect fill="url(#g) green"/></svg>`)

	svg := doc.SVGElement()
	grad := svg.FirstChild()
	rect := grad.NextSibling()

	fill, ok := rect.Attributes().Get(AttrFill)
	require.True(t, ok)
	paint, ok := fill.(Paint)
	require.True(t, ok)
	assert.Equal(t, PaintFuncIRI, paint.Kind)
	assert.Equal(t, grad, paint.Link)
	require.True(t, paint.HasFallback)
	assert.Equal(t, PaintFallback{Kind: FallbackColor, Color: Color{0, 128, 0}}, paint.Fallback)

	assert.Equal(t, []*Node{rect}, grad.Referrers())
}

func TestBrokenFuncIRI(t *testing.T) {
	input := `<svg><rect fill="url(#g)"/></svg>`

	_, err := Parse(input, nil)
	var broken *BrokenFuncIRIError
	require.ErrorAs(t, err, &broken)
	assert.Equal(t, "g", broken.IRI)

	doc, err := Parse(input, &ParseOptions{SkipPaintFallback: true, SkipUnresolvedClasses: true})
	require.NoError(t, err)
	fill, ok := doc.SVGElement().FirstChild().Attributes().Get(AttrFill)
	require.True(t, ok)
	assert.Equal(t, String("url(#g)"), fill)
}

func TestXMLSpaceNested(t *testing.T) {
	doc := mustParse(t, "<svg><text>\n A\n<tspan xml:space=\"preserve\">  B  </tspan>\n C\n</text></svg>")

	var texts []string
	doc.SVGElement().Descendants(func(n *Node) bool {
		if n.Kind() == KindText {
			texts = append(texts, n.Text())
		}
		return true
	})
	assert.Equal(t, []string{"A ", "  B  ", " C"}, texts)
}

func TestWhitespaceOnlyTextRemoved(t *testing.T) {
	doc := mustParse(t, "<svg>\n<g>\n<rect width=\"1\"/>\n<circle r=\"1\"/>\n</g>\n</svg>")

	count := 0
	doc.Root().Descendants(func(n *Node) bool {
		if n.Kind() == KindText {
			count++
		}
		return true
	})
	assert.Zero(t, count)
}

func TestCrosslinkBreaking(t *testing.T) {
	doc := mustParse(t, `<svg><linearGradient id="a" xlink:href="#b"/><linearGradient id="b" xlink:href="#a"/></svg>`)

	a := doc.ElementByID("a")
	b := doc.ElementByID("b")
	require.NotNil(t, a)
	require.NotNil(t, b)

	v, ok := a.Attributes().GetQ(XlinkName(AttrHref))
	require.True(t, ok, "the first gradient keeps its reference")
	assert.Equal(t, Link{Node: b}, v)

	assert.False(t, b.Attributes().ContainsQ(XlinkName(AttrHref)),
		"the node encountered last in document order loses its reference")
}

func TestCrosslinkChainUntouched(t *testing.T) {
	doc := mustParse(t, `<svg><linearGradient id="a" xlink:href="#b"/><linearGradient id="b"/></svg>`)

	a := doc.ElementByID("a")
	assert.True(t, a.Attributes().ContainsQ(XlinkName(AttrHref)))
}

func TestDefaultPruning(t *testing.T) {
	doc := mustParse(t, `<svg><rect width="5" fill="black" opacity="1" transform="translate(0 0)" stroke-dasharray=""/></svg>`)

	rect := doc.SVGElement().FirstChild()
	assert.True(t, rect.Attributes().Contains(AttrWidth))
	assert.False(t, rect.Attributes().Contains(AttrFill), "the default fill is pruned")
	assert.False(t, rect.Attributes().Contains(AttrOpacity))
	assert.False(t, rect.Attributes().Contains(AttrTransform), "identity transforms are pruned")
	assert.False(t, rect.Attributes().Contains(AttrStrokeDasharray), "empty lists are pruned")
}

func TestDefaultKeptUnderOverridingAncestor(t *testing.T) {
	doc := mustParse(t, `<svg><g fill="red"><rect fill="black"/></g></svg>`)

	rect := doc.SVGElement().FirstChild().FirstChild()
	fill, ok := rect.Attributes().Get(AttrFill)
	require.True(t, ok, "the default would change what the element inherits")
	assert.Equal(t, Color{0, 0, 0}, fill)
}

func TestPreprocessIdempotent(t *testing.T) {
	inputs := []string{
		`<svg><style>.c{fill:blue}</style><rect class="c" style="stroke:red"/></svg>`,
		"<svg><text>\n A\n<tspan xml:space=\"preserve\">  B  </tspan>\n C\n</text></svg>",
		`<svg><linearGradient id="a" xlink:href="#b"/><linearGradient id="b" xlink:href="#a"/></svg>`,
		`<svg><linearGradient id="g"/><rect fill="url(#g) green"/></svg>`,
	}
	for _, input := range inputs {
		doc, err := Parse(input, nil)
		require.NoError(t, err)
		before := doc.String()

		require.NoError(t, Preprocess(doc, nil))
		assert.Equal(t, before, doc.String(), "input: %s", input)
	}
}
