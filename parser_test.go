package svgdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) *Document {
	t.Helper()
	doc, err := Parse(input, nil)
	require.NoError(t, err)
	return doc
}

func TestParseMinimal(t *testing.T) {
	doc := mustParse(t, `<svg><rect width="10"/></svg>`)

	svg := doc.SVGElement()
	require.NotNil(t, svg)
	require.Equal(t, 1, svg.ChildCount())

	rect := svg.FirstChild()
	assert.True(t, rect.Is(ElRect))
	w, ok := rect.Attributes().Get(AttrWidth)
	require.True(t, ok)
	assert.Equal(t, Length{Num: 10}, w)
}

func TestParseDeclaration(t *testing.T) {
	doc := mustParse(t, `<?xml version="1.0" encoding="UTF-8"?><svg/>`)

	decl := doc.Root().FirstChild()
	require.Equal(t, KindDeclaration, decl.Kind())
	v, ok := decl.Attributes().Get(AttrVersion)
	require.True(t, ok)
	assert.Equal(t, String("1.0"), v)

	assert.Contains(t, doc.String(), `<?xml version="1.0" encoding="UTF-8"?>`)
}

func TestParseInvalidEncoding(t *testing.T) {
	_, err := Parse("<svg>\xff</svg>", nil)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestParseBOM(t *testing.T) {
	doc := mustParse(t, "\ufeff<svg/>")
	assert.NotNil(t, doc.SVGElement())
}

func TestParseNoSVGElement(t *testing.T) {
	_, err := Parse(`<html/>`, nil)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestParseMismatchedTags(t *testing.T) {
	_, err := Parse(`<svg><g></svg>`, nil)
	var xmlErr *XMLError
	require.ErrorAs(t, err, &xmlErr)
}

func TestParseTruncated(t *testing.T) {
	_, err := Parse(`<svg><rect`, nil)
	var xmlErr *XMLError
	require.ErrorAs(t, err, &xmlErr)
}

func TestEntityElementExpansion(t *testing.T) {
	doc := mustParse(t, `<!DOCTYPE svg [<!ENTITY R "<rect width='10' height='20' fill='none'/>"]><svg>&R;</svg>`)

	svg := doc.SVGElement()
	require.Equal(t, 1, svg.ChildCount())

	rect := svg.FirstChild()
	assert.True(t, rect.Is(ElRect))

	w, _ := rect.Attributes().Get(AttrWidth)
	assert.Equal(t, Length{Num: 10}, w)
	h, _ := rect.Attributes().Get(AttrHeight)
	assert.Equal(t, Length{Num: 20}, h)
	fill, ok := rect.Attributes().Get(AttrFill)
	require.True(t, ok, "fill=none is not the default and must be retained")
	assert.Equal(t, None{}, fill)
}

func TestEntityInAttributeValue(t *testing.T) {
	doc := mustParse(t, `<!DOCTYPE svg [<!ENTITY c "red">]><svg><rect fill="&c;"/></svg>`)

	fill, ok := doc.SVGElement().FirstChild().Attributes().Get(AttrFill)
	require.True(t, ok)
	assert.Equal(t, Color{255, 0, 0}, fill)
}

func TestUnknownEntity(t *testing.T) {
	_, err := Parse(`<svg>&nope;</svg>`, nil)
	var entErr *UnsupportedEntityError
	require.ErrorAs(t, err, &entErr)
	assert.Equal(t, "nope", entErr.Name)
}

func TestElementEntityInAttribute(t *testing.T) {
	_, err := Parse(`<!DOCTYPE svg [<!ENTITY R "<rect/>"]><svg class="&R;"/>`, nil)
	var entErr *UnsupportedEntityError
	require.ErrorAs(t, err, &entErr)
}

func TestCharacterReferences(t *testing.T) {
	doc := mustParse(t, `<svg><text>a&amp;b &#65;&#x42;</text></svg>`)
	assert.Equal(t, "a&b AB", TextContent(doc.SVGElement()))
}

func TestInvalidAttributeValue(t *testing.T) {
	input := `<svg><rect width="abc"/></svg>`

	_, err := Parse(input, nil)
	var invalid *InvalidAttributeValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "width", invalid.Attr)

	doc, err := Parse(input, &ParseOptions{SkipInvalidAttributes: true, SkipUnresolvedClasses: true})
	require.NoError(t, err)
	assert.False(t, doc.SVGElement().FirstChild().Attributes().Contains(AttrWidth))
}

func TestDuplicateIDFirstWins(t *testing.T) {
	doc := mustParse(t, `<svg><rect id="a" width="1"/><circle id="a"/></svg>`)

	n := doc.ElementByID("a")
	require.NotNil(t, n)
	assert.True(t, n.Is(ElRect))

	assert.Error(t, doc.CheckIDs())
	var dup *DuplicateIDError
	assert.ErrorAs(t, doc.CheckIDs(), &dup)
}

func TestUnknownElementsAndAttributes(t *testing.T) {
	doc := mustParse(t, `<svg><foo bar="baz" width="nonsense"/></svg>`)

	foo := doc.SVGElement().FirstChild()
	assert.Equal(t, ElUnknown, foo.Tag().ID)
	assert.Equal(t, "foo", foo.Tag().String())

	// Attributes of unknown elements are not typed.
	v, ok := foo.Attributes().Get(AttrWidth)
	require.True(t, ok)
	assert.Equal(t, String("nonsense"), v)
	v, ok = foo.Attributes().GetQ(QName{Local: "bar"})
	require.True(t, ok)
	assert.Equal(t, String("baz"), v)
}

func TestForeignNamespaceCollapses(t *testing.T) {
	doc := mustParse(t, `<svg xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"><inkscape:custom r="5"/></svg>`)

	child := doc.SVGElement().FirstChild()
	assert.Equal(t, ElUnknown, child.Tag().ID)
	assert.Equal(t, "inkscape:custom", child.Tag().String())
}

func TestCDATABecomesText(t *testing.T) {
	doc := mustParse(t, `<svg><text><![CDATA[a < b]]></text></svg>`)
	assert.Equal(t, "a < b", TextContent(doc.SVGElement()))
}

func TestCommentsPreserved(t *testing.T) {
	doc := mustParse(t, `<svg><!-- note --><rect width="1"/></svg>`)

	c := doc.SVGElement().FirstChild()
	require.Equal(t, KindComment, c.Kind())
	assert.Equal(t, " note ", c.Text())
	assert.Contains(t, doc.String(), "<!-- note -->")
}
