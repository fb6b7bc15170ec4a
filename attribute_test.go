package svgdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesOrderAndLookup(t *testing.T) {
	doc := New()
	el := doc.CreateElement(NewTagName("rect"))
	attrs := el.Attributes()

	require.NoError(t, attrs.Set(AttrWidth, Length{Num: 10}))
	require.NoError(t, attrs.Set(AttrHeight, Length{Num: 20}))
	require.NoError(t, attrs.Set(AttrX, Length{Num: 1}))

	var names []string
	attrs.Each(func(a *Attribute) bool {
		names = append(names, a.Name.String())
		return true
	})
	assert.Equal(t, []string{"width", "height", "x"}, names)

	// Replacing keeps the position.
	require.NoError(t, attrs.Set(AttrHeight, Length{Num: 30}))
	names = names[:0]
	attrs.Each(func(a *Attribute) bool {
		names = append(names, a.Name.String())
		return true
	})
	assert.Equal(t, []string{"width", "height", "x"}, names)
	assert.Equal(t, 3, attrs.Len())

	v, ok := attrs.Get(AttrHeight)
	require.True(t, ok)
	assert.Equal(t, Length{Num: 30}, v)
	assert.True(t, attrs.Contains(AttrX))
	assert.True(t, attrs.Remove(AttrX))
	assert.False(t, attrs.Contains(AttrX))
}

func TestSetRawTransactional(t *testing.T) {
	doc := New()
	el := doc.CreateElement(NewTagName("rect"))
	attrs := el.Attributes()

	require.NoError(t, attrs.SetRaw(AttrWidth, "10"))

	err := attrs.SetRaw(AttrWidth, "not-a-length")
	var invalid *InvalidAttributeValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "width", invalid.Attr)

	// The old value survives a failed set.
	v, ok := attrs.Get(AttrWidth)
	require.True(t, ok)
	assert.Equal(t, Length{Num: 10}, v)
}

func TestSetOnNonElement(t *testing.T) {
	doc := New()
	text := doc.CreateText("hi")
	assert.ErrorIs(t, text.Attributes().Set(AttrWidth, Length{Num: 1}), ErrNotAnElement)
}

func TestHiddenAttributes(t *testing.T) {
	doc := New()
	svg := doc.CreateElement(NewTagName("svg"))
	doc.Root().AppendChild(svg)
	require.NoError(t, svg.Attributes().Set(AttrWidth, Length{Num: 10}))
	require.True(t, svg.Attributes().SetVisible(AttrWidth, false))

	assert.NotContains(t, doc.String(), "width")

	opts := DefaultWriteOptions()
	opts.WriteHiddenAttributes = true
	assert.Contains(t, doc.StringWith(opts), `width="10"`)
}

func TestQNameString(t *testing.T) {
	assert.Equal(t, "fill", AName(AttrFill).String())
	assert.Equal(t, "xlink:href", XlinkName(AttrHref).String())
	assert.Equal(t, "xml:space", XMLName(AttrXmlSpace).String())
	assert.Equal(t, "data-x", QName{Local: "data-x"}.String())
}
