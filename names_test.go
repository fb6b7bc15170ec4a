package svgdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupElement(t *testing.T) {
	assert.Equal(t, ElSVG, LookupElement("svg"))
	assert.Equal(t, ElLinearGradient, LookupElement("linearGradient"))
	assert.Equal(t, ElFeGaussianBlur, LookupElement("feGaussianBlur"))
	assert.Equal(t, ElUnknown, LookupElement("SVG"), "lookups are case-sensitive")
	assert.Equal(t, ElUnknown, LookupElement("bogus"))

	assert.Equal(t, "radialGradient", ElRadialGradient.String())
}

func TestLookupAttribute(t *testing.T) {
	assert.Equal(t, AttrFill, LookupAttribute("fill"))
	assert.Equal(t, AttrStrokeWidth, LookupAttribute("stroke-width"))
	assert.Equal(t, AttrViewBox, LookupAttribute("viewBox"))
	assert.Equal(t, AttrUnknown, LookupAttribute("space"), "xml-namespace locals must not resolve unprefixed")
	assert.Equal(t, AttrXmlSpace, LookupXMLAttribute("space"))
	assert.Equal(t, AttrUnknown, LookupAttribute("Fill"))
}

func TestElementClassification(t *testing.T) {
	assert.True(t, ElLinearGradient.IsGradient())
	assert.True(t, ElPattern.IsPaintServer())
	assert.False(t, ElRect.IsPaintServer())
	assert.True(t, ElRect.IsShape())
	assert.True(t, ElG.IsContainer())
	assert.False(t, ElRect.IsContainer())
}

func TestAttributeClassification(t *testing.T) {
	assert.True(t, AttrFill.IsPresentation())
	assert.False(t, AttrD.IsPresentation())
	assert.True(t, AttrID.IsCore())
	assert.True(t, AttrOnClick.IsGraphicalEvent())
	assert.True(t, AttrOnBegin.IsAnimationEvent())
	assert.True(t, AttrOnZoom.IsDocumentEvent())
	assert.True(t, AttrSystemLanguage.IsConditionalProcessing())
	assert.True(t, AttrFillRule.IsFill())
	assert.True(t, AttrStrokeLinecap.IsStroke())
	assert.False(t, AttrFill.IsStroke())
}
