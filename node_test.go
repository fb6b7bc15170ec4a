package svgdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T) (*Document, *Node, *Node, *Node) {
	t.Helper()
	doc := New()
	svg := doc.CreateElement(NewTagName("svg"))
	doc.Root().AppendChild(svg)
	g := doc.CreateElement(NewTagName("g"))
	svg.AppendChild(g)
	rect := doc.CreateElement(NewTagName("rect"))
	g.AppendChild(rect)
	return doc, svg, g, rect
}

func TestTreeLinks(t *testing.T) {
	_, svg, g, rect := buildTree(t)

	assert.Equal(t, svg, g.Parent())
	assert.Equal(t, g, rect.Parent())
	assert.Equal(t, g, svg.FirstChild())
	assert.Equal(t, g, svg.LastChild())
	assert.Nil(t, rect.NextSibling())
}

func TestInsertBeforeAfter(t *testing.T) {
	doc, _, g, rect := buildTree(t)

	a := doc.CreateElement(NewTagName("circle"))
	require.NoError(t, rect.InsertBefore(a))
	b := doc.CreateElement(NewTagName("ellipse"))
	require.NoError(t, rect.InsertAfter(b))

	var tags []string
	g.EachChild(func(n *Node) bool {
		tags = append(tags, n.Tag().String())
		return true
	})
	assert.Equal(t, []string{"circle", "rect", "ellipse"}, tags)

	detached := doc.CreateElement(NewTagName("line"))
	assert.ErrorIs(t, detached.InsertBefore(doc.CreateElement(NewTagName("path"))), ErrDetachedNode)
}

func TestDescendantsSkipSubtree(t *testing.T) {
	_, svg, g, _ := buildTree(t)

	var visited []string
	svg.Descendants(func(n *Node) bool {
		visited = append(visited, n.Tag().String())
		return !n.Is(ElG) // skip the g subtree
	})
	assert.Equal(t, []string{"svg", "g"}, visited)

	_ = g
}

func TestAncestors(t *testing.T) {
	_, _, _, rect := buildTree(t)

	var kinds []NodeKind
	rect.Ancestors(func(n *Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Equal(t, []NodeKind{KindElement, KindElement, KindElement, KindRoot}, kinds)
}

func TestReferrerIndex(t *testing.T) {
	doc, svg, _, rect := buildTree(t)

	grad := doc.CreateElement(NewTagName("linearGradient"))
	grad.Attributes().Set(AttrID, String("g1"))
	svg.PrependChild(grad)

	require.NoError(t, rect.Attributes().Set(AttrFill, Paint{Kind: PaintFuncIRI, Link: grad}))
	assert.Equal(t, []*Node{rect}, grad.Referrers())

	// Replacing the value releases the old link.
	require.NoError(t, rect.Attributes().Set(AttrFill, None{}))
	assert.Empty(t, grad.Referrers())

	// Re-acquire, then removing the attribute releases again.
	require.NoError(t, rect.Attributes().Set(AttrFill, Paint{Kind: PaintFuncIRI, Link: grad}))
	assert.True(t, grad.IsReferenced())
	rect.Attributes().Remove(AttrFill)
	assert.False(t, grad.IsReferenced())
}

func TestDetachKeepsLinks(t *testing.T) {
	doc, svg, _, rect := buildTree(t)

	grad := doc.CreateElement(NewTagName("linearGradient"))
	svg.PrependChild(grad)
	require.NoError(t, rect.Attributes().Set(AttrFill, Paint{Kind: PaintFuncIRI, Link: grad}))

	rect.Detach()
	assert.Nil(t, rect.Parent())
	assert.Equal(t, []*Node{rect}, grad.Referrers(), "detachment is not removal")

	v, ok := rect.Attributes().Get(AttrFill)
	require.True(t, ok)
	assert.Equal(t, grad, v.(Paint).Link)
}

func TestRemoveBrokenLinkPolicy(t *testing.T) {
	doc, svg, _, rect := buildTree(t)

	grad := doc.CreateElement(NewTagName("linearGradient"))
	svg.PrependChild(grad)

	use := doc.CreateElement(NewTagName("use"))
	svg.AppendChild(use)

	require.NoError(t, rect.Attributes().Set(AttrFill, Paint{
		Kind: PaintFuncIRI, Link: grad,
		HasFallback: true, Fallback: PaintFallback{Kind: FallbackColor, Color: Color{0, 128, 0}},
	}))
	require.NoError(t, rect.Attributes().Set(AttrStroke, Paint{Kind: PaintFuncIRI, Link: grad}))
	require.NoError(t, use.Attributes().SetQ(XlinkName(AttrHref), Link{Node: grad}))

	grad.Remove()

	// fill falls back to its fallback color, stroke to none.
	fill, _ := rect.Attributes().Get(AttrFill)
	assert.Equal(t, Color{0, 128, 0}, fill)
	stroke, _ := rect.Attributes().Get(AttrStroke)
	assert.Equal(t, None{}, stroke)

	// Other link-valued attributes are dropped.
	assert.False(t, use.Attributes().ContainsQ(XlinkName(AttrHref)))
	assert.Empty(t, grad.Referrers())
}

func TestRemoveClearsOutgoingLinks(t *testing.T) {
	doc, svg, _, rect := buildTree(t)

	grad := doc.CreateElement(NewTagName("linearGradient"))
	svg.PrependChild(grad)
	require.NoError(t, rect.Attributes().Set(AttrFill, Paint{Kind: PaintFuncIRI, Link: grad}))

	rect.Remove()
	assert.Empty(t, grad.Referrers())
}

func TestRemoveAndReinsertLeavesOthersAlone(t *testing.T) {
	doc, svg, _, rect := buildTree(t)

	grad := doc.CreateElement(NewTagName("linearGradient"))
	svg.PrependChild(grad)

	other := doc.CreateElement(NewTagName("circle"))
	svg.AppendChild(other)
	require.NoError(t, other.Attributes().Set(AttrFill, Paint{Kind: PaintFuncIRI, Link: grad}))
	require.NoError(t, rect.Attributes().Set(AttrStroke, Paint{Kind: PaintFuncIRI, Link: grad}))

	rect.Remove()

	fresh := doc.CreateElement(NewTagName("rect"))
	svg.AppendChild(fresh)
	require.NoError(t, fresh.Attributes().Set(AttrStroke, Paint{Kind: PaintFuncIRI, Link: grad}))

	refs := grad.Referrers()
	assert.Len(t, refs, 2)
	assert.Contains(t, refs, other)
	assert.Contains(t, refs, fresh)
}

func TestCopyTree(t *testing.T) {
	doc, svg, g, rect := buildTree(t)
	require.NoError(t, rect.Attributes().Set(AttrWidth, Length{Num: 10}))

	cp := doc.CopyTree(g)
	assert.Nil(t, cp.Parent())
	require.NotNil(t, cp.FirstChild())
	assert.NotSame(t, rect, cp.FirstChild())

	w, ok := cp.FirstChild().Attributes().Get(AttrWidth)
	require.True(t, ok)
	assert.Equal(t, Length{Num: 10}, w)

	_ = svg
}
