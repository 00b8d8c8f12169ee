package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/widgetbox/backend/platform"
	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetrics() platform.Fixed {
	return platform.Fixed{
		CharWidth:   8,
		CharHeight:  16,
		FrameBorder: 2,
		FrameTitle:  10,
		TabsHeader:  20,
		TabsBorder:  1,
	}
}

func newTestTree() *frame.Tree {
	return frame.NewTree(testMetrics())
}

// leaf creates a leaf of intrinsic size w×h as the last child of parent.
func leaf(t *testing.T, tree *frame.Tree, parent frame.Handle, name string, w, h int) *frame.Node {
	l := tree.NewLeaf(name, w, h)
	require.NoError(t, tree.Append(parent, l))
	return tree.Node(l)
}

func box(tree *frame.Tree, h frame.Handle) *Box {
	return tree.Node(h).Policy().(*Box)
}

func TestHboxNoExpand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	box(tree, hb).Gap = 10
	a := leaf(t, tree, hb, "a", 50, 20)
	b := leaf(t, tree, hb, "b", 70, 30)
	require.NoError(t, tree.Layout(hb, 200, 0))
	n := tree.Node(hb)
	assert.Equal(t, 130, n.NaturalWidth)
	assert.Equal(t, 200, n.CurrentWidth)
	assert.Equal(t, 50, a.CurrentWidth, "children do not grow without EXPAND")
	assert.Equal(t, 70, b.CurrentWidth)
	assert.Equal(t, 0, a.X)
	assert.Equal(t, 60, b.X)
	assert.Equal(t, a.Y, b.Y)
}

func TestHboxExpandHorizontal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	box(tree, hb).Gap = 10
	a := leaf(t, tree, hb, "a", 50, 20)
	b := leaf(t, tree, hb, "b", 70, 30)
	b.ExpandRequest = frame.ExpandWidth
	require.NoError(t, tree.Layout(hb, 200, 0))
	assert.Equal(t, 50, a.CurrentWidth)
	assert.Equal(t, 140, b.CurrentWidth, "all of the leftover goes to the expanding child")
	assert.Equal(t, 30, b.CurrentHeight)
	assert.Equal(t, 0, a.X)
	assert.Equal(t, 60, b.X)
	// sizes plus gaps account for the whole box
	assert.Equal(t, tree.Node(hb).CurrentWidth, a.CurrentWidth+b.CurrentWidth+10)
}

func TestExplicitExpandBeatsFill(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	fh := NewFill(tree, "fill")
	require.NoError(t, tree.Append(hb, fh))
	a := leaf(t, tree, hb, "a", 40, 10)
	a.ExpandRequest = frame.ExpandBoth
	b := leaf(t, tree, hb, "b", 30, 10)
	require.NoError(t, tree.Layout(hb, 200, 0))
	fill := tree.Node(fh)
	assert.Equal(t, frame.ExpandW0, fill.Expand)
	assert.Equal(t, 0, fill.CurrentWidth)
	assert.Equal(t, 170, a.CurrentWidth)
	assert.Equal(t, 30, b.CurrentWidth)
	assert.Equal(t, 170, b.X)
	//
	// without an explicit EXPAND, the filler takes the leftover
	a.ExpandRequest = frame.ExpandNone
	require.NoError(t, tree.Layout(hb, 200, 0))
	assert.Equal(t, 130, fill.CurrentWidth)
	assert.Equal(t, 40, a.CurrentWidth)
	assert.Equal(t, 130, a.X)
}

func TestFillInVbox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	vb := NewVbox(tree, "vbox")
	a := leaf(t, tree, vb, "a", 40, 10)
	fh := NewFill(tree, "fill")
	require.NoError(t, tree.Append(vb, fh))
	b := leaf(t, tree, vb, "b", 40, 10)
	require.NoError(t, tree.Layout(vb, 0, 100))
	assert.Equal(t, frame.ExpandH0, tree.Node(fh).Expand)
	assert.Equal(t, 80, tree.Node(fh).CurrentHeight)
	assert.Equal(t, 0, a.Y)
	assert.Equal(t, 90, b.Y)
	//
	tree.Node(fh).UserHeight = 5
	require.NoError(t, tree.Layout(vb, 0, 100))
	assert.Equal(t, frame.ExpandNone, tree.Node(fh).Expand, "fill with explicit size does not expand")
	assert.Equal(t, 15, b.Y)
}

func TestHomogeneous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	bx := box(tree, hb)
	bx.Gap = 5
	bx.Homogeneous = true
	children := []*frame.Node{
		leaf(t, tree, hb, "a", 20, 10),
		leaf(t, tree, hb, "b", 40, 10),
		leaf(t, tree, hb, "c", 30, 10),
	}
	require.NoError(t, tree.Layout(hb, 160, 0))
	assert.Equal(t, 130, tree.Node(hb).NaturalWidth)
	assert.Equal(t, 50, bx.HomogeneousSize())
	for i, c := range children {
		assert.Equal(t, bx.HomogeneousSize(), c.CurrentWidth)
		assert.Equal(t, i*55, c.X)
	}
}

func TestHomogeneousEmptyBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	bx := box(tree, hb)
	bx.Homogeneous = true
	bx.Gap = 5
	bx.MarginH, bx.MarginV = 3, 4
	require.NoError(t, tree.Layout(hb, 0, 0))
	n := tree.Node(hb)
	assert.Equal(t, 6, n.NaturalWidth, "an empty box has its margins only")
	assert.Equal(t, 8, n.NaturalHeight)
	assert.Equal(t, 0, bx.HomogeneousSize())
}

func TestExpandWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	a := leaf(t, tree, hb, "a", 50, 10)
	b := leaf(t, tree, hb, "b", 50, 10)
	a.ExpandRequest = frame.ExpandWidth
	b.ExpandRequest = frame.ExpandWidth
	require.NoError(t, SetAttribute(tree, b.Handle(), "EXPANDWEIGHT", "0.5"))
	require.NoError(t, tree.Layout(hb, 200, 0))
	assert.Equal(t, 100, a.CurrentWidth)
	assert.Equal(t, 75, b.CurrentWidth)
	//
	require.NoError(t, SetAttribute(tree, b.Handle(), "EXPANDWEIGHT", "1e300"))
	require.NoError(t, tree.Layout(hb, 200, 0))
	assert.Equal(t, 100, a.CurrentWidth)
	assert.Equal(t, dimen.MaxSize, b.CurrentWidth, "huge weights saturate at the max size")
	require.NoError(t, SetAttribute(tree, b.Handle(), "EXPANDWEIGHT", "0"))
	require.NoError(t, tree.Layout(hb, 200, 0))
	assert.Equal(t, 50, b.CurrentWidth)
}

func TestVboxMarginAndAlignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	vb := NewVbox(tree, "vbox")
	require.NoError(t, SetAttribute(tree, vb, "MARGIN", "4x6"))
	require.NoError(t, SetAttribute(tree, vb, "GAP", "2"))
	require.NoError(t, SetAttribute(tree, vb, "ALIGNMENT", "acenter"))
	a := leaf(t, tree, vb, "a", 20, 10)
	b := leaf(t, tree, vb, "b", 40, 10)
	require.NoError(t, tree.Layout(vb, 0, 0))
	n := tree.Node(vb)
	assert.Equal(t, 48, n.NaturalWidth)
	assert.Equal(t, 34, n.NaturalHeight)
	assert.Equal(t, 14, a.X)
	assert.Equal(t, 6, a.Y)
	assert.Equal(t, 4, b.X)
	assert.Equal(t, 18, b.Y)
	//
	require.NoError(t, SetAttribute(tree, vb, "ALIGNMENT", "ARIGHT"))
	require.NoError(t, tree.Layout(vb, 0, 0))
	assert.Equal(t, 24, a.X)
}

func TestAlignmentIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	box(tree, hb).Alignment = AlignCenter
	children := []*frame.Node{
		leaf(t, tree, hb, "a", 20, 10),
		leaf(t, tree, hb, "b", 40, 35),
		leaf(t, tree, hb, "c", 30, 17),
	}
	require.NoError(t, tree.Layout(hb, 0, 0))
	var first [][2]int
	for _, c := range children {
		first = append(first, [2]int{c.X, c.Y})
	}
	tree.SetPosition(hb, 0, 0)
	for i, c := range children {
		assert.Equal(t, first[i], [2]int{c.X, c.Y})
	}
	assert.Equal(t, 12, children[0].Y)
	assert.Equal(t, 9, children[2].Y)
}

func TestAlignmentDelta(t *testing.T) {
	assert.Equal(t, 0, AlignStart.Delta(100, 40))
	assert.Equal(t, 30, AlignCenter.Delta(100, 40))
	assert.Equal(t, 60, AlignEnd.Delta(100, 40))
	assert.Equal(t, 0, AlignEnd.Delta(10, 40), "never negative")
	assert.Equal(t, 0, AlignCenter.Delta(10, 40))
}

func TestFloatingChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	box(tree, hb).Gap = 10
	a := leaf(t, tree, hb, "a", 50, 10)
	ign := leaf(t, tree, hb, "ignored", 20, 20)
	ign.Float = frame.FloatIgnore
	ign.X, ign.Y = 100, 100
	fl := leaf(t, tree, hb, "floating", 30, 30)
	require.NoError(t, SetAttribute(tree, fl.Handle(), "FLOATING", "yes"))
	b := leaf(t, tree, hb, "b", 50, 10)
	require.NoError(t, tree.Layout(hb, 0, 0))
	n := tree.Node(hb)
	assert.Equal(t, 110, n.NaturalWidth, "floating children do not count")
	assert.Equal(t, 10, n.NaturalHeight)
	assert.Equal(t, 60, b.X)
	assert.Equal(t, 20, ign.NaturalWidth)
	assert.Equal(t, 20, ign.CurrentWidth, "ignored children keep their natural size")
	assert.Equal(t, 100, ign.X, "ignored children keep their position")
	assert.Equal(t, 0, fl.NaturalWidth, "floating children are not sized")
	assert.Equal(t, 0, a.X)
}

func TestNormalizeSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	require.NoError(t, SetAttribute(tree, hb, "NORMALIZESIZE", "both"))
	a := leaf(t, tree, hb, "a", 20, 10)
	b := leaf(t, tree, hb, "b", 40, 30)
	require.NoError(t, tree.Layout(hb, 0, 0))
	assert.Equal(t, 40, a.NaturalWidth)
	assert.Equal(t, 30, a.NaturalHeight)
	assert.Equal(t, 80, tree.Node(hb).NaturalWidth)
	assert.Equal(t, 40, b.X)
}

func TestExpandChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	require.NoError(t, SetAttribute(tree, hb, "EXPANDCHILDREN", "yes"))
	a := leaf(t, tree, hb, "a", 20, 10)
	require.NoError(t, tree.Layout(hb, 0, 50))
	assert.Equal(t, 50, a.CurrentHeight)
	assert.Equal(t, 20, a.CurrentWidth)
}

func TestNestedBoxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	vb := NewVbox(tree, "dialog")
	hb := NewHbox(tree, "buttons")
	require.NoError(t, tree.Append(vb, hb))
	text := leaf(t, tree, vb, "text", 100, 60)
	text.ExpandRequest = frame.ExpandBoth
	require.NoError(t, tree.Append(hb, NewFill(tree, "fill")))
	ok := leaf(t, tree, hb, "ok", 40, 20)
	// the hbox expands horizontally because of the fill
	require.NoError(t, tree.Layout(vb, 300, 200))
	h := tree.Node(hb)
	assert.Equal(t, frame.ExpandW0, h.Expand)
	assert.Equal(t, 300, h.CurrentWidth)
	assert.Equal(t, 20, h.CurrentHeight)
	assert.Equal(t, 260, ok.X)
	assert.Equal(t, 180, text.CurrentHeight)
	assert.Equal(t, 20, text.Y)
}

func TestBoxAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.layout")
	defer teardown()
	//
	tree := newTestTree()
	hb := NewHbox(tree, "hbox")
	require.NoError(t, SetAttribute(tree, hb, "cgap", "4"))
	assert.Equal(t, 8, box(tree, hb).Gap)
	v, err := Attribute(tree, hb, "CGAP")
	require.NoError(t, err)
	assert.Equal(t, "4", v)
	require.NoError(t, SetAttribute(tree, hb, "CMARGIN", "2x4"))
	v, _ = Attribute(tree, hb, "MARGIN")
	assert.Equal(t, "4x8", v)
	require.NoError(t, SetAttribute(tree, hb, "GAP", "junk"))
	assert.Equal(t, 0, box(tree, hb).Gap, "malformed numbers read as 0")
	v, _ = Attribute(tree, hb, "ALIGNMENT")
	assert.Equal(t, "ATOP", v)
	v, _ = Attribute(tree, hb, "orientation")
	assert.Equal(t, "HORIZONTAL", v)
	require.NoError(t, SetAttribute(tree, hb, "HOMOGENEOUS", "Yes"))
	assert.True(t, box(tree, hb).Homogeneous)
	err = SetAttribute(tree, hb, "HOMOGENEOUS", "perhaps")
	assert.Error(t, err)
	err = SetAttribute(tree, hb, "NOSUCHTHING", "1")
	assert.Error(t, err)
}
