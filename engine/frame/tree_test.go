package frame_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/widgetbox/backend/platform"
	"github.com/npillmayer/widgetbox/core"
	"github.com/npillmayer/widgetbox/engine/frame"
	"github.com/npillmayer/widgetbox/engine/frame/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialog builds
//
//	vbox
//	├── top (50x30)
//	└── hbox
//	    ├── a (20x10)
//	    └── b (20x10)
func dialog(t *testing.T) (tree *frame.Tree, vb, top, hb, a, b frame.Handle) {
	tree = frame.NewTree(platform.Default())
	vb = layout.NewVbox(tree, "vbox")
	top = tree.NewLeaf("top", 50, 30)
	hb = layout.NewHbox(tree, "hbox")
	a = tree.NewLeaf("a", 20, 10)
	b = tree.NewLeaf("b", 20, 10)
	require.NoError(t, tree.Append(vb, top))
	require.NoError(t, tree.Append(vb, hb))
	require.NoError(t, tree.Append(hb, a))
	require.NoError(t, tree.Append(hb, b))
	return
}

func TestTreeConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.frame")
	defer teardown()
	//
	tree, vb, top, hb, a, b := dialog(t)
	assert.Equal(t, []frame.Handle{top, hb}, tree.Children(vb))
	assert.Equal(t, hb, tree.Parent(a).Handle())
	assert.Nil(t, tree.Parent(vb))
	assert.Equal(t, vb, tree.Root(b))
	assert.True(t, tree.IsAncestor(vb, b))
	assert.False(t, tree.IsAncestor(hb, top))
	assert.Equal(t, b, tree.Child(hb, 1).Handle())
	assert.Nil(t, tree.Child(hb, 2))
	assert.Equal(t, frame.KindHbox, tree.Node(hb).Kind())
	assert.True(t, tree.Node(hb).IsContainer())
	assert.False(t, tree.Node(a).IsContainer())
	//
	c := tree.NewLeaf("c", 5, 5)
	require.NoError(t, tree.Insert(hb, c, 0))
	assert.Equal(t, []frame.Handle{c, a, b}, tree.Children(hb))
}

func TestTreeInsertErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.frame")
	defer teardown()
	//
	tree, vb, top, hb, a, _ := dialog(t)
	x := tree.NewLeaf("x", 1, 1)
	err := tree.Append(top, x)
	assert.Equal(t, core.EINVALID, core.Code(err), "leaves cannot take children")
	err = tree.Append(vb, a)
	assert.Equal(t, core.EINVALID, core.Code(err), "a already has a parent")
	err = tree.Append(hb, vb)
	assert.Equal(t, core.EINVALID, core.Code(err), "cycle")
	err = tree.Append(hb, hb)
	assert.Equal(t, core.EINVALID, core.Code(err), "cycle")
	err = tree.Append(hb, frame.Handle(999))
	assert.Equal(t, core.EINVALID, core.Code(err), "invalid handle")
	err = tree.Append(frame.NoHandle, x)
	assert.Equal(t, core.EINVALID, core.Code(err), "invalid handle")
	assert.Equal(t, 2, tree.Node(hb).ChildCount())
	//
	fr := layout.NewFrame(tree, "frame", "")
	require.NoError(t, tree.Append(fr, x))
	err = tree.Append(fr, tree.NewLeaf("y", 1, 1))
	assert.Equal(t, core.ECHILDREN, core.Code(err), "frame takes a single child")
	assert.Contains(t, err.Error(), "at most 1 children")
}

func TestTreeDetachAndDestroy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.frame")
	defer teardown()
	//
	tree, vb, top, hb, a, b := dialog(t)
	require.NoError(t, tree.Detach(top))
	assert.Equal(t, []frame.Handle{hb}, tree.Children(vb))
	assert.Equal(t, frame.NoHandle, tree.Node(top).Parent())
	require.NoError(t, tree.Insert(vb, top, 5))
	assert.Equal(t, []frame.Handle{hb, top}, tree.Children(vb))
	//
	require.NoError(t, tree.Destroy(hb))
	assert.Equal(t, []frame.Handle{top}, tree.Children(vb))
	assert.Nil(t, tree.Node(hb))
	assert.Nil(t, tree.Node(a))
	assert.Nil(t, tree.Node(b))
	c := tree.NewLeaf("c", 1, 1)
	assert.Contains(t, []frame.Handle{hb, a, b}, c, "handles are reused")
	assert.Equal(t, "c", tree.Node(c).Name)
}

func TestTreeWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.frame")
	defer teardown()
	//
	tree, vb, top, hb, a, b := dialog(t)
	var order []frame.Handle
	tree.Walk(vb, func(n *frame.Node) bool {
		order = append(order, n.Handle())
		return true
	})
	assert.Equal(t, []frame.Handle{vb, top, hb, a, b}, order)
	order = order[:0]
	tree.Walk(vb, func(n *frame.Node) bool {
		order = append(order, n.Handle())
		return n.Handle() != hb
	})
	assert.Equal(t, []frame.Handle{vb, top, hb}, order, "children of hbox are skipped")
}

func TestRealize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.frame")
	defer teardown()
	//
	tree, vb, _, _, a, _ := dialog(t)
	assert.Equal(t, core.EINVALID, core.Code(tree.Realize(vb)), "no factory")
	reg := platform.NewRegistry(0)
	tree.SetNativeFactory(reg)
	require.NoError(t, tree.Realize(vb))
	assert.Equal(t, 5, reg.Len())
	k, ok := reg.Kind(tree.Node(a).Native)
	assert.True(t, ok)
	assert.Equal(t, frame.KindLeaf, k)
	require.NoError(t, tree.Realize(vb))
	assert.Equal(t, 5, reg.Len(), "realized nodes are not created twice")
	//
	tree, vb, _, _, _, _ = dialog(t)
	tree.SetNativeFactory(platform.NewRegistry(3))
	err := tree.Realize(vb)
	assert.Equal(t, core.EINTERNAL, core.Code(err))
}

// mutatingSizer tries to modify the tree while a layout pass is running.
type mutatingSizer struct {
	inPass   bool
	appended error
	layout   error
}

func (s *mutatingSizer) NaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	s.inPass = t.InPass()
	s.appended = t.Append(n.Parent(), t.NewLeaf("intruder", 1, 1))
	s.layout = t.Layout(n.Parent(), 0, 0)
	return 5, 5, frame.ExpandNone
}

func TestNoMutationDuringPass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.frame")
	defer teardown()
	//
	tree := frame.NewTree(nil)
	hb := layout.NewHbox(tree, "hbox")
	sizer := &mutatingSizer{}
	require.NoError(t, tree.Append(hb, tree.NewSizedLeaf("custom", frame.KindLeaf, sizer)))
	require.NoError(t, tree.Layout(hb, 0, 0))
	assert.True(t, sizer.inPass)
	assert.Equal(t, core.EINVALID, core.Code(sizer.appended))
	assert.Equal(t, core.EINVALID, core.Code(sizer.layout))
	assert.Equal(t, 1, tree.Node(hb).ChildCount())
	assert.False(t, tree.InPass())
	assert.Equal(t, 5, tree.Node(hb).NaturalWidth)
}

func TestUserAndMinMaxSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.frame")
	defer teardown()
	//
	tree, vb, top, hb, a, _ := dialog(t)
	n := tree.Node(top)
	n.MinWidth = 60
	n.MaxHeight = 25
	tree.Node(a).UserWidth = 35
	tree.Node(hb).UserWidth = 100
	require.NoError(t, tree.Layout(vb, 0, 0))
	assert.Equal(t, 60, n.NaturalWidth)
	assert.Equal(t, 25, n.NaturalHeight)
	assert.Equal(t, 35, tree.Node(a).NaturalWidth, "user size wins for leaves")
	assert.Equal(t, 10, tree.Node(a).NaturalHeight, "missing component taken from content")
	assert.Equal(t, 100, tree.Node(hb).NaturalWidth, "container takes max(user, computed)")
	assert.Equal(t, 100, tree.Node(vb).CurrentWidth)
	assert.Equal(t, 35, tree.Node(vb).CurrentHeight)
	//
	n.MaxWidth = -1
	n.ContentWidth = 500
	require.NoError(t, tree.Layout(vb, 0, 0))
	assert.Equal(t, 500, n.NaturalWidth, "negative max size means unlimited")
}

func TestRootSizing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.frame")
	defer teardown()
	//
	tree, vb, _, _, _, _ := dialog(t)
	root := tree.Node(vb)
	require.NoError(t, tree.Layout(vb, 20, 20))
	assert.Equal(t, 50, root.CurrentWidth, "root does not shrink below natural size")
	assert.Equal(t, 40, root.CurrentHeight)
	assert.Equal(t, 0, root.X)
	tree.Shrink = true
	require.NoError(t, tree.Layout(vb, 20, 20))
	assert.Equal(t, 20, root.CurrentWidth)
	assert.Equal(t, 20, root.CurrentHeight)
	require.NoError(t, tree.Layout(vb, 0, 0))
	assert.Equal(t, 50, root.CurrentWidth, "zero means natural size")
	assert.Equal(t, core.EINVALID, core.Code(tree.Layout(frame.Handle(42), 0, 0)))
}

func TestRefresh(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.frame")
	defer teardown()
	//
	tree, vb, _, hb, a, b := dialog(t)
	require.NoError(t, tree.Layout(vb, 0, 0))
	box := tree.Node(hb)
	assert.Equal(t, [2]int{0, 30}, [2]int{box.X, box.Y})
	assert.Equal(t, 40, box.CurrentWidth)
	tree.Node(a).ContentWidth = 30
	require.NoError(t, tree.Refresh(hb))
	assert.Equal(t, 50, box.NaturalWidth)
	assert.Equal(t, 40, box.CurrentWidth, "refresh keeps the current size")
	assert.Equal(t, 30, tree.Node(a).CurrentWidth)
	assert.Equal(t, [2]int{30, 30}, [2]int{tree.Node(b).X, tree.Node(b).Y})
}

func TestExpandFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "widgetbox.frame")
	defer teardown()
	//
	assert.Equal(t, "YES", frame.ExpandBoth.String())
	assert.Equal(t, "HORIZONTAL", frame.ExpandW0.String())
	assert.Equal(t, "VERTICAL", frame.ExpandHeight.String())
	assert.Equal(t, "NO", frame.ExpandNone.String())
	assert.True(t, frame.ExpandW1.Horizontal())
	assert.False(t, frame.ExpandW1.Vertical())
	//
	tree, vb, _, hb, a, _ := dialog(t)
	require.NoError(t, tree.Layout(vb, 0, 0))
	assert.Equal(t, frame.ExpandNone, tree.Node(hb).Expand, "containers expand only with their children")
	tree.Node(hb).ExpandRequest = frame.ExpandWidthFree
	require.NoError(t, tree.Layout(vb, 0, 0))
	assert.Equal(t, frame.ExpandWidth, tree.Node(hb).Expand, "free expansion ignores children")
	tree.Node(hb).ExpandRequest = frame.ExpandBoth
	tree.Node(a).ExpandRequest = frame.ExpandBothFree
	require.NoError(t, tree.Layout(vb, 200, 0))
	assert.Equal(t, frame.ExpandBoth, tree.Node(a).Expand, "leaves drop free bits")
	assert.Equal(t, 200, tree.Node(hb).CurrentWidth)
	assert.Equal(t, 180, tree.Node(a).CurrentWidth)
}

func TestFloatModes(t *testing.T) {
	assert.Equal(t, "IGNORE", frame.FloatIgnore.String())
	assert.Equal(t, "NO", frame.FloatNone.String())
	n := &frame.Node{Float: frame.FloatYes}
	assert.False(t, n.Participates())
	w, h := (&frame.Node{MinWidth: 10, MaxWidth: 5, MaxHeight: 20}).ApplyMinMax(3, 30)
	assert.Equal(t, 10, w, "min wins over max")
	assert.Equal(t, 20, h)
}
