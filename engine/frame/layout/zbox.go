package layout

import (
	"github.com/npillmayer/widgetbox/core"
	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// Zbox is the policy of stacked containers: all children occupy the same
// area and exactly one of them is visible.
type Zbox struct {
	Alignment    Alignment2D // of children smaller than the zbox
	ChildSizeAll bool        // natural size considers all children, not only the visible one
	Value        int         // index of the visible child among the participating children
}

var _ frame.Policy = (*Zbox)(nil)

// NewZbox creates a stacked container.
func NewZbox(t *frame.Tree, name string) frame.Handle {
	return t.NewContainer(name, &Zbox{ChildSizeAll: true})
}

// Kind is part of interface frame.Policy.
func (z *Zbox) Kind() frame.Kind {
	return frame.KindZbox
}

// active returns the index of the visible child.
func (z *Zbox) active(children []*frame.Node) int {
	if z.Value < 0 || z.Value >= len(children) {
		return 0
	}
	return z.Value
}

// ValueHandle returns the visible child of the zbox at h.
func (z *Zbox) ValueHandle(t *frame.Tree, h frame.Handle) frame.Handle {
	n := t.Node(h)
	if n == nil {
		return frame.NoHandle
	}
	children := t.Participants(n)
	if len(children) == 0 {
		return frame.NoHandle
	}
	return children[z.active(children)].Handle()
}

// SetValueHandle makes child the visible child of the zbox at h.
func (z *Zbox) SetValueHandle(t *frame.Tree, h, child frame.Handle) error {
	n := t.Node(h)
	if n == nil {
		return core.Error(core.EINVALID, "no node with handle %d", h)
	}
	for i, c := range t.Participants(n) {
		if c.Handle() == child {
			z.Value = i
			return nil
		}
	}
	return core.Error(core.EINVALID, "node %d is not a child of %v", child, n)
}

// ComputeNaturalSize is part of interface frame.Policy.
func (z *Zbox) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	children := t.ComputeChildrenNaturalSize(n)
	if len(children) == 0 {
		return 0, 0, frame.ExpandNone
	}
	if !z.ChildSizeAll {
		children = children[z.active(children) : z.active(children)+1]
	}
	w, h := maxNatural(children)
	return w, h, unionExpand(children)
}

// SetChildrenCurrentSize is part of interface frame.Policy.
func (z *Zbox) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	z.sizeChildren(t, n, n.CurrentWidth, n.CurrentHeight, shrink)
}

func (z *Zbox) sizeChildren(t *frame.Tree, n *frame.Node, w, h int, shrink bool) {
	children := t.Participants(n)
	active := z.active(children)
	for i, c := range children {
		c.Hidden = i != active
		t.SetCurrentSize(c.Handle(), w, h, shrink)
	}
	t.SetFloatingCurrentSize(n, shrink)
}

// SetChildrenPosition is part of interface frame.Policy.
func (z *Zbox) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	z.placeChildren(t, n, x, y, n.CurrentWidth, n.CurrentHeight)
}

func (z *Zbox) placeChildren(t *frame.Tree, n *frame.Node, x, y, w, h int) {
	for _, c := range t.Participants(n) {
		dx := z.Alignment.H.Delta(w, c.CurrentWidth)
		dy := z.Alignment.V.Delta(h, c.CurrentHeight)
		t.SetPosition(c.Handle(), x+dx, y+dy)
	}
	t.SetFloatingPosition(n)
}

// --- Tabs ------------------------------------------------------------------

// Tabs is a zbox decorated with a row of tab headers. The size of the
// decoration is provided by the platform metrics.
type Tabs struct {
	Zbox
}

var _ frame.Policy = (*Tabs)(nil)

// NewTabs creates a tabs container.
func NewTabs(t *frame.Tree, name string) frame.Handle {
	return t.NewContainer(name, &Tabs{Zbox{ChildSizeAll: true}})
}

// Kind is part of interface frame.Policy.
func (tb *Tabs) Kind() frame.Kind {
	return frame.KindTabs
}

// ComputeNaturalSize is part of interface frame.Policy.
func (tb *Tabs) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	w, h, e := tb.Zbox.ComputeNaturalSize(t, n)
	dw, dh := t.Metrics().DecorationSize(n)
	return w + dw, h + dh, e
}

// SetChildrenCurrentSize is part of interface frame.Policy.
func (tb *Tabs) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	dw, dh := t.Metrics().DecorationSize(n)
	w := dimen.ClampLow(n.CurrentWidth - dw)
	h := dimen.ClampLow(n.CurrentHeight - dh)
	tb.sizeChildren(t, n, w, h, shrink)
}

// SetChildrenPosition is part of interface frame.Policy.
func (tb *Tabs) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	dw, dh := t.Metrics().DecorationSize(n)
	dx, dy := t.Metrics().DecorationOffset(n)
	w := dimen.ClampLow(n.CurrentWidth - dw)
	h := dimen.ClampLow(n.CurrentHeight - dh)
	tb.placeChildren(t, n, x+dx, y+dy, w, h)
}
