package layout

import (
	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// Cbox is the policy of a container placing its children at fixed positions
// (the children's CX and CY), at their natural size.
type Cbox struct{}

var _ frame.Policy = Cbox{}

// NewCbox creates a container with absolutely positioned children.
func NewCbox(t *frame.Tree, name string) frame.Handle {
	return t.NewContainer(name, Cbox{})
}

// Kind is part of interface frame.Policy.
func (Cbox) Kind() frame.Kind {
	return frame.KindCbox
}

// ComputeNaturalSize is part of interface frame.Policy.
func (Cbox) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	children := t.ComputeChildrenNaturalSize(n)
	w, h := 0, 0
	for _, c := range children {
		w = dimen.Max(w, c.CX+c.NaturalWidth)
		h = dimen.Max(h, c.CY+c.NaturalHeight)
	}
	return w, h, unionExpand(children)
}

// SetChildrenCurrentSize is part of interface frame.Policy.
func (Cbox) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	for _, c := range t.Participants(n) {
		t.SetCurrentSize(c.Handle(), c.NaturalWidth, c.NaturalHeight, shrink)
	}
	t.SetFloatingCurrentSize(n, shrink)
}

// SetChildrenPosition is part of interface frame.Policy.
func (Cbox) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	for _, c := range t.Participants(n) {
		t.SetPosition(c.Handle(), x+c.CX, y+c.CY)
	}
	t.SetFloatingPosition(n)
}
