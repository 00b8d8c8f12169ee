package layout

import (
	"unicode/utf8"

	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// Frame is the policy of a container drawing a border, and optionally a
// title, around its single child. Border and title allowance are provided by
// the platform metrics.
type Frame struct{}

var _ frame.Policy = Frame{}
var _ frame.ChildLimiter = Frame{}

// NewFrame creates a frame container with an optional title.
func NewFrame(t *frame.Tree, name, title string) frame.Handle {
	h := t.NewContainer(name, Frame{})
	t.Node(h).Title = title
	return h
}

// Kind is part of interface frame.Policy.
func (Frame) Kind() frame.Kind {
	return frame.KindFrame
}

// MaxChildren is part of interface frame.ChildLimiter.
func (Frame) MaxChildren() int {
	return 1
}

// titleWidth returns the width of n's title in pixels.
func titleWidth(t *frame.Tree, n *frame.Node) int {
	if n.Title == "" {
		return 0
	}
	cw, _ := t.Metrics().CharSize(n)
	return utf8.RuneCountInString(n.Title) * cw
}

// ComputeNaturalSize is part of interface frame.Policy.
func (Frame) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	children := t.ComputeChildrenNaturalSize(n)
	w, h := maxNatural(children)
	w = dimen.Max(w, titleWidth(t, n))
	dw, dh := t.Metrics().DecorationSize(n)
	return w + dw, h + dh, unionExpand(children)
}

// SetChildrenCurrentSize is part of interface frame.Policy.
func (Frame) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	dw, dh := t.Metrics().DecorationSize(n)
	w := dimen.ClampLow(n.CurrentWidth - dw)
	h := dimen.ClampLow(n.CurrentHeight - dh)
	for _, c := range t.Participants(n) {
		t.SetCurrentSize(c.Handle(), w, h, shrink)
	}
	t.SetFloatingCurrentSize(n, shrink)
}

// SetChildrenPosition is part of interface frame.Policy.
func (Frame) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	dx, dy := t.Metrics().DecorationOffset(n)
	for _, c := range t.Participants(n) {
		t.SetPosition(c.Handle(), x+dx, y+dy)
	}
	t.SetFloatingPosition(n)
}
