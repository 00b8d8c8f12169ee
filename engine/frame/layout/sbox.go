package layout

import (
	"github.com/npillmayer/widgetbox/core"
	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// Direction is the side of an Sbox's child at which the bar is placed.
type Direction uint8

const (
	East Direction = iota
	West
	North
	South
)

var directionNames = [...]string{"EAST", "WEST", "NORTH", "SOUTH"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "EAST"
}

func parseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), true
		}
	}
	return East, false
}

// Sbox is the policy of a container with one child and a bar at one side of
// it. Dragging the bar sets an explicit size for the child.
type Sbox struct {
	Direction Direction
	BarSize   int
	Size      int // explicit child size along the bar's axis, -1 = natural
}

var _ frame.Policy = (*Sbox)(nil)
var _ frame.ChildLimiter = (*Sbox)(nil)

// NewSbox creates an sbox with the bar east of the child.
func NewSbox(t *frame.Tree, name string) frame.Handle {
	return t.NewContainer(name, &Sbox{BarSize: DefaultBarSize, Size: -1})
}

// Kind is part of interface frame.Policy.
func (sb *Sbox) Kind() frame.Kind {
	return frame.KindSbox
}

// MaxChildren is part of interface frame.ChildLimiter.
func (sb *Sbox) MaxChildren() int {
	return 1
}

func (sb *Sbox) axis() Orientation {
	if sb.Direction == North || sb.Direction == South {
		return Vertical
	}
	return Horizontal
}

func (sb *Sbox) childSize(c *frame.Node) int {
	m, _ := sb.axis().natural(c)
	if sb.Size < 0 {
		return m
	}
	lo, hi := c.MinWidth, c.MaxWidth
	if sb.axis() == Vertical {
		lo, hi = c.MinHeight, c.MaxHeight
	}
	return dimen.Clamp(sb.Size, lo, hi)
}

// ComputeNaturalSize is part of interface frame.Policy.
func (sb *Sbox) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	children := t.ComputeChildrenNaturalSize(n)
	a := sb.axis()
	if len(children) == 0 {
		w, h := a.join(sb.BarSize, 0)
		return w, h, frame.ExpandNone
	}
	c := children[0]
	_, cross := a.natural(c)
	w, h := a.join(sb.childSize(c)+sb.BarSize, cross)
	return w, h, c.Expand
}

// SetChildrenCurrentSize is part of interface frame.Policy.
func (sb *Sbox) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	a := sb.axis()
	main, cross := a.current(n)
	for _, c := range t.Participants(n) {
		w, h := a.join(dimen.ClampLow(main-sb.BarSize), cross)
		t.SetCurrentSizeExpanding(c.Handle(), w, h, shrink, frame.ExpandBoth)
	}
	t.SetFloatingCurrentSize(n, shrink)
}

// SetChildrenPosition is part of interface frame.Policy.
func (sb *Sbox) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	switch sb.Direction {
	case West:
		x += sb.BarSize
	case North:
		y += sb.BarSize
	}
	for _, c := range t.Participants(n) {
		t.SetPosition(c.Handle(), x, y)
	}
	t.SetFloatingPosition(n)
}

// BarOffset returns the position of the bar relative to the sbox's origin.
func (sb *Sbox) BarOffset(t *frame.Tree, h frame.Handle) int {
	if sb.Direction == West || sb.Direction == North {
		return 0
	}
	c := t.Child(h, 0)
	if c == nil {
		return 0
	}
	m, _ := sb.axis().current(c)
	return m
}

// Drag moves the bar of the sbox at h by (dx, dy) and lays out the whole tree
// again. The child's new size is clamped to its min/max constraints.
func (sb *Sbox) Drag(t *frame.Tree, h frame.Handle, dx, dy int) error {
	c := t.Child(h, 0)
	if c == nil {
		return core.Error(core.EMISSING, "sbox has no child")
	}
	a := sb.axis()
	d, _ := a.split(dx, dy)
	if sb.Direction == West || sb.Direction == North {
		d = -d
	}
	m, _ := a.current(c)
	sb.Size = dimen.ClampLow(m + d)
	sb.Size = sb.childSize(c)
	tracer().Debugf("sbox child size is now %d", sb.Size)
	return relayout(t, h)
}

// relayout runs a layout pass over the whole tree containing h, keeping the
// current size of its root.
func relayout(t *frame.Tree, h frame.Handle) error {
	root := t.Node(t.Root(h))
	if root == nil {
		return core.Error(core.EINVALID, "no node with handle %d", h)
	}
	return t.Layout(root.Handle(), root.CurrentWidth, root.CurrentHeight)
}
