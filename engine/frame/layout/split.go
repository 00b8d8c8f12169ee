package layout

import (
	"github.com/npillmayer/widgetbox/core"
	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/core/permille"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// DefaultBarSize is the thickness of split and sbox bars.
const DefaultBarSize = 5

// Split is the policy of split containers: two children separated by a
// draggable bar.
//
// Orientation is the orientation of the bar: a Vertical bar separates a left
// and a right child. Value is the size of the first child in permille of the
// space available to both children. The value is corrected whenever the
// children's min/max constraints do not allow the requested split, so that
// it always matches the rendered bar position.
type Split struct {
	Orientation Orientation
	Value       permille.Permille // permille.Unset until the first layout
	Min, Max    permille.Permille // MINMAX
	BarSize     int
	AutoHide    bool // hide a child whose size drops below BarSize
	LayoutDrag  bool // re-layout on every drag move
	//
	total      int // size available to both children
	width1     int // realized size of the first child
	dragging   bool
	dragOffset int
}

var _ frame.Policy = (*Split)(nil)
var _ frame.ChildLimiter = (*Split)(nil)

// NewSplit creates a split container with a vertical bar.
func NewSplit(t *frame.Tree, name string) frame.Handle {
	return t.NewContainer(name, newSplit())
}

func newSplit() *Split {
	return &Split{
		Orientation: Vertical,
		Value:       permille.Unset,
		Min:         0,
		Max:         permille.Full,
		BarSize:     DefaultBarSize,
		LayoutDrag:  true,
	}
}

// Kind is part of interface frame.Policy.
func (s *Split) Kind() frame.Kind {
	return frame.KindSplit
}

// MaxChildren is part of interface frame.ChildLimiter.
func (s *Split) MaxChildren() int {
	return 2
}

// axis is the direction in which the children are arranged.
func (s *Split) axis() Orientation {
	if s.Orientation == Vertical {
		return Horizontal
	}
	return Vertical
}

// SetValue sets the split value, clamped to [Min,Max].
func (s *Split) SetValue(v permille.Permille) {
	s.Value = v.Clamp(s.Min, s.Max)
}

// SetMinMax sets the range of the split value.
func (s *Split) SetMinMax(lo, hi permille.Permille) {
	lo, hi = lo.Clamp(0, permille.Full), hi.Clamp(0, permille.Full)
	if hi < lo {
		lo, hi = hi, lo
	}
	s.Min, s.Max = lo, hi
	if s.Value != permille.Unset {
		s.Value = s.Value.Clamp(lo, hi)
	}
}

// ComputeNaturalSize is part of interface frame.Policy.
//
// On the first pass the split value is derived from the proportion of the
// children's natural sizes.
func (s *Split) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	children := t.ComputeChildrenNaturalSize(n)
	a := s.axis()
	main, cross := s.BarSize, 0
	sizes := make([]int, 0, 2)
	for _, c := range children {
		m, cr := a.natural(c)
		main += m
		cross = dimen.Max(cross, cr)
		sizes = append(sizes, m)
	}
	if s.Value == permille.Unset {
		s.Value = 500
		if len(sizes) == 2 {
			s.Value = permille.FromRatio(sizes[0], sizes[0]+sizes[1], 500)
		}
		tracer().Debugf("initial split value of %v = %v", n, s.Value)
	}
	s.Value = s.Value.Clamp(s.Min, s.Max)
	w, h := a.join(main, cross)
	return w, h, unionExpand(children)
}

// limits returns the min and max size of c along the split axis.
func (s *Split) limits(c *frame.Node) (lo, hi int) {
	if s.axis() == Vertical {
		return c.MinHeight, c.MaxHeight
	}
	return c.MinWidth, c.MaxWidth
}

// constrain corrects the size of the first child such that both children
// respect their min/max constraints. The first child's minimum wins.
func (s *Split) constrain(children []*frame.Node, w1 int) int {
	if len(children) > 1 {
		lo, hi := s.limits(children[1])
		if w2 := s.total - w1; w2 < lo {
			w1 = s.total - lo
		} else if hi >= 0 && w2 > hi {
			w1 = s.total - hi
		}
	}
	if len(children) > 0 {
		lo, hi := s.limits(children[0])
		if hi >= 0 && w1 > hi {
			w1 = hi
		}
		if w1 < lo {
			w1 = lo
		}
	}
	return dimen.Clamp(w1, 0, s.total)
}

// SetChildrenCurrentSize is part of interface frame.Policy.
//
// Children always fill their part of the split and may shrink below their
// natural size.
func (s *Split) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	a := s.axis()
	children := t.Participants(n)
	main, cross := a.current(n)
	s.total = dimen.ClampLow(main - s.BarSize)
	if s.Value == permille.Unset {
		s.Value = 500
	}
	w1 := s.Value.Of(s.total)
	if len(children) == 1 {
		w1 = s.total // a lone child takes the whole split, keeping the value
	} else if c := s.constrain(children, w1); c != w1 {
		old := s.Value
		s.Value = permille.FromRatio(c, s.total, s.Value)
		tracer().Infof("%v: split value corrected from %v to %v", n, old, s.Value)
		w1 = c
	}
	s.width1 = w1
	sizes := []int{w1, s.total - w1}
	for i, c := range children {
		c.Hidden = s.AutoHide && sizes[i] < s.BarSize
		w, h := a.join(sizes[i], cross)
		t.SetCurrentSizeExpanding(c.Handle(), w, h, true, frame.ExpandBoth)
	}
	t.SetFloatingCurrentSize(n, shrink)
}

// SetChildrenPosition is part of interface frame.Policy.
func (s *Split) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	a := s.axis()
	offset := 0
	for i, c := range t.Participants(n) {
		if i == 1 {
			offset = s.width1 + s.BarSize
		}
		dx, dy := a.join(offset, 0)
		t.SetPosition(c.Handle(), x+dx, y+dy)
	}
	t.SetFloatingPosition(n)
}

// BarOffset returns the position of the bar relative to the split's origin.
// While a drag without LayoutDrag is in progress, this is the dragged position.
func (s *Split) BarOffset() int {
	if s.dragging && !s.LayoutDrag {
		return s.dragOffset
	}
	return s.width1
}

// Dragging is true between DragStart and DragEnd.
func (s *Split) Dragging() bool {
	return s.dragging
}

// DragStart starts moving the bar.
func (s *Split) DragStart() {
	s.dragging = true
	s.dragOffset = s.width1
}

// DragMove moves the bar by (dx, dy); only the component along the split
// axis is used. With LayoutDrag set, the split at h is laid out again,
// otherwise only the bar moves until DragEnd.
func (s *Split) DragMove(t *frame.Tree, h frame.Handle, dx, dy int) error {
	if !s.dragging {
		return core.Error(core.EINVALID, "split is not being dragged")
	}
	d, _ := s.axis().split(dx, dy)
	s.dragOffset = dimen.Clamp(s.dragOffset+d, 0, s.total)
	if !s.LayoutDrag {
		return nil
	}
	s.SetValue(permille.FromRatio(s.dragOffset, s.total, s.Value))
	return t.Refresh(h)
}

// DragEnd finishes moving the bar and lays out the split at h.
func (s *Split) DragEnd(t *frame.Tree, h frame.Handle) error {
	if !s.dragging {
		return core.Error(core.EINVALID, "split is not being dragged")
	}
	s.dragging = false
	s.SetValue(permille.FromRatio(s.dragOffset, s.total, s.Value))
	return t.Refresh(h)
}
