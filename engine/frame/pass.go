package frame

import (
	"github.com/npillmayer/widgetbox/core"
	"github.com/npillmayer/widgetbox/core/dimen"
)

// --- Natural size ----------------------------------------------------------

// ComputeNaturalSize computes the natural size of h, recursing into the
// children of containers first.
//
// The natural size starts from the user size. Containers always compute and
// combine the result with the user size; leaves compute only the components
// not given by the user.
func (t *Tree) ComputeNaturalSize(h Handle) {
	n := t.Node(h)
	if n == nil {
		return
	}
	n.NaturalWidth, n.NaturalHeight = n.UserWidth, n.UserHeight
	if n.policy != nil {
		w, hh, childrenExpand := n.policy.ComputeNaturalSize(t, n)
		n.ChildrenExpand = childrenExpand
		n.NaturalWidth = dimen.Max(n.NaturalWidth, w)
		n.NaturalHeight = dimen.Max(n.NaturalHeight, hh)
		n.NaturalWidth, n.NaturalHeight = n.ApplyMinMax(n.NaturalWidth, n.NaturalHeight)
		n.Expand = containerExpand(n.ExpandRequest, childrenExpand)
	} else {
		w, hh, expand := n.ContentWidth, n.ContentHeight, n.ExpandRequest
		if n.sizer != nil {
			w, hh, expand = n.sizer.NaturalSize(t, n)
		}
		if n.NaturalWidth <= 0 {
			n.NaturalWidth = w
		}
		if n.NaturalHeight <= 0 {
			n.NaturalHeight = hh
		}
		n.NaturalWidth, n.NaturalHeight = n.ApplyMinMax(n.NaturalWidth, n.NaturalHeight)
		n.Expand = expand &^ expandFreeBits
	}
	tracer().Debugf("natural size of %v = %dx%d, expand=%v", n, n.NaturalWidth, n.NaturalHeight, n.Expand)
}

// ComputeChildrenNaturalSize computes the natural size of every child of n
// except fully floating ones, and returns the children participating in
// n's aggregates, in order.
func (t *Tree) ComputeChildrenNaturalSize(n *Node) []*Node {
	participants := make([]*Node, 0, len(n.children))
	for _, ch := range n.children {
		c := t.nodes[ch]
		if c.Float == FloatYes {
			continue
		}
		t.ComputeNaturalSize(ch)
		if c.Participates() {
			participants = append(participants, c)
		}
	}
	return participants
}

// Participants returns the children of n which take part in n's layout.
func (t *Tree) Participants(n *Node) []*Node {
	participants := make([]*Node, 0, len(n.children))
	for _, ch := range n.children {
		if c := t.nodes[ch]; c.Participates() {
			participants = append(participants, c)
		}
	}
	return participants
}

// --- Current size ----------------------------------------------------------

// SetCurrentSize assigns the current size offered by the parent.
//
// Leaves take the offered size only along axes they expand in, otherwise
// they keep their natural size. Containers do likewise but never go below
// their natural size unless shrink is set.
func (t *Tree) SetCurrentSize(h Handle, w, hh int, shrink bool) {
	t.SetCurrentSizeExpanding(h, w, hh, shrink, ExpandNone)
}

// SetCurrentSizeExpanding is SetCurrentSize, treating the node as expanding
// along the axes given by force in addition to its own flags.
func (t *Tree) SetCurrentSizeExpanding(h Handle, w, hh int, shrink bool, force Expand) {
	n := t.Node(h)
	if n == nil {
		return
	}
	expand := n.Expand | force
	cw, ch := n.NaturalWidth, n.NaturalHeight
	if expand&ExpandWidth != 0 {
		cw = w
		if n.policy != nil && !shrink {
			cw = dimen.Max(n.NaturalWidth, w)
		}
	}
	if expand&ExpandHeight != 0 {
		ch = hh
		if n.policy != nil && !shrink {
			ch = dimen.Max(n.NaturalHeight, hh)
		}
	}
	n.CurrentWidth, n.CurrentHeight = n.ApplyMinMax(cw, ch)
	tracer().Debugf("current size of %v = %dx%d", n, n.CurrentWidth, n.CurrentHeight)
	if n.policy != nil {
		n.policy.SetChildrenCurrentSize(t, n, shrink)
	}
}

// SetFloatingCurrentSize sizes the FloatIgnore children of n at their
// natural size. Policies call this after sizing their participants.
func (t *Tree) SetFloatingCurrentSize(n *Node, shrink bool) {
	for _, ch := range n.children {
		c := t.nodes[ch]
		if c.Float == FloatIgnore {
			t.SetCurrentSizeExpanding(ch, c.NaturalWidth, c.NaturalHeight, shrink, ExpandBoth)
		}
	}
}

// --- Position --------------------------------------------------------------

// SetPosition sets the absolute position of h and places its children.
func (t *Tree) SetPosition(h Handle, x, y int) {
	n := t.Node(h)
	if n == nil {
		return
	}
	n.X, n.Y = x, y
	if n.policy != nil {
		n.policy.SetChildrenPosition(t, n, x, y)
	}
}

// SetFloatingPosition re-places the FloatIgnore children of n at their
// own positions, laying out their subtrees.
func (t *Tree) SetFloatingPosition(n *Node) {
	for _, ch := range n.children {
		c := t.nodes[ch]
		if c.Float == FloatIgnore {
			t.SetPosition(ch, c.X, c.Y)
		}
	}
}

// --- Driver ----------------------------------------------------------------

// Layout runs a full layout pass over the tree rooted at root.
// The root gets size w×h (0 = natural size) and is placed at (0,0).
func (t *Tree) Layout(root Handle, w, h int) error {
	n, err := t.mustNode(root, "layout")
	if err != nil {
		return err
	}
	if t.inPass {
		return rejected(core.EINVALID, "layout pass already in progress")
	}
	t.inPass = true
	defer func() { t.inPass = false }()
	//
	tracer().Debugf("layout of %v, size %dx%d", n, w, h)
	t.ComputeNaturalSize(root)
	cw, ch := w, h
	if cw <= 0 {
		cw = n.NaturalWidth
	} else if !t.Shrink {
		cw = dimen.Max(cw, n.NaturalWidth)
	}
	if ch <= 0 {
		ch = n.NaturalHeight
	} else if !t.Shrink {
		ch = dimen.Max(ch, n.NaturalHeight)
	}
	n.CurrentWidth, n.CurrentHeight = n.ApplyMinMax(cw, ch)
	if n.policy != nil {
		n.policy.SetChildrenCurrentSize(t, n, t.Shrink)
	}
	t.SetPosition(root, 0, 0)
	return nil
}

// Refresh re-runs the layout of the subtree at h, keeping h's current size
// and position. Natural sizes of the subtree are recomputed.
func (t *Tree) Refresh(h Handle) error {
	n, err := t.mustNode(h, "refresh")
	if err != nil {
		return err
	}
	if t.inPass {
		return rejected(core.EINVALID, "layout pass already in progress")
	}
	t.inPass = true
	defer func() { t.inPass = false }()
	//
	t.ComputeNaturalSize(h)
	if n.policy != nil {
		n.policy.SetChildrenCurrentSize(t, n, t.Shrink)
		n.policy.SetChildrenPosition(t, n, n.X, n.Y)
	}
	return nil
}

// InPass is true while a layout pass is running.
func (t *Tree) InPass() bool {
	return t.inPass
}
