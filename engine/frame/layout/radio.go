package layout

import (
	"github.com/npillmayer/widgetbox/core"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// Radio is the policy of a container grouping toggles. It has a single child,
// usually a box, and makes sure that exactly one toggle leaf among the
// child's descendants is selected. Layout-wise a radio is transparent.
type Radio struct {
	value frame.Handle
}

var _ frame.Policy = (*Radio)(nil)
var _ frame.ChildLimiter = (*Radio)(nil)

// NewRadio creates a radio container.
func NewRadio(t *frame.Tree, name string) frame.Handle {
	return t.NewContainer(name, &Radio{value: frame.NoHandle})
}

// NewToggle creates a toggle leaf of intrinsic size w×h.
func NewToggle(t *frame.Tree, name string, w, h int) frame.Handle {
	th := t.NewLeaf(name, w, h)
	t.Node(th).Toggle = true
	return th
}

// Kind is part of interface frame.Policy.
func (r *Radio) Kind() frame.Kind {
	return frame.KindRadio
}

// MaxChildren is part of interface frame.ChildLimiter.
func (r *Radio) MaxChildren() int {
	return 1
}

// toggles collects all toggle leaves below the radio at h, in pre-order.
func toggles(t *frame.Tree, h frame.Handle) []*frame.Node {
	var result []*frame.Node
	t.Walk(h, func(n *frame.Node) bool {
		if n.Handle() != h && n.Kind() == frame.KindRadio {
			return false // nested radios own their toggles
		}
		if n.Toggle {
			result = append(result, n)
		}
		return true
	})
	return result
}

// ValueHandle returns the selected toggle of the radio at h. If no toggle has
// been selected yet, the first one is selected.
func (r *Radio) ValueHandle(t *frame.Tree, h frame.Handle) frame.Handle {
	all := toggles(t, h)
	for _, tg := range all {
		if tg.Handle() == r.value {
			return r.value
		}
	}
	if len(all) == 0 {
		return frame.NoHandle
	}
	r.selectToggle(all, all[0].Handle())
	return r.value
}

// SetValueHandle selects toggle and deselects all other toggles of the radio at h.
func (r *Radio) SetValueHandle(t *frame.Tree, h, toggle frame.Handle) error {
	all := toggles(t, h)
	for _, tg := range all {
		if tg.Handle() == toggle {
			r.selectToggle(all, toggle)
			return nil
		}
	}
	return core.Error(core.EINVALID, "node %d is not a toggle of radio %d", toggle, h)
}

func (r *Radio) selectToggle(all []*frame.Node, toggle frame.Handle) {
	for _, tg := range all {
		tg.Selected = tg.Handle() == toggle
	}
	r.value = toggle
	tracer().Debugf("radio selected toggle %d", toggle)
}

// ComputeNaturalSize is part of interface frame.Policy.
func (r *Radio) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	r.ValueHandle(t, n.Handle())
	children := t.ComputeChildrenNaturalSize(n)
	w, h := maxNatural(children)
	return w, h, unionExpand(children)
}

// SetChildrenCurrentSize is part of interface frame.Policy.
func (r *Radio) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	for _, c := range t.Participants(n) {
		t.SetCurrentSize(c.Handle(), n.CurrentWidth, n.CurrentHeight, shrink)
	}
	t.SetFloatingCurrentSize(n, shrink)
}

// SetChildrenPosition is part of interface frame.Policy.
func (r *Radio) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	for _, c := range t.Participants(n) {
		t.SetPosition(c.Handle(), x, y)
	}
	t.SetFloatingPosition(n)
}
