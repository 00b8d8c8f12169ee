package layout

import (
	"github.com/npillmayer/widgetbox/engine/frame"
)

// Fill is a leaf taking up leftover space of an Hbox or Vbox.
//
// A fill without an explicit size along its parent's axis reports the
// W0 (resp. H0) expand flag. It then receives leftover space only if no
// sibling requests EXPAND explicitly.
type Fill struct{}

// NewFill creates a filler leaf.
func NewFill(t *frame.Tree, name string) frame.Handle {
	return t.NewSizedLeaf(name, frame.KindFill, Fill{})
}

// NaturalSize is part of interface frame.LeafSizer.
func (Fill) NaturalSize(t *frame.Tree, n *frame.Node) (w, h int, expand frame.Expand) {
	parent := t.Parent(n.Handle())
	if parent == nil {
		return 0, 0, frame.ExpandNone
	}
	switch parent.Kind() {
	case frame.KindHbox:
		if n.UserWidth == 0 {
			expand = frame.ExpandW0
		}
	case frame.KindVbox:
		if n.UserHeight == 0 {
			expand = frame.ExpandH0
		}
	}
	return 0, 0, expand
}
