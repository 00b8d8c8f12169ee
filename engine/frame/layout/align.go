package layout

import (
	"fmt"

	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// Orientation is the direction of a box, a grid or a split bar.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "VERTICAL"
	}
	return "HORIZONTAL"
}

func parseOrientation(s string) (Orientation, bool) {
	switch s {
	case "HORIZONTAL":
		return Horizontal, true
	case "VERTICAL":
		return Vertical, true
	}
	return Horizontal, false
}

// split returns (main, cross) of a (w, h) pair, with main being the
// dimension along the orientation.
func (o Orientation) split(w, h int) (int, int) {
	if o == Vertical {
		return h, w
	}
	return w, h
}

// join is the inverse of split.
func (o Orientation) join(main, cross int) (w, h int) {
	if o == Vertical {
		return cross, main
	}
	return main, cross
}

func (o Orientation) natural(n *frame.Node) (int, int) {
	return o.split(n.NaturalWidth, n.NaturalHeight)
}

func (o Orientation) current(n *frame.Node) (int, int) {
	return o.split(n.CurrentWidth, n.CurrentHeight)
}

// expandBits returns the W0/W1 (resp. H0/H1) flags along the orientation.
func (o Orientation) expandBits() (e0, e1 frame.Expand) {
	if o == Vertical {
		return frame.ExpandH0, frame.ExpandH1
	}
	return frame.ExpandW0, frame.ExpandW1
}

func (o Orientation) mainExpand() frame.Expand {
	if o == Vertical {
		return frame.ExpandHeight
	}
	return frame.ExpandWidth
}

func (o Orientation) crossExpand() frame.Expand {
	if o == Vertical {
		return frame.ExpandWidth
	}
	return frame.ExpandHeight
}

// --- Alignment -------------------------------------------------------------

// Alignment positions a child within a slot larger than the child.
type Alignment uint8

const (
	AlignStart Alignment = iota // ATOP or ALEFT
	AlignCenter
	AlignEnd // ABOTTOM or ARIGHT
)

// Delta returns the offset of a child of size size within a slot.
// The result is never negative.
func (a Alignment) Delta(slot, size int) int {
	var d int
	switch a {
	case AlignCenter:
		d = (slot - size) / 2
	case AlignEnd:
		d = slot - size
	}
	return dimen.ClampLow(d)
}

// name returns the attribute value for a, as seen along orientation o.
func (a Alignment) name(o Orientation) string {
	names := [...]string{"ALEFT", "ACENTER", "ARIGHT"}
	if o == Vertical {
		names = [...]string{"ATOP", "ACENTER", "ABOTTOM"}
	}
	if int(a) < len(names) {
		return names[a]
	}
	return fmt.Sprintf("Alignment(%d)", a)
}

func parseAlignment(s string) (Alignment, bool) {
	switch s {
	case "ALEFT", "ATOP":
		return AlignStart, true
	case "ACENTER":
		return AlignCenter, true
	case "ARIGHT", "ABOTTOM":
		return AlignEnd, true
	}
	return AlignStart, false
}

// Alignment2D is a nine-point alignment, as used by stacked containers.
type Alignment2D struct {
	H, V Alignment
}

var alignments2D = map[string]Alignment2D{
	"NW":      {AlignStart, AlignStart},
	"NORTH":   {AlignCenter, AlignStart},
	"NE":      {AlignEnd, AlignStart},
	"WEST":    {AlignStart, AlignCenter},
	"ACENTER": {AlignCenter, AlignCenter},
	"EAST":    {AlignEnd, AlignCenter},
	"SW":      {AlignStart, AlignEnd},
	"SOUTH":   {AlignCenter, AlignEnd},
	"SE":      {AlignEnd, AlignEnd},
}

func parseAlignment2D(s string) (Alignment2D, bool) {
	a, ok := alignments2D[s]
	return a, ok
}

func (a Alignment2D) String() string {
	for k, v := range alignments2D {
		if v == a {
			return k
		}
	}
	return "NW"
}

// --- Normalize -------------------------------------------------------------

// Normalize tells which dimensions of children are set to the maximum of all
// children's natural sizes (NORMALIZESIZE).
type Normalize uint8

const (
	NormalizeNone       Normalize = 0
	NormalizeHorizontal Normalize = 1
	NormalizeVertical   Normalize = 2
	NormalizeBoth                 = NormalizeHorizontal | NormalizeVertical
)

func (nz Normalize) String() string {
	switch nz {
	case NormalizeHorizontal:
		return "HORIZONTAL"
	case NormalizeVertical:
		return "VERTICAL"
	case NormalizeBoth:
		return "BOTH"
	}
	return "NONE"
}

func parseNormalize(s string) (Normalize, bool) {
	switch s {
	case "NONE", "NO":
		return NormalizeNone, true
	case "HORIZONTAL":
		return NormalizeHorizontal, true
	case "VERTICAL":
		return NormalizeVertical, true
	case "BOTH", "YES":
		return NormalizeBoth, true
	}
	return NormalizeNone, false
}

// normalizeChildren sets the natural size of every child to the maximum
// natural size among them, in the dimensions selected by nz.
func normalizeChildren(children []*frame.Node, nz Normalize) {
	if nz == NormalizeNone {
		return
	}
	maxw, maxh := maxNatural(children)
	for _, c := range children {
		if nz&NormalizeHorizontal != 0 {
			c.NaturalWidth = maxw
		}
		if nz&NormalizeVertical != 0 {
			c.NaturalHeight = maxh
		}
	}
}

func maxNatural(children []*frame.Node) (w, h int) {
	for _, c := range children {
		w = dimen.Max(w, c.NaturalWidth)
		h = dimen.Max(h, c.NaturalHeight)
	}
	return
}

func unionExpand(children []*frame.Node) frame.Expand {
	var e frame.Expand
	for _, c := range children {
		e |= c.Expand
	}
	return e
}

// gapsFor returns the total size of gaps between count items.
func gapsFor(count, gap int) int {
	if count <= 1 {
		return 0
	}
	return (count - 1) * gap
}
