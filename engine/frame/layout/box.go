package layout

import (
	"math"

	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// Box is the policy of Hbox and Vbox containers: children are placed in a
// row (Hbox) or a column (Vbox), separated by Gap and surrounded by a margin.
type Box struct {
	Orientation    Orientation
	Gap            int
	MarginH        int
	MarginV        int
	Homogeneous    bool      // every child gets the same slot size
	ExpandChildren bool      // every child expands along the cross axis
	Alignment      Alignment // cross-axis alignment of children
	Normalize      Normalize
	//
	totalNaturalSize int // main-axis natural size, cached for leftover computation
	homogeneousSize  int
}

var _ frame.Policy = (*Box)(nil)

// NewHbox creates a container laying out its children horizontally.
func NewHbox(t *frame.Tree, name string) frame.Handle {
	return t.NewContainer(name, &Box{Orientation: Horizontal})
}

// NewVbox creates a container laying out its children vertically.
func NewVbox(t *frame.Tree, name string) frame.Handle {
	return t.NewContainer(name, &Box{Orientation: Vertical})
}

// Kind is part of interface frame.Policy.
func (b *Box) Kind() frame.Kind {
	if b.Orientation == Vertical {
		return frame.KindVbox
	}
	return frame.KindHbox
}

// HomogeneousSize returns the slot size of the last current-size pass, or 0
// if the box is not homogeneous.
func (b *Box) HomogeneousSize() int {
	return b.homogeneousSize
}

func (b *Box) margins() (main, cross int) {
	return b.Orientation.split(b.MarginH, b.MarginV)
}

// ComputeNaturalSize is part of interface frame.Policy.
func (b *Box) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	children := t.ComputeChildrenNaturalSize(n)
	var childrenExpand frame.Expand
	for _, c := range children {
		if b.ExpandChildren {
			c.Expand |= b.Orientation.crossExpand()
		}
		childrenExpand |= c.Expand
	}
	normalizeChildren(children, b.Normalize)
	total, maxCross := 0, 0
	maxMain := 0
	for _, c := range children {
		m, cr := b.Orientation.natural(c)
		total += m
		maxMain = dimen.Max(maxMain, m)
		maxCross = dimen.Max(maxCross, cr)
	}
	if b.Homogeneous {
		total = maxMain * len(children)
	}
	marginMain, marginCross := b.margins()
	total += gapsFor(len(children), b.Gap) + 2*marginMain
	b.totalNaturalSize = total
	w, h := b.Orientation.join(total, maxCross+2*marginCross)
	return w, h, childrenExpand
}

// emptySpace returns the leftover space along the main axis for every child
// with an expand flag of class e.
func (b *Box) emptySpace(n *frame.Node, children []*frame.Node, e frame.Expand) int {
	count := 0
	for _, c := range children {
		if c.Expand&e != 0 {
			count++
		}
	}
	if count == 0 {
		return 0
	}
	current, _ := b.Orientation.current(n)
	return dimen.ClampLow((current - b.totalNaturalSize) / count)
}

func (b *Box) calcHomogeneousSize(n *frame.Node, count int) int {
	if count == 0 {
		return 0
	}
	current, _ := b.Orientation.current(n)
	marginMain, _ := b.margins()
	return dimen.ClampLow((current - gapsFor(count, b.Gap) - 2*marginMain) / count)
}

// SetChildrenCurrentSize is part of interface frame.Policy.
//
// Leftover space is given to children with an explicit EXPAND (W1/H1) if
// there are any, otherwise to fillers (W0/H0).
func (b *Box) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	children := t.Participants(n)
	e0, e1 := b.Orientation.expandBits()
	empty0, empty1 := 0, 0
	b.homogeneousSize = 0
	if b.Homogeneous {
		b.homogeneousSize = b.calcHomogeneousSize(n, len(children))
	} else if n.Expand&e1 != 0 {
		empty1 = b.emptySpace(n, children, e1)
	} else if n.Expand&e0 != 0 {
		empty0 = b.emptySpace(n, children, e0)
	}
	_, cross := b.Orientation.current(n)
	_, marginCross := b.margins()
	client := dimen.ClampLow(cross - 2*marginCross)
	for _, c := range children {
		if b.Homogeneous {
			w, h := b.Orientation.join(b.homogeneousSize, client)
			t.SetCurrentSizeExpanding(c.Handle(), w, h, shrink, b.Orientation.mainExpand())
			continue
		}
		empty := 0
		if c.Expand&e1 != 0 {
			empty = empty1
		} else if c.Expand&e0 != 0 {
			empty = empty0
		}
		if empty > 0 {
			empty = weighted(empty, c.Weight)
		}
		m, _ := b.Orientation.natural(c)
		w, h := b.Orientation.join(m+empty, client)
		t.SetCurrentSize(c.Handle(), w, h, shrink)
	}
	t.SetFloatingCurrentSize(n, shrink)
}

// weighted scales leftover space by an expand weight, within 0…MaxSize.
func weighted(empty int, weight float64) int {
	g := math.Round(float64(empty) * weight)
	switch {
	case math.IsNaN(g) || g <= 0:
		return 0
	case g >= dimen.MaxSize:
		return dimen.MaxSize
	}
	return int(g)
}

// SetChildrenPosition is part of interface frame.Policy.
func (b *Box) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	x += b.MarginH
	y += b.MarginV
	_, cross := b.Orientation.current(n)
	_, marginCross := b.margins()
	client := cross - 2*marginCross
	pos := 0
	for _, c := range t.Participants(n) {
		m, cr := b.Orientation.current(c)
		delta := b.Alignment.Delta(client, cr)
		dx, dy := b.Orientation.join(pos, delta)
		t.SetPosition(c.Handle(), x+dx, y+dy)
		if b.homogeneousSize > 0 {
			m = b.homogeneousSize
		}
		pos += m + b.Gap
	}
	t.SetFloatingPosition(n)
}
