package layout

import (
	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// MultiBox is the policy of flow containers. With orientation Horizontal
// children are placed left to right and wrap into a new line when the
// container's width is exhausted or a child has LineBreak set. With
// orientation Vertical children flow top to bottom and wrap into columns.
//
// Wrapping is decided during the current-size pass and recorded in each
// child's BreakBefore flag, which the position pass replays.
type MultiBox struct {
	Orientation Orientation
	GapLin      int // between lines
	GapCol      int // between columns
	MarginH     int
	MarginV     int
	//
	numLin      int
	numCol      int
	totalWidth  int
	totalHeight int
	lineSizes   []int // cross size of each line (or column)
}

var _ frame.Policy = (*MultiBox)(nil)

// NewMultiBox creates a flow container.
func NewMultiBox(t *frame.Tree, name string) frame.Handle {
	return t.NewContainer(name, &MultiBox{})
}

// Kind is part of interface frame.Policy.
func (mb *MultiBox) Kind() frame.Kind {
	return frame.KindMultiBox
}

// NumLin returns the number of lines after the last current-size pass.
// For vertical flow this is the largest number of children in a column.
func (mb *MultiBox) NumLin() int {
	return mb.numLin
}

// NumCol returns the number of columns after the last current-size pass.
// For horizontal flow this is the largest number of children in a line.
func (mb *MultiBox) NumCol() int {
	return mb.numCol
}

// TotalSize returns the extent used by the wrapped children, including margins.
func (mb *MultiBox) TotalSize() (w, h int) {
	return mb.totalWidth, mb.totalHeight
}

// ComputeNaturalSize is part of interface frame.Policy.
//
// The natural size is the size of the largest child; wrapping depends on the
// current size and is not known yet.
func (mb *MultiBox) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	children := t.ComputeChildrenNaturalSize(n)
	w, h := maxNatural(children)
	return w + 2*mb.MarginH, h + 2*mb.MarginV, unionExpand(children)
}

func (mb *MultiBox) gaps() (along, across int) {
	if mb.Orientation == Vertical {
		return mb.GapLin, mb.GapCol
	}
	return mb.GapCol, mb.GapLin
}

func (mb *MultiBox) breaksAfter(c *frame.Node) bool {
	if mb.Orientation == Vertical {
		return c.ColumnBreak
	}
	return c.LineBreak
}

// SetChildrenCurrentSize is part of interface frame.Policy.
func (mb *MultiBox) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	o := mb.Orientation
	children := t.Participants(n)
	marginMain, marginCross := o.split(mb.MarginH, mb.MarginV)
	current, _ := o.current(n)
	limit := current - 2*marginMain
	gapAlong, gapAcross := mb.gaps()
	mb.lineSizes = mb.lineSizes[:0]
	running, lineSize, maxRunning := 0, 0, 0
	items, maxItems := 0, 0
	var prev *frame.Node
	for _, c := range children {
		m, cr := o.natural(c)
		c.BreakBefore = false
		if prev != nil {
			if mb.breaksAfter(prev) || running+gapAlong+m > limit {
				c.BreakBefore = true
				mb.lineSizes = append(mb.lineSizes, lineSize)
				maxRunning = dimen.Max(maxRunning, running)
				maxItems = dimen.Max(maxItems, items)
				running, lineSize, items = 0, 0, 0
			} else {
				running += gapAlong
			}
		}
		running += m
		lineSize = dimen.Max(lineSize, cr)
		items++
		prev = c
	}
	if prev != nil {
		mb.lineSizes = append(mb.lineSizes, lineSize)
		maxRunning = dimen.Max(maxRunning, running)
		maxItems = dimen.Max(maxItems, items)
	}
	lines := len(mb.lineSizes)
	totalMain := maxRunning + 2*marginMain
	totalCross := sum(mb.lineSizes) + gapsFor(lines, gapAcross) + 2*marginCross
	mb.totalWidth, mb.totalHeight = o.join(totalMain, totalCross)
	if o == Vertical {
		mb.numLin, mb.numCol = maxItems, lines
	} else {
		mb.numLin, mb.numCol = lines, maxItems
	}
	// children keep their natural size along the flow, and may grow to the
	// cross size of their line
	line := -1
	for _, c := range children {
		if line < 0 || c.BreakBefore {
			line++
		}
		m, _ := o.natural(c)
		w, h := o.join(m, mb.lineSizes[line])
		t.SetCurrentSize(c.Handle(), w, h, shrink)
	}
	t.SetFloatingCurrentSize(n, shrink)
}

// SetChildrenPosition is part of interface frame.Policy.
func (mb *MultiBox) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	o := mb.Orientation
	gapAlong, gapAcross := mb.gaps()
	marginMain, marginCross := o.split(mb.MarginH, mb.MarginV)
	along, across := marginMain, marginCross
	line := -1
	for _, c := range t.Participants(n) {
		if line < 0 {
			line = 0
		} else if c.BreakBefore {
			across += mb.lineSizes[line] + gapAcross
			along = marginMain
			line++
		}
		dx, dy := o.join(along, across)
		t.SetPosition(c.Handle(), x+dx, y+dy)
		m, _ := o.current(c)
		along += m + gapAlong
	}
	t.SetFloatingPosition(n)
}
