package layout

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// NumDivAuto lets a GridBox derive the number of divisions from its size.
const NumDivAuto = -1

// GridBox is the policy of grid containers. Children are arranged in a table
// of lines and columns.
//
// With orientation Horizontal children fill a line before the next one is
// started and NumDiv is the number of columns. With orientation Vertical
// children fill columns and NumDiv is the number of lines.
//
// The width of columns is taken from the reference line SizeLin and the height
// of lines from the reference column SizeCol. A reference of -1 takes the
// maximum over all lines (resp. columns).
type GridBox struct {
	Orientation    Orientation
	NumDiv         int // NumDivAuto or >= 1
	SizeLin        int
	SizeCol        int
	GapLin         int
	GapCol         int
	MarginH        int
	MarginV        int
	HomogeneousLin bool
	HomogeneousCol bool
	AlignmentLin   Alignment // vertical alignment within a line
	AlignmentCol   Alignment // horizontal alignment within a column
	Normalize      Normalize
	//
	linAlign *treemap.Map // line index -> Alignment
	colAlign *treemap.Map // column index -> Alignment
	numLin   int
	numCol   int
	linNat   []int // natural height per line
	colNat   []int // natural width per column
	linSize  []int // current height per line
	colSize  []int // current width per column
	linExp   []frame.Expand
	colExp   []frame.Expand
	lastW    int // natural size of the previous pass
	lastH    int
}

var _ frame.Policy = (*GridBox)(nil)

// NewGridBox creates a grid container with one division.
func NewGridBox(t *frame.Tree, name string) frame.Handle {
	return t.NewContainer(name, newGridBox())
}

func newGridBox() *GridBox {
	return &GridBox{
		NumDiv:   1,
		SizeLin:  -1,
		SizeCol:  -1,
		linAlign: treemap.NewWithIntComparator(),
		colAlign: treemap.NewWithIntComparator(),
	}
}

// Kind is part of interface frame.Policy.
func (g *GridBox) Kind() frame.Kind {
	return frame.KindGridBox
}

// NumLin returns the number of lines of the last natural-size pass.
func (g *GridBox) NumLin() int {
	return g.numLin
}

// NumCol returns the number of columns of the last natural-size pass.
func (g *GridBox) NumCol() int {
	return g.numCol
}

// SetLineAlignment overrides AlignmentLin for line i.
func (g *GridBox) SetLineAlignment(i int, a Alignment) {
	g.linAlign.Put(i, a)
}

// SetColumnAlignment overrides AlignmentCol for column i.
func (g *GridBox) SetColumnAlignment(i int, a Alignment) {
	g.colAlign.Put(i, a)
}

// LineAlignment returns the alignment of children within line i.
func (g *GridBox) LineAlignment(i int) Alignment {
	if a, found := g.linAlign.Get(i); found {
		return a.(Alignment)
	}
	return g.AlignmentLin
}

// ColumnAlignment returns the alignment of children within column i.
func (g *GridBox) ColumnAlignment(i int) Alignment {
	if a, found := g.colAlign.Get(i); found {
		return a.(Alignment)
	}
	return g.AlignmentCol
}

// cell returns the line and column of the i-th participating child.
func (g *GridBox) cell(i int) (lin, col int) {
	if g.Orientation == Vertical {
		return i % g.numLin, i / g.numLin
	}
	return i / g.numCol, i % g.numCol
}

// autoNumDiv packs children along the primary axis until the natural size of
// the previous pass is exceeded.
func (g *GridBox) autoNumDiv(n *frame.Node, children []*frame.Node) int {
	limit, gap, margin := n.UserWidth, g.GapCol, g.MarginH
	if g.Orientation == Vertical {
		limit, gap, margin = n.UserHeight, g.GapLin, g.MarginV
	}
	if limit <= 0 {
		limit = g.lastW
		if g.Orientation == Vertical {
			limit = g.lastH
		}
	}
	limit -= 2 * margin
	if limit <= 0 {
		return len(children)
	}
	running, count := 0, 0
	for _, c := range children {
		size, _ := g.Orientation.natural(c)
		if count > 0 {
			size += gap
		}
		if count > 0 && running+size > limit {
			break
		}
		running += size
		count++
	}
	return count
}

func (g *GridBox) dimensions(n *frame.Node, children []*frame.Node) {
	count := len(children)
	numDiv := g.NumDiv
	if numDiv == NumDivAuto {
		numDiv = g.autoNumDiv(n, children)
	}
	numDiv = dimen.Clamp(numDiv, 1, dimen.Max(1, count))
	lines := dimen.CeilDiv(count, numDiv)
	if g.Orientation == Vertical {
		g.numLin, g.numCol = numDiv, lines
	} else {
		g.numLin, g.numCol = lines, numDiv
	}
	if count == 0 {
		g.numLin, g.numCol = 0, 0
	}
}

// ComputeNaturalSize is part of interface frame.Policy.
func (g *GridBox) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	children := t.ComputeChildrenNaturalSize(n)
	normalizeChildren(children, g.Normalize)
	g.dimensions(n, children)
	g.linNat = make([]int, g.numLin)
	g.colNat = make([]int, g.numCol)
	g.linExp = make([]frame.Expand, g.numLin)
	g.colExp = make([]frame.Expand, g.numCol)
	refLin := g.SizeLin
	if refLin >= g.numLin {
		refLin = -1
	}
	refCol := g.SizeCol
	if refCol >= g.numCol {
		refCol = -1
	}
	for i, c := range children {
		lin, col := g.cell(i)
		if refLin < 0 || lin == refLin {
			g.colNat[col] = dimen.Max(g.colNat[col], c.NaturalWidth)
		}
		if refCol < 0 || col == refCol {
			g.linNat[lin] = dimen.Max(g.linNat[lin], c.NaturalHeight)
		}
		g.colExp[col] |= c.Expand & frame.ExpandWidth
		g.linExp[lin] |= c.Expand & frame.ExpandHeight
	}
	if g.HomogeneousCol {
		fillMax(g.colNat)
	}
	if g.HomogeneousLin {
		fillMax(g.linNat)
	}
	w := sum(g.colNat) + gapsFor(g.numCol, g.GapCol) + 2*g.MarginH
	h := sum(g.linNat) + gapsFor(g.numLin, g.GapLin) + 2*g.MarginV
	return w, h, unionExpand(children)
}

// SetChildrenCurrentSize is part of interface frame.Policy.
func (g *GridBox) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	g.lastW, g.lastH = n.NaturalWidth, n.NaturalHeight
	clientW := n.CurrentWidth - 2*g.MarginH - gapsFor(g.numCol, g.GapCol)
	clientH := n.CurrentHeight - 2*g.MarginV - gapsFor(g.numLin, g.GapLin)
	g.colSize = distribute(g.colNat, g.colExp, clientW, n.Expand, frame.ExpandW0, frame.ExpandW1, g.HomogeneousCol)
	g.linSize = distribute(g.linNat, g.linExp, clientH, n.Expand, frame.ExpandH0, frame.ExpandH1, g.HomogeneousLin)
	var force frame.Expand
	if g.HomogeneousCol {
		force |= frame.ExpandWidth
	}
	if g.HomogeneousLin {
		force |= frame.ExpandHeight
	}
	for i, c := range t.Participants(n) {
		lin, col := g.cell(i)
		t.SetCurrentSizeExpanding(c.Handle(), g.colSize[col], g.linSize[lin], shrink, force)
	}
	t.SetFloatingCurrentSize(n, shrink)
}

// SetChildrenPosition is part of interface frame.Policy.
func (g *GridBox) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	colX := offsets(g.colSize, g.GapCol)
	linY := offsets(g.linSize, g.GapLin)
	x += g.MarginH
	y += g.MarginV
	for i, c := range t.Participants(n) {
		lin, col := g.cell(i)
		dx := g.ColumnAlignment(col).Delta(g.colSize[col], c.CurrentWidth)
		dy := g.LineAlignment(lin).Delta(g.linSize[lin], c.CurrentHeight)
		t.SetPosition(c.Handle(), x+colX[col]+dx, y+linY[lin]+dy)
	}
	t.SetFloatingPosition(n)
}

// distribute computes the current size of lines or columns. Leftover space
// goes to slots containing a child with an explicit EXPAND if the container
// has one, otherwise to slots containing a filler.
func distribute(natural []int, expand []frame.Expand, client int, own, e0, e1 frame.Expand, homogeneous bool) []int {
	sizes := make([]int, len(natural))
	if len(natural) == 0 {
		return sizes
	}
	if homogeneous {
		size := dimen.ClampLow(client / len(natural))
		for i := range sizes {
			sizes[i] = size
		}
		return sizes
	}
	copy(sizes, natural)
	class := frame.ExpandNone
	if own&e1 != 0 {
		class = e1
	} else if own&e0 != 0 {
		class = e0
	}
	if class == frame.ExpandNone {
		return sizes
	}
	count := 0
	for _, e := range expand {
		if e&class != 0 {
			count++
		}
	}
	if count == 0 {
		return sizes
	}
	empty := dimen.ClampLow((client - sum(natural)) / count)
	for i, e := range expand {
		if e&class != 0 {
			sizes[i] += empty
		}
	}
	return sizes
}

func offsets(sizes []int, gap int) []int {
	off := make([]int, len(sizes))
	pos := 0
	for i, s := range sizes {
		off[i] = pos
		pos += s + gap
	}
	return off
}

func sum(v []int) int {
	s := 0
	for _, x := range v {
		s += x
	}
	return s
}

func fillMax(v []int) {
	m := 0
	for _, x := range v {
		m = dimen.Max(m, x)
	}
	for i := range v {
		v[i] = m
	}
}
