package layout

import (
	"time"

	"github.com/npillmayer/widgetbox/core"
	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// ExpanderState is the state of an expander's child.
type ExpanderState uint8

const (
	Closed ExpanderState = iota
	Opening
	Open
	Closing
)

var expanderStateNames = [...]string{"CLOSE", "OPENING", "OPEN", "CLOSING"}

func (s ExpanderState) String() string {
	if int(s) < len(expanderStateNames) {
		return expanderStateNames[s]
	}
	return "OPEN"
}

// BarPosition is the side of an expander where the bar is placed.
type BarPosition uint8

const (
	BarTop BarPosition = iota
	BarBottom
	BarLeft
	BarRight
)

var barPositionNames = [...]string{"TOP", "BOTTOM", "LEFT", "RIGHT"}

func (p BarPosition) String() string {
	if int(p) < len(barPositionNames) {
		return barPositionNames[p]
	}
	return "TOP"
}

func parseBarPosition(s string) (BarPosition, bool) {
	for i, name := range barPositionNames {
		if s == name {
			return BarPosition(i), true
		}
	}
	return BarTop, false
}

// Scheduler calls tick every interval until tick returns false.
// It stands in for the timer of a GUI event loop.
type Scheduler interface {
	Schedule(interval time.Duration, tick func() bool)
}

// Defaults for expander animation.
const (
	DefaultNumFrames = 10
	DefaultFrameTime = 30 * time.Millisecond
)

// expanderHandleSize is the bar size of an expander without a title.
const expanderHandleSize = 20

// Expander is the policy of a container with a bar and a single child which
// may be collapsed. With Animation set, opening and closing slide the child in
// NumFrames steps, restricting its max size along the bar's axis.
type Expander struct {
	BarPosition BarPosition
	BarSize     int // -1 = derived from the title's char height
	Animation   bool
	NumFrames   int
	FrameTime   time.Duration
	Scheduler   Scheduler // drives animation; without it, call Tick
	//
	state    ExpanderState
	frame    int
	fullSize int // child's natural size along the axis when open
	savedMax int // child's max size along the axis before animation
	saved    bool
	running  bool
	gen      int // invalidates scheduled tickers of cancelled animations
}

var _ frame.Policy = (*Expander)(nil)
var _ frame.ChildLimiter = (*Expander)(nil)

// NewExpander creates an open expander with the bar on top.
func NewExpander(t *frame.Tree, name, title string) frame.Handle {
	h := t.NewContainer(name, &Expander{
		BarSize:   -1,
		NumFrames: DefaultNumFrames,
		FrameTime: DefaultFrameTime,
		state:     Open,
	})
	t.Node(h).Title = title
	return h
}

// Kind is part of interface frame.Policy.
func (e *Expander) Kind() frame.Kind {
	return frame.KindExpander
}

// MaxChildren is part of interface frame.ChildLimiter.
func (e *Expander) MaxChildren() int {
	return 1
}

// State returns the current state of the expander.
func (e *Expander) State() ExpanderState {
	return e.state
}

// axis is the direction in which the child is collapsed.
func (e *Expander) axis() Orientation {
	if e.BarPosition == BarLeft || e.BarPosition == BarRight {
		return Horizontal
	}
	return Vertical
}

func (e *Expander) barSize(t *frame.Tree, n *frame.Node) int {
	if e.BarSize >= 0 {
		return e.BarSize
	}
	if n.Title == "" {
		return expanderHandleSize
	}
	_, ch := t.Metrics().CharSize(n)
	return ch + 10
}

// ComputeNaturalSize is part of interface frame.Policy.
func (e *Expander) ComputeNaturalSize(t *frame.Tree, n *frame.Node) (int, int, frame.Expand) {
	children := t.ComputeChildrenNaturalSize(n)
	a := e.axis()
	bar := e.barSize(t, n)
	main, cross := bar, 0
	if a == Vertical {
		cross = bar + titleWidth(t, n)
	}
	expand := frame.ExpandNone
	for _, c := range children {
		m, cr := a.natural(c)
		cross = dimen.Max(cross, cr)
		c.Hidden = e.state == Closed
		if c.Hidden {
			expand |= c.Expand &^ a.mainExpand()
			continue
		}
		main += m
		expand |= c.Expand
	}
	w, h := a.join(main, cross)
	return w, h, expand
}

// SetChildrenCurrentSize is part of interface frame.Policy.
//
// A closed expander does not lay out its child's subtree.
func (e *Expander) SetChildrenCurrentSize(t *frame.Tree, n *frame.Node, shrink bool) {
	a := e.axis()
	main, cross := a.current(n)
	bar := e.barSize(t, n)
	for _, c := range t.Participants(n) {
		if c.Hidden {
			continue
		}
		w, h := a.join(dimen.ClampLow(main-bar), cross)
		t.SetCurrentSize(c.Handle(), w, h, shrink)
	}
	t.SetFloatingCurrentSize(n, shrink)
}

// SetChildrenPosition is part of interface frame.Policy.
func (e *Expander) SetChildrenPosition(t *frame.Tree, n *frame.Node, x, y int) {
	bar := e.barSize(t, n)
	switch e.BarPosition {
	case BarTop:
		y += bar
	case BarLeft:
		x += bar
	}
	for _, c := range t.Participants(n) {
		if !c.Hidden {
			t.SetPosition(c.Handle(), x, y)
		}
	}
	t.SetFloatingPosition(n)
}

// --- State changes ---------------------------------------------------------

func (e *Expander) maxSize(c *frame.Node) int {
	if e.axis() == Vertical {
		return c.MaxHeight
	}
	return c.MaxWidth
}

func (e *Expander) setMaxSize(c *frame.Node, m int) {
	if e.axis() == Vertical {
		c.MaxHeight = m
	} else {
		c.MaxWidth = m
	}
}

// restore resets the child's max size after an animation.
func (e *Expander) restore(c *frame.Node) {
	if e.saved && c != nil {
		e.setMaxSize(c, e.savedMax)
	}
	e.saved = false
}

// applyFrame restricts the child's max size according to the current frame.
func (e *Expander) applyFrame(c *frame.Node) {
	e.setMaxSize(c, e.fullSize*e.frame/e.NumFrames)
}

// SetState sets the state without animation. It does not run a layout pass.
func (e *Expander) SetState(t *frame.Tree, h frame.Handle, open bool) {
	e.restore(t.Child(h, 0))
	e.running = false
	e.gen++
	if open {
		e.state = Open
	} else {
		e.state = Closed
	}
}

// Open opens the expander at h and lays out the tree.
func (e *Expander) Open(t *frame.Tree, h frame.Handle) error {
	return e.change(t, h, true)
}

// Close closes the expander at h and lays out the tree.
func (e *Expander) Close(t *frame.Tree, h frame.Handle) error {
	return e.change(t, h, false)
}

// Toggle opens a closed (or closing) expander and closes an open one.
func (e *Expander) Toggle(t *frame.Tree, h frame.Handle) error {
	return e.change(t, h, e.state == Closed || e.state == Closing)
}

func (e *Expander) change(t *frame.Tree, h frame.Handle, open bool) error {
	if t.Node(h) == nil {
		return core.Error(core.EINVALID, "no node with handle %d", h)
	}
	c := t.Child(h, 0)
	if c == nil || !e.Animation || e.NumFrames <= 0 {
		e.SetState(t, h, open)
		return relayout(t, h)
	}
	switch {
	case open && (e.state == Open || e.state == Opening):
		return nil
	case !open && (e.state == Closed || e.state == Closing):
		return nil
	}
	if !e.saved {
		e.savedMax = e.maxSize(c)
		e.saved = true
		t.ComputeNaturalSize(c.Handle())
		e.fullSize, _ = e.axis().natural(c)
		if open {
			e.frame = 0
		} else {
			e.frame = e.NumFrames
		}
	}
	if open {
		e.state = Opening
	} else {
		e.state = Closing
	}
	tracer().Debugf("expander %d is %v, frame %d/%d", h, e.state, e.frame, e.NumFrames)
	e.applyFrame(c)
	if e.Scheduler != nil && !e.running {
		e.running = true
		gen := e.gen
		e.Scheduler.Schedule(e.FrameTime, func() bool {
			if gen != e.gen {
				return false
			}
			more, err := e.Tick(t, h)
			return more && err == nil
		})
	}
	return relayout(t, h)
}

// Tick advances an animation by one frame and lays out the tree. It returns
// true while the animation is still in progress.
func (e *Expander) Tick(t *frame.Tree, h frame.Handle) (bool, error) {
	c := t.Child(h, 0)
	if c == nil {
		e.running = false
		return false, nil
	}
	switch e.state {
	case Opening:
		e.frame++
		if e.frame >= e.NumFrames {
			e.state = Open
		}
	case Closing:
		e.frame--
		if e.frame <= 0 {
			e.state = Closed
		}
	default:
		e.running = false
		return false, nil
	}
	more := e.state == Opening || e.state == Closing
	if more {
		e.applyFrame(c)
	} else {
		e.restore(c)
		e.running = false
	}
	return more, relayout(t, h)
}

// Stop cancels a running animation, moving to its final state. It is safe to
// call at any time between ticks.
func (e *Expander) Stop(t *frame.Tree, h frame.Handle) error {
	switch e.state {
	case Opening:
		e.state = Open
	case Closing:
		e.state = Closed
	default:
		e.running = false
		return nil
	}
	e.restore(t.Child(h, 0))
	e.running = false
	e.gen++
	return relayout(t, h)
}

// Frame returns the current animation frame.
func (e *Expander) Frame() int {
	return e.frame
}
