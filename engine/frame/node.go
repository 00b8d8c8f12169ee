package frame

import (
	"fmt"

	"github.com/npillmayer/widgetbox/core/dimen"
)

// Handle references a node within a Tree.
type Handle int32

// NoHandle is the null reference.
const NoHandle Handle = -1

// Kind is the type of a node. Container kinds are fixed at construction time.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindFill
	KindHbox
	KindVbox
	KindGridBox
	KindMultiBox
	KindSplit
	KindSbox
	KindZbox
	KindRadio
	KindCbox
	KindFrame
	KindExpander
	KindTabs
)

var kindNames = [...]string{"leaf", "fill", "hbox", "vbox", "gridbox", "multibox",
	"split", "sbox", "zbox", "radio", "cbox", "frame", "expander", "tabs"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// --- Expand flags ----------------------------------------------------------

// Expand is a bitset telling whether a node may grow horizontally or vertically.
//
// W0/H0 mark a node which grows because it contains a filler without
// explicit EXPAND; W1/H1 mark an explicit EXPAND request. Free bits let a
// container grow regardless of its children.
type Expand uint8

const (
	ExpandNone  Expand = 0x00
	ExpandW0    Expand = 0x01
	ExpandW1    Expand = 0x02
	ExpandWFree Expand = 0x04
	ExpandH0    Expand = 0x10
	ExpandH1    Expand = 0x20
	ExpandHFree Expand = 0x40

	ExpandWidth      = ExpandW0 | ExpandW1
	ExpandHeight     = ExpandH0 | ExpandH1
	ExpandBoth       = ExpandWidth | ExpandHeight
	ExpandWidthFree  = ExpandWidth | ExpandWFree
	ExpandHeightFree = ExpandHeight | ExpandHFree
	ExpandBothFree   = ExpandWidthFree | ExpandHeightFree
	expandFreeBits   = ExpandWFree | ExpandHFree
)

// Horizontal is true if any width-expansion bit is set.
func (e Expand) Horizontal() bool {
	return e&ExpandWidth != 0
}

// Vertical is true if any height-expansion bit is set.
func (e Expand) Vertical() bool {
	return e&ExpandHeight != 0
}

func (e Expand) String() string {
	switch {
	case e&ExpandBoth == ExpandBoth:
		return "YES"
	case e&ExpandWidth != 0 && e&ExpandHeight == 0:
		return "HORIZONTAL"
	case e&ExpandHeight != 0 && e&ExpandWidth == 0:
		return "VERTICAL"
	case e&ExpandWidth != 0 && e&ExpandHeight != 0:
		return "PARTIAL"
	}
	return "NO"
}

// containerExpand combines a container's configured flags with the flags
// collected from its children. Free bits pass regardless of children.
func containerExpand(own, children Expand) Expand {
	free := ExpandNone
	if own&ExpandWFree != 0 {
		free |= ExpandWidth
	}
	if own&ExpandHFree != 0 {
		free |= ExpandHeight
	}
	return own & (children | free) &^ expandFreeBits
}

// --- Floating --------------------------------------------------------------

// FloatMode controls the participation of a child in its parent's layout.
type FloatMode uint8

const (
	// FloatNone: the child participates normally.
	FloatNone FloatMode = iota
	// FloatIgnore: excluded from the parent's aggregates, but still laid out
	// at its own natural size and its own position.
	FloatIgnore
	// FloatYes: fully excluded, e.g. hidden or overlay children.
	FloatYes
)

func (f FloatMode) String() string {
	switch f {
	case FloatIgnore:
		return "IGNORE"
	case FloatYes:
		return "YES"
	}
	return "NO"
}

// --- Node ------------------------------------------------------------------

// NativeHandle is an opaque reference to a backend widget.
type NativeHandle uint64

// Node is an element of the layout tree: a leaf (native control) or a
// container, depending on its Policy.
type Node struct {
	Name string // for debugging
	// configuration
	UserWidth, UserHeight int    // explicit size, 0 = auto
	MinWidth, MinHeight   int    // MINSIZE
	MaxWidth, MaxHeight   int    // MAXSIZE, default dimen.MaxSize
	ContentWidth          int    // intrinsic size reported for leaves
	ContentHeight         int    //
	ExpandRequest         Expand // configured EXPAND
	Weight                float64 // EXPANDWEIGHT, default 1
	Float                 FloatMode
	Title                 string // used by decorated containers
	CX, CY                int    // position within a Cbox
	LineBreak             bool   // force a new line after this child (MultiBox)
	ColumnBreak           bool   // force a new column after this child (MultiBox)
	Toggle                bool   // participates in Radio selection
	// layout results, valid during/after the respective pass
	NaturalWidth, NaturalHeight int
	CurrentWidth, CurrentHeight int
	X, Y                        int
	Expand                      Expand // effective flags after the natural pass
	ChildrenExpand              Expand // union of participating children's flags
	// transient per-pass state
	BreakBefore bool // MultiBox: child starts a new line/column
	Hidden      bool // suppressed from the visible layout (Zbox, Tabs, Expander, Split)
	Selected    bool // Radio selection
	Native      NativeHandle
	//
	self     Handle
	kind     Kind
	policy   Policy
	sizer    LeafSizer
	parent   Handle
	children []Handle
}

func newNode(h Handle, name string, kind Kind) *Node {
	return &Node{
		Name:      name,
		MaxWidth:  dimen.MaxSize,
		MaxHeight: dimen.MaxSize,
		Weight:    1.0,
		self:      h,
		kind:      kind,
		parent:    NoHandle,
	}
}

// Handle returns the handle of this node within its tree.
func (n *Node) Handle() Handle {
	if n == nil {
		return NoHandle
	}
	return n.self
}

// Kind returns the type of the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Policy returns the layout policy of a container, or nil for leaves.
func (n *Node) Policy() Policy {
	return n.policy
}

// IsContainer is true for nodes with a layout policy.
func (n *Node) IsContainer() bool {
	return n.policy != nil
}

// Parent returns the back-reference to the parent node.
func (n *Node) Parent() Handle {
	return n.parent
}

// ChildCount returns the number of children, including floating ones.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Participates is true if the node takes part in its parent's aggregates.
func (n *Node) Participates() bool {
	return n.Float == FloatNone
}

// ApplyMinMax restricts (w,h) to the node's MINSIZE/MAXSIZE constraints.
// Results are never negative.
func (n *Node) ApplyMinMax(w, h int) (int, int) {
	w = dimen.Clamp(w, n.MinWidth, maxOrUnlimited(n.MaxWidth))
	h = dimen.Clamp(h, n.MinHeight, maxOrUnlimited(n.MaxHeight))
	return dimen.ClampLow(w), dimen.ClampLow(h)
}

func maxOrUnlimited(m int) int {
	if m < 0 {
		return dimen.MaxSize
	}
	return m
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s[%s#%d]", n.Name, n.kind, n.self)
}
