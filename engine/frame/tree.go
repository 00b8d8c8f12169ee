package frame

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/widgetbox/core"
)

// Policy is the layout rule of one container kind.
//
// ComputeNaturalSize returns the container's natural size and the union of its
// participating children's expand flags. It must call Tree.ComputeNaturalSize
// for every child before reading the child's natural size.
// SetChildrenCurrentSize distributes n's current size to the children.
// SetChildrenPosition places the children, given n's absolute position.
type Policy interface {
	Kind() Kind
	ComputeNaturalSize(t *Tree, n *Node) (w, h int, childrenExpand Expand)
	SetChildrenCurrentSize(t *Tree, n *Node, shrink bool)
	SetChildrenPosition(t *Tree, n *Node, x, y int)
}

// ChildLimiter is implemented by policies accepting a limited number of children.
type ChildLimiter interface {
	MaxChildren() int
}

// LeafSizer lets a leaf compute its natural size and expand flags
// depending on its context, e.g. a filler inside a box.
type LeafSizer interface {
	NaturalSize(t *Tree, n *Node) (w, h int, expand Expand)
}

// Metrics is the platform oracle for font and decoration metrics.
type Metrics interface {
	CharSize(n *Node) (w, h int)
	DecorationSize(n *Node) (w, h int)
	DecorationOffset(n *Node) (dx, dy int)
}

// NativeFactory creates backend widgets for nodes.
type NativeFactory interface {
	CreateNativeHandle(kind Kind) (NativeHandle, error)
}

// Tree is an arena of layout nodes.
//
// A tree is not safe for concurrent use; all access is expected to happen
// from the UI thread.
type Tree struct {
	nodes   []*Node
	free    []Handle
	metrics Metrics
	factory NativeFactory
	Shrink  bool // allow containers to be smaller than their natural size
	inPass  bool
}

// NewTree creates an empty tree using the given platform metrics.
func NewTree(metrics Metrics) *Tree {
	if metrics == nil {
		metrics = zeroMetrics{}
	}
	return &Tree{
		nodes:   make([]*Node, 0, 64),
		metrics: metrics,
	}
}

// SetNativeFactory sets the backend used by Realize.
func (t *Tree) SetNativeFactory(f NativeFactory) {
	t.factory = f
}

// Metrics returns the platform metrics of the tree.
func (t *Tree) Metrics() Metrics {
	return t.metrics
}

func (t *Tree) alloc(name string, kind Kind) *Node {
	var h Handle
	if len(t.free) > 0 {
		h = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
	} else {
		h = Handle(len(t.nodes))
		t.nodes = append(t.nodes, nil)
	}
	n := newNode(h, name, kind)
	t.nodes[h] = n
	return n
}

// NewLeaf creates a native control with intrinsic size w×h.
func (t *Tree) NewLeaf(name string, w, h int) Handle {
	n := t.alloc(name, KindLeaf)
	n.ContentWidth, n.ContentHeight = w, h
	return n.self
}

// NewSizedLeaf creates a leaf whose natural size is computed by a LeafSizer.
func (t *Tree) NewSizedLeaf(name string, kind Kind, sizer LeafSizer) Handle {
	n := t.alloc(name, kind)
	n.sizer = sizer
	return n.self
}

// NewContainer creates a container node. Containers expand by default.
func (t *Tree) NewContainer(name string, policy Policy) Handle {
	n := t.alloc(name, policy.Kind())
	n.policy = policy
	n.ExpandRequest = ExpandBoth
	return n.self
}

// Node returns the node for a handle, or nil if h is not valid.
func (t *Tree) Node(h Handle) *Node {
	if h < 0 || int(h) >= len(t.nodes) {
		return nil
	}
	return t.nodes[h]
}

func (t *Tree) mustNode(h Handle, op string) (*Node, error) {
	n := t.Node(h)
	if n == nil {
		return nil, rejected(core.EINVALID, "%s: no node with handle %d", op, h)
	}
	return n, nil
}

// rejected traces a refused tree operation and returns its error.
func rejected(code int, format string, v ...interface{}) error {
	err := core.Error(code, format, v...)
	tracer().Errorf("%v", err)
	return err
}

// Children returns the ordered child handles of h.
func (t *Tree) Children(h Handle) []Handle {
	n := t.Node(h)
	if n == nil {
		return nil
	}
	return n.children
}

// Child returns the i-th child of h, or nil.
func (t *Tree) Child(h Handle, i int) *Node {
	n := t.Node(h)
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return t.nodes[n.children[i]]
}

// Parent returns the parent node of h, or nil for roots.
func (t *Tree) Parent(h Handle) *Node {
	n := t.Node(h)
	if n == nil {
		return nil
	}
	return t.Node(n.parent)
}

// Root returns the top-most ancestor of h.
func (t *Tree) Root(h Handle) Handle {
	for n := t.Node(h); n != nil; n = t.Node(n.parent) {
		if n.parent == NoHandle {
			return n.self
		}
	}
	return NoHandle
}

// IsAncestor is true if a is an ancestor of (or equal to) h.
func (t *Tree) IsAncestor(a, h Handle) bool {
	for n := t.Node(h); n != nil; n = t.Node(n.parent) {
		if n.self == a {
			return true
		}
	}
	return false
}

// Append adds child as the last child of parent.
func (t *Tree) Append(parent, child Handle) error {
	return t.Insert(parent, child, -1)
}

// Insert adds child at position pos of parent's children; pos < 0 appends.
func (t *Tree) Insert(parent, child Handle, pos int) error {
	if t.inPass {
		return rejected(core.EINVALID, "cannot modify tree during layout pass")
	}
	p, err := t.mustNode(parent, "insert")
	if err != nil {
		return err
	}
	c, err := t.mustNode(child, "insert")
	if err != nil {
		return err
	}
	if p.policy == nil {
		return rejected(core.EINVALID, "%v is not a container", p)
	}
	if c.parent != NoHandle {
		return rejected(core.EINVALID, "%v already has a parent", c)
	}
	if t.IsAncestor(child, parent) {
		return rejected(core.EINVALID, "adding %v to %v would create a cycle", c, p)
	}
	if lim, ok := p.policy.(ChildLimiter); ok && len(p.children) >= lim.MaxChildren() {
		return rejected(core.ECHILDREN, "%v accepts at most %d children", p, lim.MaxChildren())
	}
	if pos < 0 || pos > len(p.children) {
		pos = len(p.children)
	}
	p.children = append(p.children, NoHandle)
	copy(p.children[pos+1:], p.children[pos:])
	p.children[pos] = child
	c.parent = parent
	tracer().Debugf("added %v to %v at #%d", c, p, pos)
	return nil
}

// Detach removes h from its parent. The subtree stays in the arena.
func (t *Tree) Detach(h Handle) error {
	if t.inPass {
		return rejected(core.EINVALID, "cannot modify tree during layout pass")
	}
	n, err := t.mustNode(h, "detach")
	if err != nil {
		return err
	}
	p := t.Node(n.parent)
	if p == nil {
		return nil
	}
	for i, ch := range p.children {
		if ch == h {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = NoHandle
	return nil
}

// Destroy detaches h and releases its whole subtree from the arena.
func (t *Tree) Destroy(h Handle) error {
	if err := t.Detach(h); err != nil {
		return err
	}
	var doomed []Handle
	t.Walk(h, func(n *Node) bool {
		doomed = append(doomed, n.self)
		return true
	})
	for _, d := range doomed {
		t.nodes[d] = nil
		t.free = append(t.free, d)
	}
	tracer().Debugf("destroyed %d nodes", len(doomed))
	return nil
}

// Walk visits the subtree at h in pre-order. If visit returns false, the
// children of that node are skipped.
func (t *Tree) Walk(h Handle, visit func(*Node) bool) {
	if t.Node(h) == nil {
		return
	}
	stack := arraystack.New()
	stack.Push(h)
	for !stack.Empty() {
		v, _ := stack.Pop()
		n := t.nodes[v.(Handle)]
		if !visit(n) {
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack.Push(n.children[i])
		}
	}
}

// Realize creates native handles for every node of the subtree at h which
// does not have one yet.
func (t *Tree) Realize(h Handle) error {
	if t.factory == nil {
		return rejected(core.EINVALID, "no native factory set")
	}
	var err error
	t.Walk(h, func(n *Node) bool {
		if err != nil {
			return false
		}
		if n.Native == 0 {
			n.Native, err = t.factory.CreateNativeHandle(n.kind)
			if err != nil {
				err = core.WrapError(err, core.EINTERNAL, "cannot create native widget for %v", n)
			}
		}
		return err == nil
	})
	return err
}

type zeroMetrics struct{}

func (zeroMetrics) CharSize(*Node) (int, int)         { return 0, 0 }
func (zeroMetrics) DecorationSize(*Node) (int, int)   { return 0, 0 }
func (zeroMetrics) DecorationOffset(*Node) (int, int) { return 0, 0 }
