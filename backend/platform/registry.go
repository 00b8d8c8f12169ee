package platform

import (
	"sync"

	"github.com/npillmayer/widgetbox/core"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// Registry is a type for holding information about native widgets created
// for layout nodes. It hands out handles and remembers the kind of widget
// each handle stands for.
//
// A registry is safe for concurrent use, even though layout itself happens
// on a single thread.
type Registry struct {
	sync.Mutex
	next    frame.NativeHandle
	widgets map[frame.NativeHandle]frame.Kind
	limit   int // maximum number of widgets, 0 = unlimited
}

var _ frame.NativeFactory = (*Registry)(nil)

// NewRegistry creates a registry holding at most limit widgets (0 = unlimited).
func NewRegistry(limit int) *Registry {
	return &Registry{
		widgets: make(map[frame.NativeHandle]frame.Kind),
		limit:   limit,
	}
}

// CreateNativeHandle is part of interface frame.NativeFactory.
func (r *Registry) CreateNativeHandle(kind frame.Kind) (frame.NativeHandle, error) {
	r.Lock()
	defer r.Unlock()
	if r.limit > 0 && len(r.widgets) >= r.limit {
		tracer().Errorf("registry cannot create %v widget: limit of %d reached", kind, r.limit)
		return 0, core.Error(core.EINTERNAL, "native widget limit of %d reached", r.limit)
	}
	r.next++
	r.widgets[r.next] = kind
	tracer().Debugf("registry created %v widget #%d", kind, r.next)
	return r.next, nil
}

// Kind returns the kind of a native widget.
func (r *Registry) Kind(h frame.NativeHandle) (frame.Kind, bool) {
	r.Lock()
	defer r.Unlock()
	k, ok := r.widgets[h]
	return k, ok
}

// Release forgets a native widget.
func (r *Registry) Release(h frame.NativeHandle) {
	r.Lock()
	defer r.Unlock()
	delete(r.widgets, h)
}

// Len returns the number of live widgets.
func (r *Registry) Len() int {
	r.Lock()
	defer r.Unlock()
	return len(r.widgets)
}
