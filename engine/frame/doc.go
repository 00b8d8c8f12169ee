/*
Package frame deals with layout frames of container widgets.

Laying out a dialog may be understood as the process of placing boxes within
larger boxes. The smallest type of box is a native control (a leaf); the
largest is the dialog itself. Every container kind implements a Policy which
knows how to size and position its children.

A layout pass has three phases:

  - natural size (bottom-up): every node reports its intrinsic size
  - current size (top-down): every container distributes its own size to its children
  - position (top-down): every container places its children

Nodes live in an arena (type Tree) and are referenced by Handle. Ownership
is strictly top-down; a node's parent is a back-reference for lookup only.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'widgetbox.frame'.
func tracer() tracing.Trace {
	return tracing.Select("widgetbox.frame")
}
