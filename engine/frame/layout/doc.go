/*
Package layout implements the layout policies of container widgets.

Overview

Every container kind has a policy type implementing frame.Policy:

  - Box: Hbox and Vbox, children in a row or a column
  - GridBox: children in a table of lines and columns
  - MultiBox: children flowing in lines (or columns), wrapping at the container's border
  - Split: two children separated by a draggable bar
  - Sbox: one child with a draggable bar at one side
  - Zbox and Tabs: children stacked on top of each other, one of them visible
  - Radio: one child; selects exactly one toggle among its descendants
  - Cbox: children at fixed positions
  - Frame: one child inside a decorated border
  - Expander: one child which may be collapsed, optionally animated

Policies hold the aggregate state of their container (gaps, margins, split value,
etc.), which persists across layout passes. Per-node configuration may be set
either through the typed fields of the policies or through SetAttribute, which
accepts the usual attribute names of dialog description languages.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'widgetbox.layout'.
func tracer() tracing.Trace {
	return tracing.Select("widgetbox.layout")
}
