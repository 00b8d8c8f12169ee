/*
Package platform provides the services a layout engine consumes from a
native widget backend: font and decoration metrics, and the creation of
native widget handles.

Metrics are explicitly initialized and passed to a frame.Tree. Type Fixed
holds deterministic metrics, suitable for tests and for the command line
tool; FromConfig reads them from an application configuration.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package platform

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'widgetbox.platform'.
func tracer() tracing.Trace {
	return tracing.Select("widgetbox.platform")
}
