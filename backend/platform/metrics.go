package platform

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// Fixed is a set of metrics which do not depend on fonts or themes.
type Fixed struct {
	CharWidth   int // average character width
	CharHeight  int // line height
	FrameBorder int // border of a frame on each side
	FrameTitle  int // extra height of a frame with a title
	TabsHeader  int // height of a row of tab headers
	TabsBorder  int // border of a tabs container on each side
}

var _ frame.Metrics = Fixed{}

// Default returns metrics resembling a typical desktop theme.
func Default() Fixed {
	return Fixed{
		CharWidth:   8,
		CharHeight:  16,
		FrameBorder: 2,
		FrameTitle:  12,
		TabsHeader:  24,
		TabsBorder:  1,
	}
}

// CharSize is part of interface frame.Metrics.
func (m Fixed) CharSize(*frame.Node) (int, int) {
	return m.CharWidth, m.CharHeight
}

// DecorationSize is part of interface frame.Metrics.
//
// Frames and tabs have a border at each side; frames with a title and tabs
// have additional room at the top.
func (m Fixed) DecorationSize(n *frame.Node) (int, int) {
	switch n.Kind() {
	case frame.KindFrame:
		w, h := 2*m.FrameBorder, 2*m.FrameBorder
		if n.Title != "" {
			h += m.FrameTitle
		}
		return w, h
	case frame.KindTabs:
		return 2 * m.TabsBorder, 2*m.TabsBorder + m.TabsHeader
	}
	return 0, 0
}

// DecorationOffset is part of interface frame.Metrics.
func (m Fixed) DecorationOffset(n *frame.Node) (int, int) {
	switch n.Kind() {
	case frame.KindFrame:
		if n.Title != "" {
			return m.FrameBorder, m.FrameBorder + m.FrameTitle
		}
		return m.FrameBorder, m.FrameBorder
	case frame.KindTabs:
		return m.TabsBorder, m.TabsBorder + m.TabsHeader
	}
	return 0, 0
}

// Configuration keys read by FromConfig.
const (
	KeyCharWidth   = "metrics.charwidth"
	KeyCharHeight  = "metrics.charheight"
	KeyFrameBorder = "metrics.frame.border"
	KeyFrameTitle  = "metrics.frame.title"
	KeyTabsHeader  = "metrics.tabs.header"
	KeyTabsBorder  = "metrics.tabs.border"
)

// FromConfig reads metrics from a configuration. Keys which are not set take
// their values from Default.
func FromConfig(conf schuko.Configuration) Fixed {
	m := Default()
	if conf == nil {
		return m
	}
	read := func(key string, v *int) {
		if conf.IsSet(key) {
			if n := conf.GetInt(key); n >= 0 {
				*v = n
			} else {
				tracer().Errorf("ignoring negative value for %s", key)
			}
		}
	}
	read(KeyCharWidth, &m.CharWidth)
	read(KeyCharHeight, &m.CharHeight)
	read(KeyFrameBorder, &m.FrameBorder)
	read(KeyFrameTitle, &m.FrameTitle)
	read(KeyTabsHeader, &m.TabsHeader)
	read(KeyTabsBorder, &m.TabsBorder)
	tracer().Debugf("platform metrics: %+v", m)
	return m
}
