package layout

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/widgetbox/core"
	"github.com/npillmayer/widgetbox/core/dimen"
	"github.com/npillmayer/widgetbox/core/permille"
	"github.com/npillmayer/widgetbox/engine/frame"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Attributes are a string-keyed surface over the typed configuration of nodes
// and policies. Names and values are case-insensitive. Size values use the
// notation "WxH", where either component may be missing; malformed sizes are
// tolerated and read as 0.

// attributeHolder is implemented by policies with attributes of their own.
type attributeHolder interface {
	setAttribute(t *frame.Tree, n *frame.Node, name, value string) (bool, error)
	attribute(t *frame.Tree, n *frame.Node, name string) (string, bool)
}

func fold(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}

// SetAttribute sets attribute name of node h to value.
// It does not run a layout pass.
func SetAttribute(t *frame.Tree, h frame.Handle, name, value string) error {
	n := t.Node(h)
	if n == nil {
		return core.Error(core.EINVALID, "no node with handle %d", h)
	}
	name = fold(name)
	if name == "TITLE" {
		n.Title = value
		return nil
	}
	value = fold(value)
	tracer().Debugf("set %s=%q for %v", name, value, n)
	if ok, err := setNodeAttribute(t, n, name, value); ok {
		return err
	}
	if holder, ok := n.Policy().(attributeHolder); ok {
		if ok, err := holder.setAttribute(t, n, name, value); ok {
			return err
		}
	}
	return core.Error(core.EMISSING, "%v has no attribute %s", n, name)
}

// Attribute returns the value of attribute name of node h.
func Attribute(t *frame.Tree, h frame.Handle, name string) (string, error) {
	n := t.Node(h)
	if n == nil {
		return "", core.Error(core.EINVALID, "no node with handle %d", h)
	}
	name = fold(name)
	if v, ok := nodeAttribute(t, n, name); ok {
		return v, nil
	}
	if holder, ok := n.Policy().(attributeHolder); ok {
		if v, ok := holder.attribute(t, n, name); ok {
			return v, nil
		}
	}
	return "", core.Error(core.EMISSING, "%v has no attribute %s", n, name)
}

func invalid(name, value string) error {
	return core.Error(core.EINVALID, "invalid value %q for attribute %s", value, name)
}

// --- Value parsing ---------------------------------------------------------

func parseBool(s string) (bool, bool) {
	switch s {
	case "YES", "ON", "TRUE", "1":
		return true, true
	case "NO", "OFF", "FALSE", "0":
		return false, true
	}
	return false, false
}

func formatBool(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func parseExpand(s string) (frame.Expand, bool) {
	switch s {
	case "YES":
		return frame.ExpandBoth, true
	case "NO":
		return frame.ExpandNone, true
	case "HORIZONTAL":
		return frame.ExpandWidth, true
	case "VERTICAL":
		return frame.ExpandHeight, true
	case "HORIZONTALFREE":
		return frame.ExpandWidthFree, true
	case "VERTICALFREE":
		return frame.ExpandHeightFree, true
	case "YESFREE":
		return frame.ExpandBothFree, true
	}
	return frame.ExpandNone, false
}

func formatExpand(e frame.Expand) string {
	s := e.String()
	switch {
	case e&frame.ExpandBothFree == frame.ExpandBothFree:
		return "YESFREE"
	case e == frame.ExpandWidthFree:
		return "HORIZONTALFREE"
	case e == frame.ExpandHeightFree:
		return "VERTICALFREE"
	}
	return s
}

func parseFloating(s string) (frame.FloatMode, bool) {
	switch s {
	case "NO":
		return frame.FloatNone, true
	case "IGNORE":
		return frame.FloatIgnore, true
	case "YES":
		return frame.FloatYes, true
	}
	return frame.FloatNone, false
}

func formatSize(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

func parseInt(name, value string) (int, error) {
	v, ok := dimen.ParseInt(value)
	if !ok {
		return 0, invalid(name, value)
	}
	return v, nil
}

// parseDimen parses a pixel or character-unit value. Malformed values read as 0.
func parseDimen(value string) int {
	v, _ := dimen.ParseInt(value)
	return dimen.ClampLow(v)
}

func parseHandle(name, value string) (frame.Handle, error) {
	v, err := parseInt(name, value)
	return frame.Handle(v), err
}

// parseCharMargin parses a margin "HxV" in character units.
func parseCharMargin(t *frame.Tree, n *frame.Node, value string) (int, int) {
	cw, ch := t.Metrics().CharSize(n)
	h, v := dimen.ParseMargin(value)
	return dimen.HorizToRaster(h, cw), dimen.VertToRaster(v, ch)
}

// --- Node attributes -------------------------------------------------------

func setNodeAttribute(t *frame.Tree, n *frame.Node, name, value string) (bool, error) {
	switch name {
	case "RASTERSIZE":
		s, _, _ := dimen.ParseSize(value)
		n.UserWidth, n.UserHeight = s.W, s.H
	case "SIZE":
		s, _, _ := dimen.ParseSize(value)
		cw, ch := t.Metrics().CharSize(n)
		n.UserWidth, n.UserHeight = dimen.HorizToRaster(s.W, cw), dimen.VertToRaster(s.H, ch)
	case "MINSIZE":
		s, _, _ := dimen.ParseSize(value)
		n.MinWidth, n.MinHeight = s.W, s.H
	case "MAXSIZE":
		s, okW, okH := dimen.ParseSize(value)
		n.MaxWidth, n.MaxHeight = dimen.MaxSize, dimen.MaxSize
		if okW {
			n.MaxWidth = s.W
		}
		if okH {
			n.MaxHeight = s.H
		}
	case "EXPAND":
		e, ok := parseExpand(value)
		if !ok {
			return true, invalid(name, value)
		}
		n.ExpandRequest = e
	case "EXPANDWEIGHT":
		w, ok := dimen.ParseFloat(value)
		if !ok || w < 0 {
			return true, invalid(name, value)
		}
		n.Weight = w
	case "FLOATING":
		f, ok := parseFloating(value)
		if !ok {
			return true, invalid(name, value)
		}
		n.Float = f
	case "CX", "CY":
		v, err := parseInt(name, value)
		if err != nil {
			return true, err
		}
		if name == "CX" {
			n.CX = v
		} else {
			n.CY = v
		}
	case "LINEBREAK", "COLUMNBREAK":
		b, ok := parseBool(value)
		if !ok {
			return true, invalid(name, value)
		}
		if name == "LINEBREAK" {
			n.LineBreak = b
		} else {
			n.ColumnBreak = b
		}
	case "SHRINK":
		b, ok := parseBool(value)
		if !ok {
			return true, invalid(name, value)
		}
		t.Shrink = b
	default:
		return false, nil
	}
	return true, nil
}

func nodeAttribute(t *frame.Tree, n *frame.Node, name string) (string, bool) {
	switch name {
	case "TITLE":
		return n.Title, true
	case "RASTERSIZE":
		return formatSize(n.UserWidth, n.UserHeight), true
	case "SIZE":
		cw, ch := t.Metrics().CharSize(n)
		return formatSize(dimen.RasterToHoriz(n.UserWidth, cw), dimen.RasterToVert(n.UserHeight, ch)), true
	case "MINSIZE":
		return formatSize(n.MinWidth, n.MinHeight), true
	case "MAXSIZE":
		return formatSize(n.MaxWidth, n.MaxHeight), true
	case "NATURALSIZE":
		return formatSize(n.NaturalWidth, n.NaturalHeight), true
	case "CURRENTSIZE":
		return formatSize(n.CurrentWidth, n.CurrentHeight), true
	case "POSITION":
		return fmt.Sprintf("%d,%d", n.X, n.Y), true
	case "EXPAND":
		return formatExpand(n.ExpandRequest), true
	case "EXPANDWEIGHT":
		return strconv.FormatFloat(n.Weight, 'f', -1, 64), true
	case "FLOATING":
		return n.Float.String(), true
	case "CX":
		return strconv.Itoa(n.CX), true
	case "CY":
		return strconv.Itoa(n.CY), true
	case "LINEBREAK":
		return formatBool(n.LineBreak), true
	case "COLUMNBREAK":
		return formatBool(n.ColumnBreak), true
	case "SHRINK":
		return formatBool(t.Shrink), true
	}
	return "", false
}

// --- Box -------------------------------------------------------------------

func (b *Box) setAttribute(t *frame.Tree, n *frame.Node, name, value string) (bool, error) {
	switch name {
	case "GAP":
		b.Gap = parseDimen(value)
	case "CGAP":
		cw, ch := t.Metrics().CharSize(n)
		if b.Orientation == Vertical {
			b.Gap = dimen.VertToRaster(parseDimen(value), ch)
		} else {
			b.Gap = dimen.HorizToRaster(parseDimen(value), cw)
		}
	case "MARGIN", "NMARGIN":
		b.MarginH, b.MarginV = dimen.ParseMargin(value)
	case "CMARGIN", "NCMARGIN":
		b.MarginH, b.MarginV = parseCharMargin(t, n, value)
	case "HOMOGENEOUS":
		v, ok := parseBool(value)
		if !ok {
			return true, invalid(name, value)
		}
		b.Homogeneous = v
	case "EXPANDCHILDREN":
		v, ok := parseBool(value)
		if !ok {
			return true, invalid(name, value)
		}
		b.ExpandChildren = v
	case "ALIGNMENT":
		a, ok := parseAlignment(value)
		if !ok {
			return true, invalid(name, value)
		}
		b.Alignment = a
	case "NORMALIZESIZE":
		nz, ok := parseNormalize(value)
		if !ok {
			return true, invalid(name, value)
		}
		b.Normalize = nz
	default:
		return false, nil
	}
	return true, nil
}

func (b *Box) attribute(t *frame.Tree, n *frame.Node, name string) (string, bool) {
	switch name {
	case "GAP":
		return strconv.Itoa(b.Gap), true
	case "CGAP":
		cw, ch := t.Metrics().CharSize(n)
		if b.Orientation == Vertical {
			return strconv.Itoa(dimen.RasterToVert(b.Gap, ch)), true
		}
		return strconv.Itoa(dimen.RasterToHoriz(b.Gap, cw)), true
	case "MARGIN", "NMARGIN":
		return formatSize(b.MarginH, b.MarginV), true
	case "CMARGIN", "NCMARGIN":
		cw, ch := t.Metrics().CharSize(n)
		return formatSize(dimen.RasterToHoriz(b.MarginH, cw), dimen.RasterToVert(b.MarginV, ch)), true
	case "HOMOGENEOUS":
		return formatBool(b.Homogeneous), true
	case "EXPANDCHILDREN":
		return formatBool(b.ExpandChildren), true
	case "ALIGNMENT":
		return b.Alignment.name(b.Orientation.cross()), true
	case "NORMALIZESIZE":
		return b.Normalize.String(), true
	case "ORIENTATION":
		return b.Orientation.String(), true
	}
	return "", false
}

// cross returns the orthogonal orientation.
func (o Orientation) cross() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// --- GridBox ---------------------------------------------------------------

func (g *GridBox) setAttribute(t *frame.Tree, n *frame.Node, name, value string) (bool, error) {
	cw, ch := t.Metrics().CharSize(n)
	switch name {
	case "NUMDIV":
		if value == "AUTO" {
			g.NumDiv = NumDivAuto
			return true, nil
		}
		v, err := parseInt(name, value)
		if err != nil {
			return true, err
		}
		if v < 1 {
			v = 1
		}
		g.NumDiv = v
	case "ORIENTATION":
		o, ok := parseOrientation(value)
		if !ok {
			return true, invalid(name, value)
		}
		g.Orientation = o
	case "SIZELIN", "SIZECOL":
		v, err := parseInt(name, value)
		if err != nil {
			return true, err
		}
		if v < -1 {
			v = -1
		}
		if name == "SIZELIN" {
			g.SizeLin = v
		} else {
			g.SizeCol = v
		}
	case "GAPLIN":
		g.GapLin = parseDimen(value)
	case "GAPCOL":
		g.GapCol = parseDimen(value)
	case "CGAPLIN":
		g.GapLin = dimen.VertToRaster(parseDimen(value), ch)
	case "CGAPCOL":
		g.GapCol = dimen.HorizToRaster(parseDimen(value), cw)
	case "MARGIN", "NMARGIN":
		g.MarginH, g.MarginV = dimen.ParseMargin(value)
	case "CMARGIN", "NCMARGIN":
		g.MarginH, g.MarginV = parseCharMargin(t, n, value)
	case "HOMOGENEOUSLIN", "HOMOGENEOUSCOL":
		v, ok := parseBool(value)
		if !ok {
			return true, invalid(name, value)
		}
		if name == "HOMOGENEOUSLIN" {
			g.HomogeneousLin = v
		} else {
			g.HomogeneousCol = v
		}
	case "NORMALIZESIZE":
		nz, ok := parseNormalize(value)
		if !ok {
			return true, invalid(name, value)
		}
		g.Normalize = nz
	default:
		return g.setAlignmentAttribute(name, value)
	}
	return true, nil
}

// setAlignmentAttribute handles ALIGNMENTLIN, ALIGNMENTCOL and their
// per-index variants ALIGNMENTLINn, ALIGNMENTCOLn.
func (g *GridBox) setAlignmentAttribute(name, value string) (bool, error) {
	var lin bool
	var suffix string
	switch {
	case strings.HasPrefix(name, "ALIGNMENTLIN"):
		lin, suffix = true, strings.TrimPrefix(name, "ALIGNMENTLIN")
	case strings.HasPrefix(name, "ALIGNMENTCOL"):
		suffix = strings.TrimPrefix(name, "ALIGNMENTCOL")
	default:
		return false, nil
	}
	a, ok := parseAlignment(value)
	if !ok {
		return true, invalid(name, value)
	}
	if suffix == "" {
		if lin {
			g.AlignmentLin = a
		} else {
			g.AlignmentCol = a
		}
		return true, nil
	}
	i, ok := dimen.ParseInt(suffix)
	if !ok || i < 0 {
		return false, nil
	}
	if lin {
		g.SetLineAlignment(i, a)
	} else {
		g.SetColumnAlignment(i, a)
	}
	return true, nil
}

func (g *GridBox) attribute(t *frame.Tree, n *frame.Node, name string) (string, bool) {
	switch name {
	case "NUMDIV":
		if g.NumDiv == NumDivAuto {
			return "AUTO", true
		}
		return strconv.Itoa(g.NumDiv), true
	case "NUMLIN":
		return strconv.Itoa(g.numLin), true
	case "NUMCOL":
		return strconv.Itoa(g.numCol), true
	case "ORIENTATION":
		return g.Orientation.String(), true
	case "SIZELIN":
		return strconv.Itoa(g.SizeLin), true
	case "SIZECOL":
		return strconv.Itoa(g.SizeCol), true
	case "GAPLIN":
		return strconv.Itoa(g.GapLin), true
	case "GAPCOL":
		return strconv.Itoa(g.GapCol), true
	case "MARGIN", "NMARGIN":
		return formatSize(g.MarginH, g.MarginV), true
	case "HOMOGENEOUSLIN":
		return formatBool(g.HomogeneousLin), true
	case "HOMOGENEOUSCOL":
		return formatBool(g.HomogeneousCol), true
	case "NORMALIZESIZE":
		return g.Normalize.String(), true
	case "ALIGNMENTLIN":
		return g.AlignmentLin.name(Vertical), true
	case "ALIGNMENTCOL":
		return g.AlignmentCol.name(Horizontal), true
	}
	if s := strings.TrimPrefix(name, "ALIGNMENTLIN"); s != name {
		if i, ok := dimen.ParseInt(s); ok {
			return g.LineAlignment(i).name(Vertical), true
		}
	}
	if s := strings.TrimPrefix(name, "ALIGNMENTCOL"); s != name {
		if i, ok := dimen.ParseInt(s); ok {
			return g.ColumnAlignment(i).name(Horizontal), true
		}
	}
	return "", false
}

// --- MultiBox --------------------------------------------------------------

func (mb *MultiBox) setAttribute(t *frame.Tree, n *frame.Node, name, value string) (bool, error) {
	cw, ch := t.Metrics().CharSize(n)
	switch name {
	case "ORIENTATION":
		o, ok := parseOrientation(value)
		if !ok {
			return true, invalid(name, value)
		}
		mb.Orientation = o
	case "GAPLIN":
		mb.GapLin = parseDimen(value)
	case "GAPCOL":
		mb.GapCol = parseDimen(value)
	case "CGAPLIN":
		mb.GapLin = dimen.VertToRaster(parseDimen(value), ch)
	case "CGAPCOL":
		mb.GapCol = dimen.HorizToRaster(parseDimen(value), cw)
	case "MARGIN", "NMARGIN":
		mb.MarginH, mb.MarginV = dimen.ParseMargin(value)
	case "CMARGIN", "NCMARGIN":
		mb.MarginH, mb.MarginV = parseCharMargin(t, n, value)
	default:
		return false, nil
	}
	return true, nil
}

func (mb *MultiBox) attribute(t *frame.Tree, n *frame.Node, name string) (string, bool) {
	switch name {
	case "ORIENTATION":
		return mb.Orientation.String(), true
	case "GAPLIN":
		return strconv.Itoa(mb.GapLin), true
	case "GAPCOL":
		return strconv.Itoa(mb.GapCol), true
	case "MARGIN", "NMARGIN":
		return formatSize(mb.MarginH, mb.MarginV), true
	case "NUMLIN":
		return strconv.Itoa(mb.numLin), true
	case "NUMCOL":
		return strconv.Itoa(mb.numCol), true
	}
	return "", false
}

// --- Split and Sbox --------------------------------------------------------

func (s *Split) setAttribute(t *frame.Tree, n *frame.Node, name, value string) (bool, error) {
	switch name {
	case "VALUE":
		v, err := permille.FromString(value)
		if err != nil {
			return true, invalid(name, value)
		}
		s.SetValue(v)
	case "MINMAX":
		lo, hi, okLo, okHi := dimen.ParseIntPair(value, ':')
		if !okLo || !okHi {
			return true, invalid(name, value)
		}
		s.SetMinMax(permille.FromInt(lo), permille.FromInt(hi))
	case "AUTOHIDE":
		v, ok := parseBool(value)
		if !ok {
			return true, invalid(name, value)
		}
		s.AutoHide = v
	case "LAYOUTDRAG":
		v, ok := parseBool(value)
		if !ok {
			return true, invalid(name, value)
		}
		s.LayoutDrag = v
	case "BARSIZE":
		s.BarSize = parseDimen(value)
	case "ORIENTATION":
		o, ok := parseOrientation(value)
		if !ok {
			return true, invalid(name, value)
		}
		s.Orientation = o
	default:
		return false, nil
	}
	return true, nil
}

func (s *Split) attribute(t *frame.Tree, n *frame.Node, name string) (string, bool) {
	switch name {
	case "VALUE":
		return s.Value.String(), true
	case "MINMAX":
		return fmt.Sprintf("%d:%d", s.Min, s.Max), true
	case "AUTOHIDE":
		return formatBool(s.AutoHide), true
	case "LAYOUTDRAG":
		return formatBool(s.LayoutDrag), true
	case "BARSIZE":
		return strconv.Itoa(s.BarSize), true
	case "ORIENTATION":
		return s.Orientation.String(), true
	}
	return "", false
}

func (sb *Sbox) setAttribute(t *frame.Tree, n *frame.Node, name, value string) (bool, error) {
	switch name {
	case "DIRECTION":
		d, ok := parseDirection(value)
		if !ok {
			return true, invalid(name, value)
		}
		sb.Direction = d
	case "BARSIZE":
		sb.BarSize = parseDimen(value)
	default:
		return false, nil
	}
	return true, nil
}

func (sb *Sbox) attribute(t *frame.Tree, n *frame.Node, name string) (string, bool) {
	switch name {
	case "DIRECTION":
		return sb.Direction.String(), true
	case "BARSIZE":
		return strconv.Itoa(sb.BarSize), true
	}
	return "", false
}

// --- Zbox, Tabs and Radio --------------------------------------------------

func (z *Zbox) setAttribute(t *frame.Tree, n *frame.Node, name, value string) (bool, error) {
	switch name {
	case "ALIGNMENT":
		a, ok := parseAlignment2D(value)
		if !ok {
			return true, invalid(name, value)
		}
		z.Alignment = a
	case "CHILDSIZEALL":
		v, ok := parseBool(value)
		if !ok {
			return true, invalid(name, value)
		}
		z.ChildSizeAll = v
	case "VALUEPOS":
		v, err := parseInt(name, value)
		if err != nil {
			return true, err
		}
		if v < 0 || v >= len(t.Participants(n)) {
			return true, core.Error(core.EINVALID, "%v has no child #%d", n, v)
		}
		z.Value = v
	case "VALUE_HANDLE":
		child, err := parseHandle(name, value)
		if err != nil {
			return true, err
		}
		return true, z.SetValueHandle(t, n.Handle(), child)
	default:
		return false, nil
	}
	return true, nil
}

func (z *Zbox) attribute(t *frame.Tree, n *frame.Node, name string) (string, bool) {
	switch name {
	case "ALIGNMENT":
		return z.Alignment.String(), true
	case "CHILDSIZEALL":
		return formatBool(z.ChildSizeAll), true
	case "VALUEPOS":
		return strconv.Itoa(z.active(t.Participants(n))), true
	case "VALUE_HANDLE":
		return strconv.Itoa(int(z.ValueHandle(t, n.Handle()))), true
	}
	return "", false
}

func (r *Radio) setAttribute(t *frame.Tree, n *frame.Node, name, value string) (bool, error) {
	if name != "VALUE_HANDLE" {
		return false, nil
	}
	toggle, err := parseHandle(name, value)
	if err != nil {
		return true, err
	}
	return true, r.SetValueHandle(t, n.Handle(), toggle)
}

func (r *Radio) attribute(t *frame.Tree, n *frame.Node, name string) (string, bool) {
	if name != "VALUE_HANDLE" {
		return "", false
	}
	return strconv.Itoa(int(r.ValueHandle(t, n.Handle()))), true
}

// --- Expander --------------------------------------------------------------

func (e *Expander) setAttribute(t *frame.Tree, n *frame.Node, name, value string) (bool, error) {
	switch name {
	case "STATE":
		switch value {
		case "OPEN":
			e.SetState(t, n.Handle(), true)
		case "CLOSE", "CLOSED":
			e.SetState(t, n.Handle(), false)
		default:
			return true, invalid(name, value)
		}
	case "BARPOSITION":
		p, ok := parseBarPosition(value)
		if !ok {
			return true, invalid(name, value)
		}
		e.BarPosition = p
	case "BARSIZE":
		v, err := parseInt(name, value)
		if err != nil {
			return true, err
		}
		if v < 0 {
			v = -1
		}
		e.BarSize = v
	case "ANIMATION":
		switch value {
		case "SLIDE", "YES":
			e.Animation = true
		case "NO":
			e.Animation = false
		default:
			return true, invalid(name, value)
		}
	case "NUMFRAMES":
		v, err := parseInt(name, value)
		if err != nil || v < 1 {
			return true, invalid(name, value)
		}
		e.NumFrames = v
	case "FRAMETIME":
		v, err := parseInt(name, value)
		if err != nil || v < 1 {
			return true, invalid(name, value)
		}
		e.FrameTime = time.Duration(v) * time.Millisecond
	default:
		return false, nil
	}
	return true, nil
}

func (e *Expander) attribute(t *frame.Tree, n *frame.Node, name string) (string, bool) {
	switch name {
	case "STATE":
		return e.state.String(), true
	case "BARPOSITION":
		return e.BarPosition.String(), true
	case "BARSIZE":
		return strconv.Itoa(e.barSize(t, n)), true
	case "ANIMATION":
		if e.Animation {
			return "SLIDE", true
		}
		return "NO", true
	case "NUMFRAMES":
		return strconv.Itoa(e.NumFrames), true
	case "FRAMETIME":
		return strconv.Itoa(int(e.FrameTime / time.Millisecond)), true
	}
	return "", false
}
