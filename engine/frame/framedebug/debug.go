package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/widgetbox/engine/frame"
)

// tracer traces with key 'widgetbox.frame'.
func tracer() tracing.Trace {
	return tracing.Select("widgetbox.frame")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz creates a graphical representation of a layout tree, starting at
// root. It produces a DOT file format suitable as input for Graphviz, given a
// Writer. Every node is labeled with its kind and its geometry of the last
// layout pass.
func ToGraphViz(t *frame.Tree, root frame.Handle, w io.Writer) error {
	header, err := template.New("layoutTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"label": label,
			"fill":  fillColor,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	t.Walk(root, func(n *frame.Node) bool {
		if err != nil {
			return false
		}
		tracer().Debugf("dot: node = %v", n)
		if err = gparams.NodeTmpl.Execute(w, n); err != nil {
			return false
		}
		for _, ch := range t.Children(n.Handle()) {
			e := cedge{From: n.Handle(), To: ch}
			if err = gparams.EdgeTmpl.Execute(w, e); err != nil {
				return false
			}
		}
		return true
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type cedge struct {
	From, To frame.Handle
}

func label(n *frame.Node) string {
	s := fmt.Sprintf("%s %s\\n%dx%d @ %d,%d", n.Kind(), n.Name,
		n.CurrentWidth, n.CurrentHeight, n.X, n.Y)
	if n.Hidden {
		s += "\\n(hidden)"
	}
	return "\"" + strings.ReplaceAll(s, "\"", "'") + "\""
}

func fillColor(n *frame.Node) string {
	switch {
	case n.Hidden:
		return "grey90"
	case n.IsContainer():
		return "lightblue3"
	}
	return "grey95"
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `node{{ printf "%05d" .Handle }}	[ label={{ label . }} shape=box style=filled fillcolor={{ fill . }} ] ;
`

const edgeTmpl = `node{{ printf "%05d" .From }} -> node{{ printf "%05d" .To }} [weight=1] ;
`
