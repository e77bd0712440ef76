/*
Package framedebug draws box trees for debugging.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"github.com/npillmayer/flowbox/engine/style"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/f32"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// maxNodes guards against erroneous cycles.
const maxNodes = 4096

// ToGraphViz creates a graphical representation of a box tree, including the
// layout results of the nodes.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root *boxtree.Node, w io.Writer, tracer tracing.Trace) error {
	header := template.Must(template.New("boxTree").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"label": label,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err := header.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		dict := make(map[*boxtree.Node]string, 64)
		if err := boxes(root, w, dict, &gparams, tracer); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

func boxes(n *boxtree.Node, w io.Writer, dict map[*boxtree.Node]string, gparams *graphParamsType,
	tracer tracing.Trace) error {
	//
	gparams.cnt++
	if gparams.cnt > maxNodes {
		return nil
	}
	if err := box(n, w, dict, gparams); err != nil {
		return err
	}
	tracer.Debugf("node = %v", n)
	for i, child := range n.Children() {
		tracer.Debugf("  child[%d] = %v", i, child)
		if err := boxes(child, w, dict, gparams, tracer); err != nil {
			return err
		}
		if err := edge(n, child, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

func box(n *boxtree.Node, w io.Writer, dict map[*boxtree.Node]string, gparams *graphParamsType) error {
	return gparams.BoxTmpl.Execute(w, boxParams(n, nodeName(n, dict)))
}

func nodeName(n *boxtree.Node, dict map[*boxtree.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

// Helper structs
type pbox struct {
	N      *boxtree.Node
	Name   string
	Fill   string
	Border string
}

type cedge struct {
	N1, N2 string
}

func edge(n1, n2 *boxtree.Node, w io.Writer, dict map[*boxtree.Node]string,
	gparams *graphParamsType) error {
	//
	e := cedge{nodeName(n1, dict), nodeName(n2, dict)}
	return gparams.EdgeTmpl.Execute(w, e)
}

// boxParams colors nodes by pseudo-state. Nodes with rounded corners get a
// double border.
func boxParams(n *boxtree.Node, name string) *pbox {
	b := &pbox{N: n, Name: name, Fill: "fillcolor=lightblue3"}
	if n.State&style.Active != 0 {
		b.Fill = "fillcolor=salmon"
	} else if n.State&style.Hover != 0 {
		b.Fill = "fillcolor=lightgoldenrod"
	}
	for _, r := range n.Result.BorderRadius {
		if r > 0 {
			b.Border = "peripheries=2"
			break
		}
	}
	return b
}

// ---------------------------------------------------------------------------

// label returns a quoted DOT label for a node: its ID, the flow of its
// children, its layout rectangle and its corner radius, if any.
func label(n *boxtree.Node) string {
	if n == nil {
		return `"<empty node>"`
	}
	_, _, flow := n.Effective()
	id := strings.ReplaceAll(n.String(), `"`, `\"`)
	s := id
	if n.ChildCount() > 0 {
		s += " " + flow.Symbol()
	}
	s = fmt.Sprintf(`%s\n%v`, s, n.Result.Rect)
	if r := n.Result.BorderRadius; r != (f32.Vec4{}) {
		s += fmt.Sprintf(`\nr=%g %g %g %g`, r[0], r[1], r[2], r[3])
	}
	return `"` + s + `"`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const boxTmpl = `{{ .Name }}	[ label={{ label .N }} shape=box style=filled {{ .Fill }} {{ .Border }}] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
