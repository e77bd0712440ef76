package framedebug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame"
	"github.com/npillmayer/flowbox/engine/frame/boxtree"
	"github.com/npillmayer/flowbox/engine/style"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.frame")
	defer teardown()
	//
	root := boxtree.NewNode("root")
	root.Flow = frame.Flow{Direction: frame.Row}
	a := root.AppendChild(boxtree.NewNode("a"))
	a.Info.Width = frame.MustAbsolute(30)
	a.Info.Height = frame.MustAbsolute(20)
	a.Info.BorderRadius = frame.UniformRadius(4)
	b := root.AppendChild(boxtree.NewNode("b"))
	b.State = style.Hover
	require.NoError(t, boxtree.Layout(root, dimen.R(0, 0, 100, 50), boxtree.DefaultConfig()))
	//
	var out bytes.Buffer
	err := ToGraphViz(root, &out, tracing.Select("flowbox.frame"))
	require.NoError(t, err)
	dot := out.String()
	t.Logf("\n%s", dot)
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `node00001	[ label="#root →\n[0,0 100x50]"`)
	assert.Contains(t, dot, `node00002	[ label="#a\n[0,15 30x20]\nr=4 4 4 4" shape=box style=filled fillcolor=lightblue3 peripheries=2]`)
	assert.Contains(t, dot, `node00003	[ label="#b\n[30,0 70x50]" shape=box style=filled fillcolor=lightgoldenrod ]`)
	assert.Contains(t, dot, "node00001 -> node00002 [weight=1] ;")
	assert.Contains(t, dot, "node00001 -> node00003 [weight=1] ;")
}

func TestGraphVizEmptyTree(t *testing.T) {
	var out bytes.Buffer
	err := ToGraphViz(nil, &out, tracing.Select("flowbox.frame"))
	assert.NoError(t, err)
	assert.NotContains(t, out.String(), "node0")
}
