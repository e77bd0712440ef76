package boxtree

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame"
	"github.com/npillmayer/flowbox/engine/frame/layout"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/sync/errgroup"
)

// Configuration keys read by ConfigFrom.
const (
	KeyScale    = "flowbox.scale"    // device pixel ratio, e.g. "1.5"
	KeyParallel = "flowbox.parallel" // max. number of concurrent sub-tree layouts
	KeyViewport = "flowbox.viewport" // viewport size, e.g. "800x600"
)

// Config controls Layout.
type Config struct {
	Scale    float32 // scale factor (device pixel ratio); values ≤ 0 are replaced by 1
	Parallel int     // if > 1, lay out up to Parallel sub-trees concurrently
}

// DefaultConfig returns a configuration for sequential layout with scale 1.
func DefaultConfig() Config {
	return Config{Scale: 1, Parallel: 1}
}

// ConfigFrom reads a layout configuration from an application configuration.
// Keys which are not set or are malformed are replaced by defaults.
func ConfigFrom(conf schuko.Configuration) Config {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg
	}
	if conf.IsSet(KeyScale) {
		s, err := strconv.ParseFloat(strings.TrimSpace(conf.GetString(KeyScale)), 32)
		if err != nil || !(s > 0) {
			tracer().Errorf("illegal value for %s: %q", KeyScale, conf.GetString(KeyScale))
		} else {
			cfg.Scale = float32(s)
		}
	}
	if conf.IsSet(KeyParallel) {
		if p := conf.GetInt(KeyParallel); p > 0 {
			cfg.Parallel = p
		}
	}
	return cfg
}

// ViewportFrom reads the viewport from an application configuration.
// If the key is not set, dflt is returned.
func ViewportFrom(conf schuko.Configuration, dflt dimen.RectF) (dimen.RectF, error) {
	if conf == nil || !conf.IsSet(KeyViewport) {
		return dflt, nil
	}
	return ParseViewport(conf.GetString(KeyViewport))
}

// ParseViewport parses a viewport size of the form "800x600", in device pixels.
// The viewport's origin is (0,0).
func ParseViewport(s string) (dimen.RectF, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if ok {
		wd, _, errw := dimen.ParseDimen(strings.TrimSpace(w))
		ht, _, errh := dimen.ParseDimen(strings.TrimSpace(h))
		if errw == nil && errh == nil && wd >= 0 && ht >= 0 {
			return dimen.RectF{Position: dimen.Zero, Size: dimen.V(wd, ht)}, nil
		}
	}
	return dimen.RectF{}, core.Error(core.EINVALID, "illegal viewport %q, expected format WxH", s)
}

// Layout computes the layout results for all nodes of the tree rooted at root.
// The root is placed within viewport according to its alignment, as if its
// parent had flow direction None.
//
// With cfg.Parallel > 1, the children of different parents are placed
// concurrently. The results are identical to sequential layout.
func Layout(root *Node, viewport dimen.RectF, cfg Config) error {
	if root == nil {
		return core.WrapError(ErrNoSuchNode, core.EMISSING, "cannot lay out empty tree")
	}
	if !(cfg.Scale > 0) || math32.IsInf(cfg.Scale, 1) {
		cfg.Scale = 1
	}
	info, _, _ := root.Effective()
	root.Result = layout.Relayout(info, frame.ParentLayoutInfo{}, viewport, nil, cfg.Scale)
	tracer().Debugf("root %v placed at %v", root, root.Result)
	if cfg.Parallel <= 1 {
		layoutSubtree(root, cfg.Scale, nil)
		return nil
	}
	var g errgroup.Group
	g.SetLimit(cfg.Parallel)
	layoutSubtree(root, cfg.Scale, &g)
	return g.Wait()
}

// layoutSubtree places the children of n, then descends into each child.
// n.Result must have been computed. If g is non-nil, sub-trees are handed to
// g as long as it has capacity and laid out in place otherwise.
func layoutSubtree(n *Node, scale float32, g *errgroup.Group) {
	if len(n.children) == 0 {
		return
	}
	_, padding, flow := n.Effective()
	area := layout.ContentArea(n.Result.Rect, padding, scale)
	parent := frame.ParentLayoutInfo{Flow: flow}
	cursor := layout.NewFlowCursor(flow, area)
	for _, ch := range n.children {
		info, _, _ := ch.Effective()
		ch.Result = layout.Relayout(info, parent, area, &cursor, scale)
		if tracer().GetTraceLevel() >= tracing.LevelDebug {
			tracer().Debugf("%v placed at %v for %s", ch, ch.Result, info.DebugString())
		}
	}
	for _, ch := range n.children {
		ch := ch
		if g == nil {
			layoutSubtree(ch, scale, nil)
			continue
		}
		if !g.TryGo(func() error {
			layoutSubtree(ch, scale, g)
			return nil
		}) {
			layoutSubtree(ch, scale, g)
		}
	}
}
