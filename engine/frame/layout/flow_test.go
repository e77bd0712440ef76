package layout

import (
	"testing"

	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type FlowTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestFlowBranches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flowbox.layout")
	defer teardown()
	suite.Run(t, new(FlowTestEnviron))
}

// run once, before test suite methods
func (env *FlowTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("flowbox.layout").SetTraceLevel(tracing.LevelDebug)
}

// run once, after test suite methods
func (env *FlowTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *FlowTestEnviron) TestNoFlowAlignment() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.None, frame.NoWrap)
	r := PlaceElement(box(20, 10), parent, area, nil, 1)
	env.Equal(dimen.R(40, 20, 20, 10), r, "centered element")
	//
	e := box(20, 10)
	e.HorizontalAlignment = frame.HAlignRight
	e.VerticalAlignment = frame.VAlignTop
	e.Margin = frame.UniformThickness(5)
	r = PlaceElement(e, parent, dimen.R(10, 10, 100, 50), nil, 1)
	env.Equal(dimen.R(85, 15, 20, 10), r, "top-right element with margins")
	//
	e.HorizontalAlignment = frame.HAlignLeft
	e.VerticalAlignment = frame.VAlignBottom
	r = PlaceElement(e, parent, dimen.R(10, 10, 100, 50), nil, 1)
	env.Equal(dimen.R(15, 45, 20, 10), r, "bottom-left element with margins")
}

func (env *FlowTestEnviron) TestNoFlowFillsContentArea() {
	area := dimen.R(0, 0, 100, 50)
	e := frame.DefaultElementLayoutInfo()
	e.Margin = frame.Thickness{Top: 1, Right: 2, Bottom: 3, Left: 4}
	r := PlaceElement(e, frame.ParentLayoutInfo{}, area, nil, 1)
	env.Equal(dimen.R(4, 1, 94, 46), r)
}

func (env *FlowTestEnviron) TestRowNoWrap() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.Row, frame.NoWrap)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, top(box(30, 10)), top(box(30, 10)))
	env.Equal(float32(0), rects[0].X())
	env.Equal(float32(30), rects[1].X())
	env.Equal(float32(0), rects[1].Y())
	env.Equal(float32(60), cursor.FlowHead.X)
}

func (env *FlowTestEnviron) TestRowNoWrapClampsToRemainingSpace() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.Row, frame.NoWrap)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(40, 10), box(40, 10), box(40, 10), box(40, 10))
	env.Equal(dimen.R(80, 20, 20, 10), rects[2], "third child gets what is left")
	env.Equal(dimen.R(100, 20, 0, 10), rects[3], "fourth child has no room left")
	env.Equal(float32(100), cursor.FlowHead.X)
}

func (env *FlowTestEnviron) TestRowNoWrapWithMarginsAndScale() {
	area := dimen.R(0, 0, 200, 100)
	parent := parentWith(frame.Row, frame.NoWrap)
	e := top(box(10, 10))
	e.Margin = frame.UniformThickness(5)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll2(parent, area, &cursor, 2, e, e)
	env.Equal(dimen.R(10, 10, 20, 20), rects[0])
	env.Equal(dimen.R(50, 10, 20, 20), rects[1])
	env.Equal(float32(80), cursor.FlowHead.X)
}

func (env *FlowTestEnviron) TestRowWrap() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.Row, frame.Wrap)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(60, 20), box(60, 20))
	env.Equal(dimen.R(0, 0, 60, 20), rects[0])
	env.Equal(dimen.R(0, 20, 60, 20), rects[1], "second child wraps")
	env.Equal(dimen.V(60, 20), cursor.FlowHead)
	env.Equal(float32(20), cursor.NextLineOffset)
}

func (env *FlowTestEnviron) TestWrapEpsilonForAllDirections() {
	area := dimen.R(0, 0, 100, 100)
	// elem creates an element of main-axis extent ext and cross-axis extent 10
	elem := func(dir frame.Direction, ext float32) frame.ElementLayoutInfo {
		if dir.IsHorizontal() {
			return box(ext, 10)
		}
		return box(10, ext)
	}
	cross := func(dir frame.Direction, r dimen.RectF) float32 {
		if dir.IsHorizontal() {
			return r.Y()
		}
		return r.X()
	}
	for _, dir := range []frame.Direction{frame.Row, frame.Column, frame.RowReverse, frame.ColumnReverse} {
		for _, wrap := range []frame.WrapMode{frame.Wrap, frame.WrapReverse} {
			parent := parentWith(dir, wrap)
			for _, overshoot := range []struct {
				ext   float32
				wraps bool
			}{
				{50.0005, false},
				{50.01, true},
			} {
				cursor := NewFlowCursor(parent.Flow, area)
				rects := placeAll(parent, area, &cursor, elem(dir, 50), elem(dir, overshoot.ext))
				first, second := cross(dir, rects[0]), cross(dir, rects[1])
				if overshoot.wraps {
					env.NotEqual(first, second, "%v: extent %g must wrap", parent.Flow, overshoot.ext)
				} else {
					env.Equal(first, second, "%v: extent %g must stay on the line", parent.Flow, overshoot.ext)
				}
			}
		}
	}
}

func (env *FlowTestEnviron) TestRowWrapLineHeightIsMaximum() {
	area := dimen.R(0, 0, 100, 100)
	parent := parentWith(frame.Row, frame.Wrap)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(40, 20), box(40, 30), box(40, 10))
	env.Equal(dimen.R(0, 0, 40, 20), rects[0])
	env.Equal(dimen.R(40, 0, 40, 30), rects[1])
	env.Equal(dimen.R(0, 30, 40, 10), rects[2])
	env.Equal(float32(10), cursor.NextLineOffset)
}

func (env *FlowTestEnviron) TestRowWrapEpsilon() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.Row, frame.Wrap)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(50, 10), box(50.0005, 10))
	env.Equal(float32(0), rects[1].Y(), "overshoot within epsilon must not wrap")
	cursor = NewFlowCursor(parent.Flow, area)
	rects = placeAll(parent, area, &cursor, box(50, 10), box(50.01, 10))
	env.Equal(float32(10), rects[1].Y(), "overshoot beyond epsilon must wrap")
}

func (env *FlowTestEnviron) TestRowWrapReverse() {
	area := dimen.R(0, 0, 100, 100)
	parent := parentWith(frame.Row, frame.WrapReverse)
	cursor := NewFlowCursor(parent.Flow, area)
	env.Equal(dimen.V(0, 100), cursor.FlowHead)
	rects := placeAll(parent, area, &cursor, box(60, 20), box(60, 20))
	env.Equal(dimen.R(0, 80, 60, 20), rects[0])
	env.Equal(dimen.R(0, 60, 60, 20), rects[1])
	env.Equal(float32(-20), cursor.NextLineOffset)
}

func (env *FlowTestEnviron) TestRowReverseNoWrap() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.RowReverse, frame.NoWrap)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, top(box(30, 10)), top(box(30, 10)))
	env.Equal(dimen.R(70, 0, 30, 10), rects[0])
	env.Equal(dimen.R(40, 0, 30, 10), rects[1])
	env.Equal(float32(40), cursor.FlowHead.X)
}

func (env *FlowTestEnviron) TestRowReverseWrap() {
	area := dimen.R(0, 0, 100, 100)
	parent := parentWith(frame.RowReverse, frame.Wrap)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(60, 20), box(60, 20))
	env.Equal(dimen.R(40, 0, 60, 20), rects[0])
	env.Equal(dimen.R(40, 20, 60, 20), rects[1])
	env.Equal(dimen.V(40, 20), cursor.FlowHead)
}

func (env *FlowTestEnviron) TestRowReverseWrapReverse() {
	area := dimen.R(0, 0, 100, 100)
	parent := parentWith(frame.RowReverse, frame.WrapReverse)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(60, 20), box(60, 20))
	env.Equal(dimen.R(40, 80, 60, 20), rects[0])
	env.Equal(dimen.R(40, 60, 60, 20), rects[1])
}

func (env *FlowTestEnviron) TestColumnNoWrap() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.Column, frame.NoWrap)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(30, 20), box(30, 20))
	env.Equal(dimen.R(35, 0, 30, 20), rects[0])
	env.Equal(dimen.R(35, 20, 30, 20), rects[1])
	env.Equal(float32(40), cursor.FlowHead.Y)
}

func (env *FlowTestEnviron) TestColumnWrap() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.Column, frame.Wrap)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(30, 30), box(30, 30))
	env.Equal(dimen.R(0, 0, 30, 30), rects[0])
	env.Equal(dimen.R(30, 0, 30, 30), rects[1])
	env.Equal(dimen.V(30, 30), cursor.FlowHead)
}

func (env *FlowTestEnviron) TestColumnWrapReverse() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.Column, frame.WrapReverse)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(30, 30), box(30, 30))
	env.Equal(dimen.R(70, 0, 30, 30), rects[0])
	env.Equal(dimen.R(40, 0, 30, 30), rects[1])
	env.Equal(float32(-30), cursor.NextLineOffset)
}

func (env *FlowTestEnviron) TestColumnReverseNoWrap() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.ColumnReverse, frame.NoWrap)
	cursor := NewFlowCursor(parent.Flow, area)
	e := box(30, 20)
	e.HorizontalAlignment = frame.HAlignLeft
	rects := placeAll(parent, area, &cursor, e, e)
	env.Equal(dimen.R(0, 30, 30, 20), rects[0])
	env.Equal(dimen.R(0, 10, 30, 20), rects[1])
	env.Equal(float32(10), cursor.FlowHead.Y)
}

func (env *FlowTestEnviron) TestColumnReverseWrap() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.ColumnReverse, frame.Wrap)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(30, 30), box(30, 30))
	env.Equal(dimen.R(0, 20, 30, 30), rects[0])
	env.Equal(dimen.R(30, 20, 30, 30), rects[1])
	env.Equal(dimen.V(30, 20), cursor.FlowHead)
}

func (env *FlowTestEnviron) TestColumnReverseWrapReverse() {
	area := dimen.R(0, 0, 100, 50)
	parent := parentWith(frame.ColumnReverse, frame.WrapReverse)
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, box(30, 30), box(30, 30))
	env.Equal(dimen.R(70, 20, 30, 30), rects[0])
	env.Equal(dimen.R(40, 20, 30, 30), rects[1])
}

func (env *FlowTestEnviron) TestProportionsShareRemainingSpace() {
	area := dimen.R(0, 0, 100, 40)
	parent := parentWith(frame.Row, frame.NoWrap)
	half := frame.ElementLayoutInfo{
		Width:  frame.MustProportion(0.5),
		Height: frame.MustProportion(0.5),
	}
	cursor := NewFlowCursor(parent.Flow, area)
	rects := placeAll(parent, area, &cursor, half, half)
	env.Equal(dimen.R(0, 10, 50, 20), rects[0])
	env.Equal(dimen.R(50, 10, 25, 20), rects[1], "second half is relative to what is left")
}

func (env *FlowTestEnviron) TestNewFlowCursor() {
	area := dimen.R(10, 20, 100, 50)
	tests := []struct {
		flow frame.Flow
		head dimen.Vector2
	}{
		{frame.Flow{}, dimen.V(10, 20)},
		{frame.Flow{Direction: frame.Row}, dimen.V(10, 20)},
		{frame.Flow{Direction: frame.Column, Wrap: frame.Wrap}, dimen.V(10, 20)},
		{frame.Flow{Direction: frame.RowReverse}, dimen.V(110, 20)},
		{frame.Flow{Direction: frame.ColumnReverse, Wrap: frame.Wrap}, dimen.V(10, 70)},
		{frame.Flow{Direction: frame.Row, Wrap: frame.WrapReverse}, dimen.V(10, 70)},
		{frame.Flow{Direction: frame.Column, Wrap: frame.WrapReverse}, dimen.V(110, 20)},
		{frame.Flow{Direction: frame.RowReverse, Wrap: frame.WrapReverse}, dimen.V(110, 70)},
		{frame.Flow{Direction: frame.ColumnReverse, Wrap: frame.WrapReverse}, dimen.V(110, 70)},
	}
	for i, test := range tests {
		c := NewFlowCursor(test.flow, area)
		env.Equal(test.head, c.FlowHead, "test #%d: flow %v", i, test.flow)
		env.Equal(float32(0), c.NextLineOffset)
	}
}

// --- Helpers ---------------------------------------------------------------

func box(w, h float32) frame.ElementLayoutInfo {
	return frame.ElementLayoutInfo{
		Width:  frame.MustAbsolute(w),
		Height: frame.MustAbsolute(h),
	}
}

func top(e frame.ElementLayoutInfo) frame.ElementLayoutInfo {
	e.VerticalAlignment = frame.VAlignTop
	return e
}

func parentWith(dir frame.Direction, wrap frame.WrapMode) frame.ParentLayoutInfo {
	return frame.ParentLayoutInfo{Flow: frame.Flow{Direction: dir, Wrap: wrap}}
}

func placeAll(parent frame.ParentLayoutInfo, area dimen.RectF, cursor *FlowCursor,
	children ...frame.ElementLayoutInfo) []dimen.RectF {
	return placeAll2(parent, area, cursor, 1, children...)
}

func placeAll2(parent frame.ParentLayoutInfo, area dimen.RectF, cursor *FlowCursor,
	scale float32, children ...frame.ElementLayoutInfo) []dimen.RectF {
	rects := make([]dimen.RectF, len(children))
	for i, c := range children {
		rects[i] = PlaceElement(c, parent, area, cursor, scale)
	}
	return rects
}
