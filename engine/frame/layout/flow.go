package layout

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame"
)

// Epsilon is the tolerance for testing whether an element fits onto the
// current line. Elements may overshoot the content area by at most Epsilon
// without wrapping.
const Epsilon float32 = 0.001

// FlowCursor is the state carried from one sibling to the next during layout
// of a parent's children.
type FlowCursor struct {
	FlowHead       dimen.Vector2 // insertion point for the next element
	NextLineOffset float32       // signed cross-axis extent of the current line
}

func (c FlowCursor) String() string {
	return fmt.Sprintf("cursor{head=%v, next-line=%g}", c.FlowHead, c.NextLineOffset)
}

// NewFlowCursor creates the cursor for placing the first child of a parent.
// The flow head starts at the corner of the content area where the first
// line begins.
func NewFlowCursor(flow frame.Flow, contentArea dimen.RectF) FlowCursor {
	x0, y0 := contentArea.X(), contentArea.Y()
	x1, y1 := contentArea.Right(), contentArea.Bottom()
	head := dimen.V(x0, y0)
	if flow.Wrap == frame.WrapReverse {
		switch flow.Direction {
		case frame.Row:
			head = dimen.V(x0, y1)
		case frame.Column:
			head = dimen.V(x1, y0)
		case frame.RowReverse, frame.ColumnReverse:
			head = dimen.V(x1, y1)
		}
	} else {
		switch flow.Direction {
		case frame.RowReverse:
			head = dimen.V(x1, y0)
		case frame.ColumnReverse:
			head = dimen.V(x0, y1)
		}
	}
	return FlowCursor{FlowHead: head}
}

// PlaceElement computes the rectangle of an element within its parent's
// content area and advances cursor for the next sibling.
//
// Children of a parent have to be placed in order, threading the cursor from
// one call to the next. If cursor is nil, the element is placed as the first
// child of its parent.
//
// Depending on the parent's flow, the element is placed as follows:
//
//   - by alignment only (direction None),
//   - at the flow head, aligned on the cross axis (NoWrap),
//   - at the flow head, or at the start of a new line if it would overflow
//     the content area (Wrap and WrapReverse).
//
// Without wrapping elements may extend past the content area. PlaceElement
// never fails; the resulting size is never negative.
func PlaceElement(elem frame.ElementLayoutInfo, parent frame.ParentLayoutInfo,
	contentArea dimen.RectF, cursor *FlowCursor, scale float32) dimen.RectF {
	//
	if cursor == nil {
		c := NewFlowCursor(parent.Flow, contentArea)
		cursor = &c
	}
	area := dimen.RectF{
		Position: contentArea.Position,
		Size:     dimen.V(dimen.NonNeg(contentArea.Width()), dimen.NonNeg(contentArea.Height())),
	}
	margin := elem.Margin.Scale(scale)
	var r dimen.RectF
	switch parent.Flow.Direction {
	case frame.Row, frame.Column, frame.RowReverse, frame.ColumnReverse:
		f := flowAxes{
			main:    mainAxis(parent.Flow.Direction),
			reverse: parent.Flow.Direction.IsReverse(),
		}
		switch parent.Flow.Wrap {
		case frame.Wrap:
			r = f.placeWrapped(elem, area, margin, cursor, scale, false)
		case frame.WrapReverse:
			r = f.placeWrapped(elem, area, margin, cursor, scale, true)
		default:
			r = f.placeUnwrapped(elem, area, margin, cursor, scale)
		}
	default:
		r = placeNoFlow(elem, area, margin, scale)
	}
	return sanitize(r)
}

func mainAxis(dir frame.Direction) axis {
	if dir.IsHorizontal() {
		return horizontal
	}
	return vertical
}

// flowAxes describes one of the four flow directions: rows flow along the
// horizontal axis, columns along the vertical one. Reverse flows start at the
// trailing edge of the content area and move backwards.
type flowAxes struct {
	main    axis
	reverse bool
}

// consumed returns how much of the main axis has already been taken by
// previous siblings on the current line.
func (f flowAxes) consumed(head float32, area dimen.RectF) float32 {
	start := f.main.of(area.Position)
	if f.reverse {
		return dimen.NonNeg(start + f.main.of(area.Size) - head)
	}
	return dimen.NonNeg(head - start)
}

// proportionBase is the content size, reduced on the main axis by what is
// consumed on the current line.
func (f flowAxes) proportionBase(area dimen.RectF, consumed float32) dimen.Vector2 {
	base := area.Size
	f.main.set(&base, f.main.of(area.Size)-consumed)
	return base
}

// advance moves the flow head along the main axis past an element of
// main-axis extent ext. The head never moves backwards.
func (f flowAxes) advance(cursor *FlowCursor, ext float32) {
	head := f.main.of(cursor.FlowHead)
	if f.reverse {
		f.main.set(&cursor.FlowHead, math32.Min(head, head-ext))
	} else {
		f.main.set(&cursor.FlowHead, math32.Max(head, head+ext))
	}
}

func (f flowAxes) placeUnwrapped(elem frame.ElementLayoutInfo, area dimen.RectF,
	margin frame.Thickness, cursor *FlowCursor, scale float32) dimen.RectF {
	//
	m, c := f.main, f.main.cross()
	head := m.of(cursor.FlowHead)
	a := f.consumed(head, area)
	full := lineSize(area, margin)
	m.set(&full, dimen.NonNeg(m.of(full)-a))
	size := dimen.MinV(ResolveSize(elem.Width, elem.Height, f.proportionBase(area, a), scale), full)
	//
	var pos dimen.Vector2
	if f.reverse {
		m.set(&pos, head-m.of(size)-m.trailing(margin))
	} else {
		m.set(&pos, head+m.leading(margin))
	}
	c.set(&pos, noFlowPosition(elem, c, margin, area, full, size))
	f.advance(cursor, m.of(size)+m.leading(margin)+m.trailing(margin))
	return dimen.RectF{Position: pos, Size: size}
}

// placeWrapped places an element onto the current line, or starts a new line
// if the element would overflow the content area on the main axis.
// With reverseLines set, lines are stacked in negative cross-axis direction,
// starting at the trailing edge of the content area.
func (f flowAxes) placeWrapped(elem frame.ElementLayoutInfo, area dimen.RectF,
	margin frame.Thickness, cursor *FlowCursor, scale float32, reverseLines bool) dimen.RectF {
	//
	m, c := f.main, f.main.cross()
	head := m.of(cursor.FlowHead)
	a := f.consumed(head, area)
	size := dimen.MinV(ResolveSize(elem.Width, elem.Height, f.proportionBase(area, a), scale),
		lineSize(area, margin))
	lead, trail := m.leading(margin), m.trailing(margin)
	start := m.of(area.Position)
	end := start + m.of(area.Size)
	var p float32
	var fits bool
	if f.reverse {
		p = head - m.of(size) - trail
		fits = p-lead >= start-Epsilon
	} else {
		p = head + lead
		fits = p+m.of(size)+trail <= end+Epsilon
	}
	crossExtent := c.of(size) + c.leading(margin) + c.trailing(margin)
	if fits {
		f.advance(cursor, m.of(size)+lead+trail)
		if reverseLines {
			cursor.NextLineOffset = math32.Min(cursor.NextLineOffset, -crossExtent)
		} else {
			cursor.NextLineOffset = math32.Max(cursor.NextLineOffset, crossExtent)
		}
	} else {
		tracer().Debugf("element of size %v does not fit, starting new line", size)
		c.set(&cursor.FlowHead, c.of(cursor.FlowHead)+cursor.NextLineOffset)
		if f.reverse {
			p = end - m.of(size) - trail
			m.set(&cursor.FlowHead, p-lead)
		} else {
			p = start + lead
			m.set(&cursor.FlowHead, p+m.of(size)+trail)
		}
		if reverseLines {
			cursor.NextLineOffset = -crossExtent
		} else {
			cursor.NextLineOffset = crossExtent
		}
	}
	var pos dimen.Vector2
	m.set(&pos, p)
	if reverseLines {
		c.set(&pos, c.of(cursor.FlowHead)-c.of(size)-c.trailing(margin))
	} else {
		c.set(&pos, c.of(cursor.FlowHead)+c.leading(margin))
	}
	return dimen.RectF{Position: pos, Size: size}
}

// placeNoFlow places an element by its alignment only.
func placeNoFlow(elem frame.ElementLayoutInfo, area dimen.RectF, margin frame.Thickness,
	scale float32) dimen.RectF {
	//
	full := lineSize(area, margin)
	size := dimen.MinV(ResolveSize(elem.Width, elem.Height, area.Size, scale), full)
	pos := dimen.V(
		noFlowPosition(elem, horizontal, margin, area, full, size),
		noFlowPosition(elem, vertical, margin, area, full, size),
	)
	return dimen.RectF{Position: pos, Size: size}
}

// lineSize is the size of the content area minus margins.
func lineSize(area dimen.RectF, margin frame.Thickness) dimen.Vector2 {
	return dimen.V(
		dimen.NonNeg(area.Width()-margin.Horizontal()),
		dimen.NonNeg(area.Height()-margin.Vertical()),
	)
}

// noFlowPosition positions an element on axis a according to its alignment.
// full is the space available to the element.
func noFlowPosition(elem frame.ElementLayoutInfo, a axis, margin frame.Thickness,
	area dimen.RectF, full, size dimen.Vector2) float32 {
	//
	var p float32
	switch a.alignment(elem) {
	case alignLeading:
		p = a.leading(margin)
	case alignTrailing:
		p = a.of(area.Size) - a.trailing(margin) - a.of(size)
	default:
		p = a.leading(margin) + (a.of(full)-a.of(size))/2
	}
	return p + a.of(area.Position)
}

// sanitize replaces NaN coordinates by 0 and clamps sizes at 0.
func sanitize(r dimen.RectF) dimen.RectF {
	clean := func(x float32) float32 {
		if math32.IsNaN(x) {
			return 0
		}
		return x
	}
	return dimen.RectF{
		Position: dimen.V(clean(r.Position.X), clean(r.Position.Y)),
		Size:     dimen.V(dimen.NonNeg(r.Size.X), dimen.NonNeg(r.Size.Y)),
	}
}
