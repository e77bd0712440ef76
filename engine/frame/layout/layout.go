package layout

import (
	"fmt"

	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame"
	"golang.org/x/image/math/f32"
)

// LayoutResult is the outcome of laying out a single element: its rectangle
// and its corner radius, both in device pixels.
type LayoutResult struct {
	Rect         dimen.RectF
	BorderRadius f32.Vec4 // top-left, top-right, bottom-right, bottom-left
}

func (r LayoutResult) String() string {
	return fmt.Sprintf("%v r=(%g,%g,%g,%g)", r.Rect,
		r.BorderRadius[0], r.BorderRadius[1], r.BorderRadius[2], r.BorderRadius[3])
}

// Relayout places an element within its parent's content area (see
// PlaceElement) and fits the element's scaled corner radius to the resulting
// rectangle.
func Relayout(info frame.ElementLayoutInfo, parent frame.ParentLayoutInfo,
	contentArea dimen.RectF, cursor *FlowCursor, scale float32) LayoutResult {
	//
	rect := PlaceElement(info, parent, contentArea, cursor, scale)
	desired := info.BorderRadius.Scale(scale)
	return LayoutResult{
		Rect:         rect,
		BorderRadius: ResolveBorderRadius(desired, rect.Size),
	}
}

// ContentArea returns the area available for the children of an element,
// i.e. its rectangle minus the scaled padding. The size is never negative.
func ContentArea(rect dimen.RectF, padding frame.Thickness, scale float32) dimen.RectF {
	p := padding.Scale(scale)
	return dimen.RectF{
		Position: rect.Position.Add(dimen.V(p.Left, p.Top)),
		Size: dimen.V(
			dimen.NonNeg(rect.Width()-p.Horizontal()),
			dimen.NonNeg(rect.Height()-p.Vertical()),
		),
	}
}

// HitTest checks if point p is inside the rounded rectangle of a layout
// result. As with dimen.RectF.Contains, the right and bottom edges are
// excluded.
func HitTest(p dimen.Vector2, r LayoutResult) bool {
	if !r.Rect.Contains(p) {
		return false
	}
	x0, y0 := r.Rect.X(), r.Rect.Y()
	x1, y1 := r.Rect.Right(), r.Rect.Bottom()
	tl, tr, br, bl := r.BorderRadius[0], r.BorderRadius[1], r.BorderRadius[2], r.BorderRadius[3]
	switch {
	case p.X < x0+tl && p.Y < y0+tl:
		return inCorner(p, dimen.V(x0+tl, y0+tl), tl)
	case p.X > x1-tr && p.Y < y0+tr:
		return inCorner(p, dimen.V(x1-tr, y0+tr), tr)
	case p.X > x1-br && p.Y > y1-br:
		return inCorner(p, dimen.V(x1-br, y1-br), br)
	case p.X < x0+bl && p.Y > y1-bl:
		return inCorner(p, dimen.V(x0+bl, y1-bl), bl)
	}
	return true
}

func inCorner(p, center dimen.Vector2, radius float32) bool {
	return p.Sub(center).Length() <= radius
}
