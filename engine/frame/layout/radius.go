package layout

import (
	"github.com/chewxy/math32"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame"
	"golang.org/x/image/math/f32"
)

// ResolveBorderRadius fits a desired corner radius to the actual size of an
// element. If the radii of two adjacent corners add up to more than the
// length of their common edge, all four radii are reduced by the same factor
// (see CSS Backgrounds and Borders Module, “Overlapping Curves”).
//
// The result is ordered top-left, top-right, bottom-right, bottom-left.
// Negative radii are treated as 0.
func ResolveBorderRadius(desired frame.CornerRadius, actualSize dimen.Vector2) f32.Vec4 {
	tl, tr := dimen.NonNeg(desired.TopLeft), dimen.NonNeg(desired.TopRight)
	br, bl := dimen.NonNeg(desired.BottomRight), dimen.NonNeg(desired.BottomLeft)
	w, h := dimen.NonNeg(actualSize.X), dimen.NonNeg(actualSize.Y)
	scale := math32.Min(
		math32.Min(edgeRatio(w, tl+tr), edgeRatio(h, tr+br)),
		math32.Min(edgeRatio(w, br+bl), edgeRatio(h, bl+tl)),
	)
	scale = math32.Min(1, scale)
	return f32.Vec4{
		dimen.NonNeg(tl * scale),
		dimen.NonNeg(tr * scale),
		dimen.NonNeg(br * scale),
		dimen.NonNeg(bl * scale),
	}
}

// edgeRatio is the ratio of an edge's length to the sum of the radii of its
// corners. An edge without rounded corners does not constrain the radii.
func edgeRatio(length, radii float32) float32 {
	if radii <= 0 || math32.IsNaN(radii) {
		return math32.Inf(1)
	}
	return length / radii
}
