package layout

import (
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame"
)

// ResolveSize resolves a requested width and height to pixels.
// Absolute lengths are multiplied by scale, proportions are taken from
// proportionBase. Both axes are resolved independently; results are never
// negative or NaN.
func ResolveSize(width, height frame.LayoutLength, proportionBase dimen.Vector2,
	scale float32) dimen.Vector2 {
	//
	return dimen.Vector2{
		X: resolveLength(width, proportionBase.X, scale),
		Y: resolveLength(height, proportionBase.Y, scale),
	}
}

func resolveLength(l frame.LayoutLength, base float32, scale float32) float32 {
	if l.IsProportion() {
		return dimen.NonNeg(base * l.Value())
	}
	return dimen.NonNeg(scale * l.Value())
}
