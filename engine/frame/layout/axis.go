package layout

import (
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/engine/frame"
)

// axis selects a component of a vector. Row flows have a horizontal main
// axis, column flows a vertical one. All flow branches are written in terms
// of main and cross axis, mirroring rows into columns.
type axis uint8

const (
	horizontal axis = iota
	vertical
)

func (a axis) cross() axis {
	return 1 - a
}

func (a axis) of(v dimen.Vector2) float32 {
	if a == horizontal {
		return v.X
	}
	return v.Y
}

func (a axis) set(v *dimen.Vector2, x float32) {
	if a == horizontal {
		v.X = x
	} else {
		v.Y = x
	}
}

// leading returns the margin before an element on axis a (left or top).
func (a axis) leading(m frame.Thickness) float32 {
	if a == horizontal {
		return m.Left
	}
	return m.Top
}

// trailing returns the margin after an element on axis a (right or bottom).
func (a axis) trailing(m frame.Thickness) float32 {
	if a == horizontal {
		return m.Right
	}
	return m.Bottom
}

// alignment is an axis-independent version of horizontal and vertical
// alignment.
type alignment uint8

const (
	alignCenter alignment = iota
	alignLeading
	alignTrailing
)

func (a axis) alignment(info frame.ElementLayoutInfo) alignment {
	if a == horizontal {
		switch info.HorizontalAlignment {
		case frame.HAlignLeft:
			return alignLeading
		case frame.HAlignRight:
			return alignTrailing
		}
		return alignCenter
	}
	switch info.VerticalAlignment {
	case frame.VAlignTop:
		return alignLeading
	case frame.VAlignBottom:
		return alignTrailing
	}
	return alignCenter
}
