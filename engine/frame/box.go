package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/f32"
)

// Thickness holds four-way values, such as margins and paddings.
// Values may be negative.
type Thickness struct {
	Top, Right, Bottom, Left float32
}

// UniformThickness returns a thickness with all four values set to v.
func UniformThickness(v float32) Thickness {
	return Thickness{Top: v, Right: v, Bottom: v, Left: v}
}

// Scale returns t multiplied by a scale factor.
func (t Thickness) Scale(s float32) Thickness {
	return Thickness{Top: t.Top * s, Right: t.Right * s, Bottom: t.Bottom * s, Left: t.Left * s}
}

// Horizontal returns the sum of left and right values.
func (t Thickness) Horizontal() float32 {
	return t.Left + t.Right
}

// Vertical returns the sum of top and bottom values.
func (t Thickness) Vertical() float32 {
	return t.Top + t.Bottom
}

// String returns t in CSS shorthand notation, using as few values as possible.
// Four-way values always start at the top and travel clockwise.
func (t Thickness) String() string {
	switch {
	case t.Top == t.Right && t.Top == t.Bottom && t.Top == t.Left:
		return Px(t.Top)
	case t.Top == t.Bottom && t.Left == t.Right:
		return join(t.Top, t.Right)
	case t.Left == t.Right:
		return join(t.Top, t.Right, t.Bottom)
	}
	return join(t.Top, t.Right, t.Bottom, t.Left)
}

// CornerRadius holds the desired radius for each of the four corners of a box.
type CornerRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// UniformRadius returns a corner radius with all four corners set to r.
func UniformRadius(r float32) CornerRadius {
	return CornerRadius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Scale returns c multiplied by a scale factor.
func (c CornerRadius) Scale(s float32) CornerRadius {
	return CornerRadius{
		TopLeft:     c.TopLeft * s,
		TopRight:    c.TopRight * s,
		BottomRight: c.BottomRight * s,
		BottomLeft:  c.BottomLeft * s,
	}
}

// ToVec4 returns the radii in order top-left, top-right, bottom-right, bottom-left.
func (c CornerRadius) ToVec4() f32.Vec4 {
	return f32.Vec4{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft}
}

// String returns c in CSS shorthand notation for property border-radius,
// using as few values as possible.
func (c CornerRadius) String() string {
	switch {
	case c.TopLeft == c.TopRight && c.TopLeft == c.BottomRight && c.TopLeft == c.BottomLeft:
		return Px(c.TopLeft)
	case c.TopLeft == c.BottomRight && c.TopRight == c.BottomLeft:
		return join(c.TopLeft, c.TopRight)
	case c.TopRight == c.BottomLeft:
		return join(c.TopLeft, c.TopRight, c.BottomRight)
	}
	return join(c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft)
}

func join(v ...float32) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = Px(x)
	}
	return strings.Join(s, " ")
}

// --- Alignment -------------------------------------------------------------

// HorizontalAlignment positions an element horizontally within its parent,
// if the parent's flow does not determine the horizontal position.
type HorizontalAlignment uint8

// Horizontal alignments. The zero value is HAlignCenter.
const (
	HAlignCenter HorizontalAlignment = iota
	HAlignLeft
	HAlignRight
)

func (ha HorizontalAlignment) String() string {
	switch ha {
	case HAlignLeft:
		return "left"
	case HAlignRight:
		return "right"
	}
	return "center"
}

// VerticalAlignment positions an element vertically within its parent,
// if the parent's flow does not determine the vertical position.
type VerticalAlignment uint8

// Vertical alignments. The zero value is VAlignCenter.
const (
	VAlignCenter VerticalAlignment = iota
	VAlignTop
	VAlignBottom
)

func (va VerticalAlignment) String() string {
	switch va {
	case VAlignTop:
		return "top"
	case VAlignBottom:
		return "bottom"
	}
	return "center"
}

// --- Layout descriptors ----------------------------------------------------

// ElementLayoutInfo describes the layout request of a single element.
// It is treated as an immutable value during layout.
type ElementLayoutInfo struct {
	Width               LayoutLength
	Height              LayoutLength
	Margin              Thickness
	HorizontalAlignment HorizontalAlignment
	VerticalAlignment   VerticalAlignment
	BorderRadius        CornerRadius
}

// DefaultElementLayoutInfo returns the layout info of an element without any
// style applied: it fills its parent's content area and is centered.
func DefaultElementLayoutInfo() ElementLayoutInfo {
	return ElementLayoutInfo{
		Width:  LayoutLength{value: 1, kind: ProportionLength},
		Height: LayoutLength{value: 1, kind: ProportionLength},
	}
}

// DebugString returns a textual representation of an element's layout request.
// Intended for debugging.
func (info ElementLayoutInfo) DebugString() string {
	s := fmt.Sprintf("elem{\n   w=%v, h=%v\n", info.Width, info.Height)
	s += fmt.Sprintf("   m.top=%g, m.right=%g, m.bottom=%g, m.left=%g\n",
		info.Margin.Top, info.Margin.Right, info.Margin.Bottom, info.Margin.Left)
	s += fmt.Sprintf("   align=%v/%v, radius=%v\n",
		info.HorizontalAlignment, info.VerticalAlignment, info.BorderRadius)
	s += "}"
	return s
}

// ParentLayoutInfo is the part of a parent element's layout descriptor which
// is relevant for placing its children.
type ParentLayoutInfo struct {
	Flow Flow
}
