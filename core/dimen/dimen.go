// Package dimen implements dimensions and plane geometry for layout.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/chewxy/math32"
)

// Values are device-independent pixels, unless they have been multiplied
// by a scale factor (device pixel ratio), in which case they are device pixels.

// Vector2 is a point or a size in the plane.
type Vector2 struct {
	X, Y float32
}

// Zero is the zero vector.
var Zero = Vector2{}

// V is a shortcut for creating a vector.
func V(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean length of v.
func (v Vector2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Stringer implementation.
func (v Vector2) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

// MaxV returns the component-wise maximum of two vectors.
func MaxV(a, b Vector2) Vector2 {
	return Vector2{X: math32.Max(a.X, b.X), Y: math32.Max(a.Y, b.Y)}
}

// MinV returns the component-wise minimum of two vectors.
func MinV(a, b Vector2) Vector2 {
	return Vector2{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y)}
}

// RectF is a rectangle in the plane, top-left based.
type RectF struct {
	Position Vector2
	Size     Vector2
}

// R is a shortcut for creating a rectangle.
func R(x, y, w, h float32) RectF {
	return RectF{Position: Vector2{X: x, Y: y}, Size: Vector2{X: w, Y: h}}
}

// X returns the x-coordinate of the top-left corner.
func (r RectF) X() float32 { return r.Position.X }

// Y returns the y-coordinate of the top-left corner.
func (r RectF) Y() float32 { return r.Position.Y }

// Width returns the horizontal extent of r.
func (r RectF) Width() float32 { return r.Size.X }

// Height returns the vertical extent of r.
func (r RectF) Height() float32 { return r.Size.Y }

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float32 { return r.Position.X + r.Size.X }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float32 { return r.Position.Y + r.Size.Y }

// Contains checks if p is inside r. The right and bottom edges are not part
// of r.
func (r RectF) Contains(p Vector2) bool {
	return r.Position.X <= p.X && p.X < r.Right() &&
		r.Position.Y <= p.Y && p.Y < r.Bottom()
}

// Union returns the smallest rectangle containing r and s.
func (r RectF) Union(s RectF) RectF {
	minX := math32.Min(r.X(), s.X())
	minY := math32.Min(r.Y(), s.Y())
	maxX := math32.Max(r.Right(), s.Right())
	maxY := math32.Max(r.Bottom(), s.Bottom())
	return R(minX, minY, maxX-minX, maxY-minY)
}

// IsFinite is true if none of r's components is NaN or infinite.
func (r RectF) IsFinite() bool {
	for _, x := range [4]float32{r.Position.X, r.Position.Y, r.Size.X, r.Size.Y} {
		if math32.IsNaN(x) || math32.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Stringer implementation.
func (r RectF) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.Position.X, r.Position.Y, r.Size.X, r.Size.Y)
}

// NonNeg returns x if it is positive, and 0 for negative values and NaN.
func NonNeg(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+))(%|px|PX)?$`)

// ErrFormat is returned for strings which cannot be parsed as a dimension.
var ErrFormat = errors.New("format error parsing dimension")

// ParseDimen parses a string to return a dimension. Syntax is a subset of
// CSS units:
//
//     12      pixels
//     12.5px  pixels
//     80%     percentage
//
// If a percentage value is given, the second return value will be true and
// the first one is the number in front of the '%'.
//
func ParseDimen(s string) (float32, bool, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, false, ErrFormat
	}
	ispcnt := len(d) > 2 && d[2] == "%"
	n, err := strconv.ParseFloat(d[1], 32)
	if err != nil { // this cannot happen
		return 0, false, ErrFormat
	}
	return float32(n), ispcnt, nil
}
