package frame

import (
	"errors"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/core/percent"
)

// ErrOutOfRange is returned when constructing a layout length with a negative
// value. Errors returned by the constructors wrap ErrOutOfRange and carry
// error code core.EINVALID.
var ErrOutOfRange = errors.New("layout length out of range")

// LengthKind tags a layout length as either absolute or proportional.
type LengthKind uint8

// Kinds of layout lengths.
const (
	AbsoluteLength   LengthKind = iota // device-independent pixels
	ProportionLength                   // fraction of a base size
)

// LayoutLength is a non-negative length, either absolute or a proportion of
// a base size. The zero value is an absolute length of 0.
//
// LayoutLength values may only be created with Absolute or Proportion,
// which reject negative values.
type LayoutLength struct {
	value float32
	kind  LengthKind
}

// Absolute creates a length in device-independent pixels.
func Absolute(px float32) (LayoutLength, error) {
	if err := checkLength(px); err != nil {
		return LayoutLength{}, err
	}
	return LayoutLength{value: px, kind: AbsoluteLength}, nil
}

// Proportion creates a length as a fraction of a base size, typically
// in the range 0…1.
func Proportion(fraction float32) (LayoutLength, error) {
	if err := checkLength(fraction); err != nil {
		return LayoutLength{}, err
	}
	return LayoutLength{value: fraction, kind: ProportionLength}, nil
}

// MustAbsolute is like Absolute, but panics on invalid input.
func MustAbsolute(px float32) LayoutLength {
	l, err := Absolute(px)
	if err != nil {
		panic(err)
	}
	return l
}

// MustProportion is like Proportion, but panics on invalid input.
func MustProportion(fraction float32) LayoutLength {
	l, err := Proportion(fraction)
	if err != nil {
		panic(err)
	}
	return l
}

func checkLength(v float32) error {
	if v < 0 || math32.IsNaN(v) || math32.IsInf(v, 0) {
		tracer().Errorf("rejecting layout length %g", v)
		return core.WrapError(ErrOutOfRange, core.EINVALID,
			"layout length must be a finite non-negative value, is %g", v)
	}
	return nil
}

// Kind returns the kind of l.
func (l LayoutLength) Kind() LengthKind {
	return l.kind
}

// Value returns the numeric value of l, either pixels or a fraction.
func (l LayoutLength) Value() float32 {
	return l.value
}

// IsProportion is true if l is relative to a base size.
func (l LayoutLength) IsProportion() bool {
	return l.kind == ProportionLength
}

// String returns "12px" for absolute lengths and "50%" for proportions.
func (l LayoutLength) String() string {
	if l.kind == ProportionLength {
		return percent.FromFraction(l.value).String()
	}
	return Px(l.value)
}

// Px formats a pixel value, e.g. "12.5px".
func Px(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32) + "px"
}
