package style

import (
	"errors"
	"strings"

	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/core/dimen"
	"github.com/npillmayer/flowbox/core/percent"
	"github.com/npillmayer/flowbox/engine/frame"
)

// ErrSyntax is returned for malformed style text. Errors wrap ErrSyntax and
// carry error code core.EINVALID.
var ErrSyntax = errors.New("style syntax error")

func syntaxError(format string, v ...interface{}) error {
	err := core.WrapError(ErrSyntax, core.EINVALID, format, v...)
	tracer().Errorf(err.Error())
	return err
}

// ParseLength parses a layout length. Plain numbers and pixel values are
// absolute lengths, percentages are proportions:
//
//     12      → Absolute(12)
//     12.5px  → Absolute(12.5)
//     80%     → Proportion(0.8)
//
// Negative values are rejected with an error wrapping frame.ErrOutOfRange.
func ParseLength(s string) (frame.LayoutLength, error) {
	v, ispcnt, err := dimen.ParseDimen(strings.TrimSpace(s))
	if err != nil {
		return frame.LayoutLength{}, syntaxError("illegal length %q", s)
	}
	if ispcnt {
		if v < 0 {
			return frame.Proportion(v / 100)
		}
		return frame.Proportion(percent.FromFloat(v).Fraction())
	}
	return frame.Absolute(v)
}

// parsePixels parses a list of 1 to 4 pixel values.
func parsePixels(s string) ([]float32, error) {
	fields := strings.Fields(s)
	if len(fields) < 1 || len(fields) > 4 {
		return nil, syntaxError("expected 1 to 4 values, have %q", s)
	}
	values := make([]float32, len(fields))
	for i, f := range fields {
		v, ispcnt, err := dimen.ParseDimen(f)
		if err != nil || ispcnt {
			return nil, syntaxError("illegal pixel value %q", f)
		}
		values[i] = v
	}
	return values, nil
}

// ParseThickness parses 1 to 4 pixel values, using CSS shorthand notation:
//
//     1px              → all sides
//     1px 2px          → top & bottom, left & right
//     1px 2px 3px      → top, left & right, bottom
//     1px 2px 3px 4px  → top, right, bottom, left
//
func ParseThickness(s string) (frame.Thickness, error) {
	v, err := parsePixels(s)
	if err != nil {
		return frame.Thickness{}, err
	}
	switch len(v) {
	case 1:
		return frame.UniformThickness(v[0]), nil
	case 2:
		return frame.Thickness{Top: v[0], Right: v[1], Bottom: v[0], Left: v[1]}, nil
	case 3:
		return frame.Thickness{Top: v[0], Right: v[1], Bottom: v[2], Left: v[1]}, nil
	}
	return frame.Thickness{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}, nil
}

// ParseCornerRadius parses 1 to 4 pixel values, using CSS shorthand notation
// for property border-radius:
//
//     1px              → all corners
//     1px 2px          → top-left & bottom-right, top-right & bottom-left
//     1px 2px 3px      → top-left, top-right & bottom-left, bottom-right
//     1px 2px 3px 4px  → top-left, top-right, bottom-right, bottom-left
//
// Negative radii are rejected with an error wrapping frame.ErrOutOfRange.
func ParseCornerRadius(s string) (frame.CornerRadius, error) {
	v, err := parsePixels(s)
	if err != nil {
		return frame.CornerRadius{}, err
	}
	for _, r := range v {
		if r < 0 {
			return frame.CornerRadius{}, core.WrapError(frame.ErrOutOfRange, core.EINVALID,
				"corner radius must not be negative: %q", s)
		}
	}
	switch len(v) {
	case 1:
		return frame.UniformRadius(v[0]), nil
	case 2:
		return frame.CornerRadius{TopLeft: v[0], TopRight: v[1], BottomRight: v[0], BottomLeft: v[1]}, nil
	case 3:
		return frame.CornerRadius{TopLeft: v[0], TopRight: v[1], BottomRight: v[2], BottomLeft: v[1]}, nil
	}
	return frame.CornerRadius{TopLeft: v[0], TopRight: v[1], BottomRight: v[2], BottomLeft: v[3]}, nil
}

// ParseHorizontalAlignment parses one of "left", "center" or "right".
func ParseHorizontalAlignment(s string) (frame.HorizontalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return frame.HAlignLeft, nil
	case "center":
		return frame.HAlignCenter, nil
	case "right":
		return frame.HAlignRight, nil
	}
	return frame.HAlignCenter, syntaxError("illegal horizontal alignment %q", s)
}

// ParseVerticalAlignment parses one of "top", "center" or "bottom".
func ParseVerticalAlignment(s string) (frame.VerticalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return frame.VAlignTop, nil
	case "center":
		return frame.VAlignCenter, nil
	case "bottom":
		return frame.VAlignBottom, nil
	}
	return frame.VAlignCenter, syntaxError("illegal vertical alignment %q", s)
}
