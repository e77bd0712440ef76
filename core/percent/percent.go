// Package percent implements a simple and straightforward type for percentage values.
package percent

import (
	"errors"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Percent is a simple and straightforward type for percentage values.
// Values are not capped at 100%, as a child may be larger than its parent.
type Percent float32

// ErrNegative is returned for negative percentage strings.
var ErrNegative = errors.New("percentage must not be negative")

// FromInt creates a percentage of n. Negative values are clipped to 0.
func FromInt(n int) Percent {
	if n <= 0 {
		return Percent(0)
	}
	return Percent(n)
}

// FromFloat creates a percentage of f. Negative values and NaN are clipped to 0.
func FromFloat(f float32) Percent {
	switch {
	case f <= 0 || math32.IsNaN(f) || math32.IsInf(f, -1):
		return Percent(0)
	}
	return Percent(f)
}

// FromFraction creates a percentage from a fraction, i.e. 0.5 → 50%.
func FromFraction(f float32) Percent {
	return FromFloat(f * 100)
}

// FromString parses strings of the form "80%" or "80".
func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	n, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return Percent(0), err
	}
	if n < 0 {
		return Percent(0), ErrNegative
	}
	return Percent(n), nil
}

// Fraction returns p as a fraction, i.e. 80% → 0.8.
func (p Percent) Fraction() float32 {
	return float32(p) / 100
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'g', -1, 32) + "%"
}
