package option

import (
	"fmt"
)

// T is an optional value of type V. The zero value of T is unset.
type T[V any] struct {
	value V
	set   bool
}

// Some creates an optional value with an initial value of x.
func Some[V any](x V) T[V] {
	return T[V]{value: x, set: true}
}

// None creates an optional value without a value.
func None[V any]() T[V] {
	return T[V]{}
}

// IsNone returns true if o is unset.
func (o T[V]) IsNone() bool {
	return !o.set
}

// Unwrap returns the value of o, or V's zero value if o is unset.
func (o T[V]) Unwrap() V {
	return o.value
}

// Or returns the value of o, or dflt if o is unset.
func (o T[V]) Or(dflt V) V {
	if !o.set {
		return dflt
	}
	return o.value
}

// Else returns o if it is set, other otherwise.
func (o T[V]) Else(other T[V]) T[V] {
	if !o.set {
		return other
	}
	return o
}

func (o T[V]) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Match calls some with o's value if o is set, and none otherwise.
//
//     s := option.Match(o,
//          func() string { return "-" },
//          func(x int) string { return strconv.Itoa(x) })
//
func Match[V, R any](o T[V], none func() R, some func(V) R) R {
	if o.IsNone() {
		tracer().Debugf("option match: None")
		return none()
	}
	return some(o.value)
}
