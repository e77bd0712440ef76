package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/flowbox/core"
	"golang.org/x/text/cases"
)

// Direction is the direction in which a parent lines up its children.
type Direction uint8

// Flow directions. With direction None, every child is positioned by its
// alignment only, independently of its siblings.
const (
	None Direction = iota
	Row
	Column
	RowReverse
	ColumnReverse
)

var allDirections = []Direction{None, Row, Column, RowReverse, ColumnReverse}

// IsReverse is true for directions which advance from the trailing edge
// backwards.
func (dir Direction) IsReverse() bool {
	return dir == RowReverse || dir == ColumnReverse
}

// IsHorizontal is true for row directions.
func (dir Direction) IsHorizontal() bool {
	return dir == Row || dir == RowReverse
}

func (dir Direction) String() string {
	switch dir {
	case Row:
		return "row"
	case Column:
		return "column"
	case RowReverse:
		return "row-reverse"
	case ColumnReverse:
		return "column-reverse"
	}
	return "none"
}

// Symbol returns a Unicode symbol for a direction.
func (dir Direction) Symbol() string {
	switch dir {
	case Row:
		return "→"
	case Column:
		return "↓"
	case RowReverse:
		return "←"
	case ColumnReverse:
		return "↑"
	}
	return "▣"
}

// WrapMode determines whether children which overflow the main axis of
// their parent start a new line.
type WrapMode uint8

// Wrap modes. WrapReverse stacks lines in reverse cross-axis direction.
const (
	NoWrap WrapMode = iota
	Wrap
	WrapReverse
)

var allWrapModes = []WrapMode{NoWrap, Wrap, WrapReverse}

func (w WrapMode) String() string {
	switch w {
	case Wrap:
		return "wrap"
	case WrapReverse:
		return "wrap-reverse"
	}
	return "no-wrap"
}

// Flow combines a direction and a wrap mode.
// The zero value is direction None without wrapping.
type Flow struct {
	Direction Direction
	Wrap      WrapMode
}

// String returns a flow in the form accepted by ParseFlow, e.g. "row wrap".
// The wrap mode is omitted if it is NoWrap or the direction is None.
func (f Flow) String() string {
	if f.Direction == None || f.Wrap == NoWrap {
		return f.Direction.String()
	}
	return f.Direction.String() + " " + f.Wrap.String()
}

// Symbol returns a Unicode symbol for a flow.
func (f Flow) Symbol() string {
	switch f.Wrap {
	case Wrap:
		return f.Direction.Symbol() + "↵"
	case WrapReverse:
		return f.Direction.Symbol() + "↳"
	}
	return f.Direction.Symbol()
}

// ErrFlowFormat is returned by ParseFlow for unrecognized input.
var ErrFlowFormat = errors.New("cannot parse flow")

// ParseFlow parses a flow from a string of the form "<direction> [<wrap>]".
// Keywords are case-insensitive and may be written in kebab-case
// ("row-reverse") or camel-case ("RowReverse").
//
//     ParseFlow("column")             →  {Column, NoWrap}
//     ParseFlow("RowReverse Wrap")    →  {RowReverse, Wrap}
//
// Errors wrap ErrFlowFormat and carry error code core.EINVALID.
func ParseFlow(s string) (Flow, error) {
	fields := strings.Fields(s)
	if len(fields) < 1 || len(fields) > 2 {
		return Flow{}, flowError(s)
	}
	flow := Flow{}
	var ok bool
	if flow.Direction, ok = lookupDirection(fields[0]); !ok {
		return Flow{}, flowError(s)
	}
	if len(fields) == 2 {
		if flow.Wrap, ok = lookupWrapMode(fields[1]); !ok {
			return Flow{}, flowError(s)
		}
	}
	return flow, nil
}

func flowError(s string) error {
	tracer().Errorf("illegal flow: %q", s)
	return core.WrapError(ErrFlowFormat, core.EINVALID, "illegal flow %q", s)
}

func lookupDirection(s string) (Direction, bool) {
	s = normalizeKeyword(s)
	for _, d := range allDirections {
		if normalizeKeyword(d.String()) == s {
			return d, true
		}
	}
	return None, false
}

func lookupWrapMode(s string) (WrapMode, bool) {
	s = normalizeKeyword(s)
	for _, w := range allWrapModes {
		if normalizeKeyword(w.String()) == s {
			return w, true
		}
	}
	return NoWrap, false
}

// normalizeKeyword folds "RowReverse", "row-reverse" and "row_reverse" to
// "rowreverse".
func normalizeKeyword(s string) string {
	return cases.Fold().String(keywordSeparators.Replace(s))
}

var keywordSeparators = strings.NewReplacer("-", "", "_", "")

// GoString is a debugging helper.
func (f Flow) GoString() string {
	return fmt.Sprintf("frame.Flow{%s %s}", f.Direction, f.Wrap)
}
