package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/flowbox/core"
	"github.com/npillmayer/flowbox/core/option"
	"github.com/npillmayer/flowbox/engine/frame"
)

// ErrUnknownProperty is returned for declarations of properties which do not
// affect layout. Errors wrap ErrUnknownProperty and carry error code
// core.EINVALID.
var ErrUnknownProperty = errors.New("unknown style property")

// Style holds the layout properties set by a list of declarations.
// Properties which have not been declared are unset.
type Style struct {
	Width               option.T[frame.LayoutLength]
	Height              option.T[frame.LayoutLength]
	Margin              option.T[frame.Thickness]
	Padding             option.T[frame.Thickness]
	BorderRadius        option.T[frame.CornerRadius]
	Flow                option.T[frame.Flow]
	HorizontalAlignment option.T[frame.HorizontalAlignment]
	VerticalAlignment   option.T[frame.VerticalAlignment]
}

// Property names, in the order they are written by Style.String.
const (
	PropWidth               = "width"
	PropHeight              = "height"
	PropMargin              = "margin"
	PropPadding             = "padding"
	PropBorderRadius        = "border-radius"
	PropFlow                = "flow"
	PropHorizontalAlignment = "horizontal-alignment"
	PropVerticalAlignment   = "vertical-alignment"
)

// Properties lists all property names known to this package.
var Properties = []string{
	PropWidth, PropHeight, PropMargin, PropPadding, PropBorderRadius,
	PropFlow, PropHorizontalAlignment, PropVerticalAlignment,
}

// ParseDeclarations parses a list of declarations, e.g.
//
//     width: 50%; margin: 2px 4px; flow: row wrap
//
// The final semicolon is optional. Later declarations override earlier ones.
func ParseDeclarations(text string) (Style, error) {
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") && !strings.HasSuffix(text, "}") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return Style{}, syntaxError("%s", err.Error())
	}
	return fromDeclarations(decls)
}

func fromDeclarations(decls []*css.Declaration) (Style, error) {
	s := Style{}
	for _, d := range decls {
		if err := s.Set(d.Property, d.Value); err != nil {
			return Style{}, err
		}
	}
	return s, nil
}

// Set sets a single property from its textual value.
func (s *Style) Set(property, value string) error {
	tracer().Debugf("style: %s = %q", property, value)
	var err error
	switch strings.ToLower(strings.TrimSpace(property)) {
	case PropWidth:
		err = setOption(&s.Width, value, ParseLength)
	case PropHeight:
		err = setOption(&s.Height, value, ParseLength)
	case PropMargin:
		err = setOption(&s.Margin, value, ParseThickness)
	case PropPadding:
		err = setOption(&s.Padding, value, ParseThickness)
	case PropBorderRadius:
		err = setOption(&s.BorderRadius, value, ParseCornerRadius)
	case PropFlow:
		err = setOption(&s.Flow, value, frame.ParseFlow)
	case PropHorizontalAlignment:
		err = setOption(&s.HorizontalAlignment, value, ParseHorizontalAlignment)
	case PropVerticalAlignment:
		err = setOption(&s.VerticalAlignment, value, ParseVerticalAlignment)
	default:
		tracer().Errorf("unknown property %q", property)
		return core.WrapError(ErrUnknownProperty, core.EINVALID, "unknown property %q", property)
	}
	return err
}

// setOption sets field only if value parses without error.
func setOption[V any](field *option.T[V], value string, parse func(string) (V, error)) error {
	v, err := parse(value)
	if err != nil {
		return err
	}
	*field = option.Some(v)
	return nil
}

// Merge returns a style with all properties set in over, and the
// properties of s for those not set in over.
func (s Style) Merge(over Style) Style {
	return Style{
		Width:               over.Width.Else(s.Width),
		Height:              over.Height.Else(s.Height),
		Margin:              over.Margin.Else(s.Margin),
		Padding:             over.Padding.Else(s.Padding),
		BorderRadius:        over.BorderRadius.Else(s.BorderRadius),
		Flow:                over.Flow.Else(s.Flow),
		HorizontalAlignment: over.HorizontalAlignment.Else(s.HorizontalAlignment),
		VerticalAlignment:   over.VerticalAlignment.Else(s.VerticalAlignment),
	}
}

// Apply returns base with all properties of s applied which are part of an
// element's layout info. Padding and flow concern an element's children and
// are not part of frame.ElementLayoutInfo.
func (s Style) Apply(base frame.ElementLayoutInfo) frame.ElementLayoutInfo {
	return frame.ElementLayoutInfo{
		Width:               s.Width.Or(base.Width),
		Height:              s.Height.Or(base.Height),
		Margin:              s.Margin.Or(base.Margin),
		HorizontalAlignment: s.HorizontalAlignment.Or(base.HorizontalAlignment),
		VerticalAlignment:   s.VerticalAlignment.Or(base.VerticalAlignment),
		BorderRadius:        s.BorderRadius.Or(base.BorderRadius),
	}
}

// IsEmpty is true if no property of s is set.
func (s Style) IsEmpty() bool {
	return s == Style{}
}

// String returns the declarations for all properties set in s, in a form
// accepted by ParseDeclarations.
func (s Style) String() string {
	var b strings.Builder
	declare(&b, PropWidth, s.Width)
	declare(&b, PropHeight, s.Height)
	declare(&b, PropMargin, s.Margin)
	declare(&b, PropPadding, s.Padding)
	declare(&b, PropBorderRadius, s.BorderRadius)
	declare(&b, PropFlow, s.Flow)
	declare(&b, PropHorizontalAlignment, s.HorizontalAlignment)
	declare(&b, PropVerticalAlignment, s.VerticalAlignment)
	return b.String()
}

// declare writes "prop: value;" to b if o is set.
func declare[V fmt.Stringer](b *strings.Builder, prop string, o option.T[V]) {
	option.Match(o,
		func() int { return 0 },
		func(v V) int {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			n, _ := fmt.Fprintf(b, "%s: %s;", prop, v.String())
			return n
		})
}
