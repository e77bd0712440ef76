package style

import (
	"regexp"
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// PseudoState is the interaction state of an element.
type PseudoState uint8

// Pseudo-states. Hover and Active may be set at the same time; when
// computing an element's style, hover is applied before active.
const (
	Hover PseudoState = 1 << iota
	Active
	Normal PseudoState = 0
)

// Rules holds the styles for an element ID: a base style and overlays for
// pseudo-states.
type Rules struct {
	Base   Style
	Hover  Style
	Active Style
}

// Resolve returns the base style with the overlays for state merged onto it.
func (r Rules) Resolve(state PseudoState) Style {
	s := r.Base
	if state&Hover != 0 {
		s = s.Merge(r.Hover)
	}
	if state&Active != 0 {
		s = s.Merge(r.Active)
	}
	return s
}

// Sheet maps element IDs to style rules.
type Sheet struct {
	rules map[string]*Rules
}

var selectorPattern = regexp.MustCompile(`^#([A-Za-z_][A-Za-z0-9_\-]*)(?::(hover|active))?$`)

// ParseSheet parses a style sheet. Selectors must be element IDs, optionally
// qualified by pseudo-class :hover or :active. A rule may list more than one
// selector, separated by commas. At-rules are not supported.
func ParseSheet(text string) (Sheet, error) {
	stylesheet, err := parser.Parse(text)
	if err != nil {
		return Sheet{}, syntaxError("%s", err.Error())
	}
	sheet := Sheet{rules: make(map[string]*Rules)}
	for _, rule := range stylesheet.Rules {
		if rule.Kind != css.QualifiedRule {
			return Sheet{}, syntaxError("at-rules are not supported: %s", rule.Name)
		}
		style, err := fromDeclarations(rule.Declarations)
		if err != nil {
			return Sheet{}, err
		}
		for _, sel := range rule.Selectors {
			m := selectorPattern.FindStringSubmatch(sel)
			if m == nil {
				return Sheet{}, syntaxError("illegal selector %q", sel)
			}
			r := sheet.rules[m[1]]
			if r == nil {
				r = &Rules{}
				sheet.rules[m[1]] = r
			}
			switch m[2] {
			case "hover":
				r.Hover = r.Hover.Merge(style)
			case "active":
				r.Active = r.Active.Merge(style)
			default:
				r.Base = r.Base.Merge(style)
			}
		}
	}
	tracer().Debugf("parsed style sheet with %d rule sets", len(sheet.rules))
	return sheet, nil
}

// Rules returns the rules for an element ID. If the sheet has no rules for id,
// all styles of the result are empty.
func (sh Sheet) Rules(id string) Rules {
	if r, ok := sh.rules[id]; ok {
		return *r
	}
	return Rules{}
}

// IDs returns the element IDs with rules in sh, sorted.
func (sh Sheet) IDs() []string {
	ids := make([]string, 0, len(sh.rules))
	for id := range sh.rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// String returns sh in a form accepted by ParseSheet.
func (sh Sheet) String() string {
	var b strings.Builder
	rule := func(sel string, s Style) {
		if s.IsEmpty() {
			return
		}
		b.WriteString(sel)
		b.WriteString(" { ")
		b.WriteString(s.String())
		b.WriteString(" }\n")
	}
	for _, id := range sh.IDs() {
		r := sh.rules[id]
		rule("#"+id, r.Base)
		rule("#"+id+":hover", r.Hover)
		rule("#"+id+":active", r.Active)
	}
	return b.String()
}
