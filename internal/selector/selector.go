// Package selector implements the small CSS selector subset the SVG
// preprocessor consumes: universal, type, class and id selectors, compounds
// of those, and comma-separated selector lists. Combinators and
// pseudo-classes are out of scope.
package selector

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Element is the view of a DOM element a selector can interrogate.
type Element interface {
	TagName() string
	ID() string
	HasClass(name string) bool
}

// Selector is one parsed compound selector.
type Selector struct {
	Universal bool
	Tag       string
	ID        string
	Classes   []string
}

// Specificity returns the (a, b, c) CSS specificity packed into one int.
func (s *Selector) Specificity() int {
	spec := 0
	if s.ID != "" {
		spec += 1 << 16
	}
	spec += len(s.Classes) << 8
	if s.Tag != "" {
		spec++
	}
	return spec
}

// Matches reports whether the element satisfies every part of the compound.
func (s *Selector) Matches(e Element) bool {
	if s.Tag != "" && s.Tag != e.TagName() {
		return false
	}
	if s.ID != "" && s.ID != e.ID() {
		return false
	}
	for _, c := range s.Classes {
		if !e.HasClass(c) {
			return false
		}
	}
	return true
}

// ParseList parses a comma-separated selector list.
func ParseList(s string) ([]*Selector, error) {
	var list []*Selector
	for _, part := range strings.Split(s, ",") {
		sel, err := Parse(part)
		if err != nil {
			return nil, err
		}
		list = append(list, sel)
	}
	return list, nil
}

// Parse parses a single compound selector.
func Parse(s string) (*Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty selector")
	}

	l := css.NewLexer(parse.NewInputString(s))
	sel := &Selector{}
	expectClass := false
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if l.Err() == io.EOF {
				break
			}
			return nil, l.Err()
		}

		value := string(data)
		switch tt {
		case css.IdentToken:
			if expectClass {
				sel.Classes = append(sel.Classes, value)
				expectClass = false
				continue
			}
			if sel.Tag != "" || sel.Universal || sel.ID != "" || len(sel.Classes) > 0 {
				return nil, fmt.Errorf("unexpected type selector in %q", s)
			}
			sel.Tag = value
		case css.HashToken:
			if sel.ID != "" {
				return nil, fmt.Errorf("multiple id selectors in %q", s)
			}
			sel.ID = value[1:]
		case css.DelimToken:
			switch value {
			case ".":
				expectClass = true
			case "*":
				sel.Universal = true
			default:
				return nil, fmt.Errorf("unsupported selector %q", s)
			}
		default:
			return nil, fmt.Errorf("unsupported selector %q", s)
		}
	}
	if expectClass {
		return nil, fmt.Errorf("dangling '.' in selector %q", s)
	}
	return sel, nil
}
