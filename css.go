package svgdom

import (
	"log/slog"
	"sort"
	"strings"

	douceur "github.com/aymerick/douceur/parser"

	"github.com/RazrFalcon/svgdom/internal/selector"
)

// selElem adapts a node to the selector matching interface.
type selElem struct {
	n *Node
}

func (e selElem) TagName() string { return e.n.tag.String() }
func (e selElem) ID() string      { return e.n.ID() }

func (e selElem) HasClass(name string) bool {
	for _, c := range elementClasses(e.n) {
		if c == name {
			return true
		}
	}
	return false
}

func elementClasses(n *Node) []string {
	v, ok := n.attrs.Get(AttrClass)
	if !ok {
		return nil
	}
	s, ok := v.(String)
	if !ok {
		return nil
	}
	return strings.Fields(string(s))
}

type cssRule struct {
	sel   *selector.Selector
	decls string
	order int
}

// resolveStylesheets applies every <style> stylesheet to the tree and
// removes the style elements. Rule declarations never overwrite attributes
// that are already present: the cascade places selectors below direct
// attributes and split style attributes.
func resolveStylesheets(doc *Document, opts *ParseOptions, log *slog.Logger) error {
	var styleNodes []*Node
	doc.Root().Descendants(func(n *Node) bool {
		if !n.Is(ElStyle) {
			return true
		}
		if v, ok := n.attrs.Get(AttrType); ok {
			if s, ok := v.(String); !ok || s != "" && s != "text/css" {
				return true
			}
		}
		styleNodes = append(styleNodes, n)
		return true
	})
	if len(styleNodes) == 0 {
		return nil
	}

	var rules []cssRule
	for _, styleNode := range styleNodes {
		sheet, err := douceur.Parse(TextContent(styleNode))
		if err != nil {
			if opts.SkipInvalidCSS {
				log.Warn("skipping invalid stylesheet", "error", err)
				continue
			}
			return &CSSError{Cause: err}
		}
		for _, rule := range sheet.Rules {
			if rule.Name != "" {
				log.Warn("skipping unsupported at-rule", "rule", rule.Name)
				continue
			}
			var decls strings.Builder
			for _, d := range rule.Declarations {
				decls.WriteString(d.Property)
				decls.WriteByte(':')
				decls.WriteString(d.Value)
				decls.WriteByte(';')
			}
			for _, raw := range rule.Selectors {
				sel, err := selector.Parse(raw)
				if err != nil {
					log.Warn("skipping unsupported selector", "selector", raw, "error", err)
					continue
				}
				rules = append(rules, cssRule{sel: sel, decls: decls.String(), order: len(rules)})
			}
		}
	}

	// Lowest precedence first so later applications win among rules.
	sort.SliceStable(rules, func(i, j int) bool {
		if si, sj := rules[i].sel.Specificity(), rules[j].sel.Specificity(); si != sj {
			return si < sj
		}
		return rules[i].order < rules[j].order
	})

	if len(rules) > 0 {
		doc.Root().Descendants(func(n *Node) bool {
			if !n.IsElement() || n.tag.ID == ElUnknown {
				return true
			}
			applyRules(n, rules, opts, log)
			return true
		})
	}

	resolveClasses(doc, rules, opts, log)

	for _, n := range styleNodes {
		n.Remove()
	}
	return nil
}

func applyRules(n *Node, rules []cssRule, opts *ParseOptions, log *slog.Logger) {
	// Attributes present before any rule applies outrank every rule.
	preexisting := map[QName]bool{}
	n.attrs.Each(func(a *Attribute) bool {
		preexisting[a.Name] = true
		return true
	})

	for _, r := range rules {
		if r.sel.Matches(selElem{n: n}) {
			applyDeclarations(n, r.decls, opts, log, preexisting)
		}
	}
}

// resolveClasses consumes class attributes: class names some rule used are
// removed; leftovers are dropped with a warning or kept, per options.
func resolveClasses(doc *Document, rules []cssRule, opts *ParseOptions, log *slog.Logger) {
	usedClasses := map[string]bool{}
	for _, r := range rules {
		for _, c := range r.sel.Classes {
			usedClasses[c] = true
		}
	}

	doc.Root().Descendants(func(n *Node) bool {
		classes := elementClasses(n)
		if len(classes) == 0 {
			return true
		}
		var unresolved []string
		for _, c := range classes {
			if !usedClasses[c] {
				unresolved = append(unresolved, c)
			}
		}
		if len(unresolved) == 0 || opts.SkipUnresolvedClasses {
			if len(unresolved) > 0 {
				log.Warn("dropping unresolved classes", "classes", strings.Join(unresolved, " "))
			}
			n.attrs.Remove(AttrClass)
			return true
		}
		n.attrs.Set(AttrClass, String(strings.Join(unresolved, " ")))
		return true
	})
}
