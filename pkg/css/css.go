// Package css assembles computed surface styles into a stylesheet for
// consumption by a web renderer or the CLI.
package css

import (
	"strings"

	"github.com/neu-ui/neu/pkg/style"
)

// Rule is a selector with its declarations.
type Rule struct {
	Selector string
	Decls    []style.Declaration
}

// RuleFor builds a rule from a computed style.
func RuleFor(selector string, s style.Style) Rule {
	return Rule{Selector: selector, Decls: s.Declarations()}
}

// String renders the rule with two-space indentation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector)
	b.WriteString(" {\n")
	for _, d := range r.Decls {
		b.WriteString("  ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// Add appends a rule and returns the sheet for chaining.
func (s *Stylesheet) Add(rule Rule) *Stylesheet {
	s.Rules = append(s.Rules, rule)
	return s
}

// String renders the sheet with blank lines between rules.
func (s *Stylesheet) String() string {
	parts := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		parts[i] = r.String()
	}
	return strings.Join(parts, "\n")
}
