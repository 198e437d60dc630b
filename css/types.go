package css

import (
	"fmt"
	"io"
	"strings"
)

// Stylesheet is an ordered list of rules together with translators consulted
// when the stylesheet is flipped.
type Stylesheet struct {
	Rules       []*Rule
	Translators []*Translator
}

// Flip mirrors every rule in place and returns resulting css text.
func (s *Stylesheet) Flip() string {
	for _, r := range s.Rules {
		r.Flip(s.Translators)
	}
	return s.String()
}

// Translate applies translations to every rule and returns the stylesheet so
// calls could be chained.
func (s *Stylesheet) Translate(translations []*Translation) *Stylesheet {
	for _, r := range s.Rules {
		r.Translate(translations)
	}
	return s
}

// RulesBySelector returns all rules with the given selector.
func (s *Stylesheet) RulesBySelector(selector string) []*Rule {
	var matches []*Rule
	for _, r := range s.Rules {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Every rule is followed by a new line.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, r := range s.Rules {
		n, err := writeRule(w, r)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = fmt.Fprint(w, "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// Compact returns the stylesheet as a single line without whitespace between
// components.
func (s *Stylesheet) Compact() string {
	var sb strings.Builder
	for _, r := range s.Rules {
		sb.WriteString(r.Compact())
	}
	return sb.String()
}

// writeRule writes a single CSS rule to w, without trailing new line.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "  %s\n", d)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}")
	total += n
	return total, err
}
