package css

import (
	"fmt"
	"regexp"
	"strings"
)

var rulePattern = regexp.MustCompile(`([^{]+)\{([^}]+)\}`)

// Rule is a selector with its ordered list of declarations.
type Rule struct {
	Selector     string
	Declarations []*Declaration
}

// ParseRule parses a single "selector{declarations}" block.
func ParseRule(text string) (*Rule, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: css argument can't be empty", ErrInvalidRule)
	}
	m := rulePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: css argument %q does not appear to be a valid CSS rule", ErrInvalidRule, text)
	}

	r := &Rule{Selector: m[1]}
	for _, frag := range splitDeclarations(m[2]) {
		d, err := ParseDeclaration(frag)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Selector, err)
		}
		r.Declarations = append(r.Declarations, d)
	}
	return r, nil
}

// splitDeclarations splits text on semicolons, except those immediately
// followed by "base64" which are part of data URIs. Blank fragments are
// dropped.
func splitDeclarations(text string) []string {
	var parts []string
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}

	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != ';' || strings.HasPrefix(text[i+1:], "base64") {
			continue
		}
		add(text[start:i])
		start = i + 1
	}
	add(text[start:])
	return parts
}

// Flip mirrors every declaration of the rule in place.
func (r *Rule) Flip(translators []*Translator) {
	for _, d := range r.Declarations {
		d.Flip(translators)
	}
}

// Translate applies every translation, in order, to each declaration.
func (r *Rule) Translate(translations []*Translation) {
	if len(translations) == 0 {
		return
	}
	for i, d := range r.Declarations {
		for _, t := range translations {
			d = t.Translate(d)
		}
		r.Declarations[i] = d
	}
}

// String returns rule with one indented declaration per line.
func (r *Rule) String() string {
	var sb strings.Builder
	writeRule(&sb, r) //nolint:errcheck
	return sb.String()
}

// Compact returns rule without any whitespace between components.
func (r *Rule) Compact() string {
	var sb strings.Builder
	sb.WriteString(r.Selector)
	sb.WriteByte('{')
	for _, d := range r.Declarations {
		sb.WriteString(d.Compact())
	}
	sb.WriteByte('}')
	return sb.String()
}
