package css

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchKey selects which part of a declaration a matcher looks at.
type MatchKey string

const (
	MatchProperty MatchKey = "property"
	MatchValue    MatchKey = "value"
)

// Matcher reports whether a string matches, *regexp.Regexp is a Matcher.
type Matcher interface {
	MatchString(s string) bool
}

// Literal is a Matcher looking for a plain substring.
type Literal string

// MatchString reports whether s contains the literal.
func (l Literal) MatchString(s string) bool {
	return strings.Contains(s, string(l))
}

// Matchers maps declaration parts to matchers.
type Matchers map[MatchKey]Matcher

// TransformFunc rewrites declaration property and value in place.
type TransformFunc func(property, value *string)

// Translation modifies arbitrary declarations. When either its property
// matcher matches declaration property or its value matcher matches
// declaration value the transform is executed.
type Translation struct {
	matchers  Matchers
	transform TransformFunc
}

// NewTranslation validates matchers and creates a Translation.
//
// Translation converting "color" properties to "colour":
//
//	css.NewTranslation(css.Matchers{css.MatchProperty: regexp.MustCompile(`color`)},
//		func(property, _ *string) {
//			*property = strings.ReplaceAll(*property, "color", "colour")
//		})
func NewTranslation(matchers Matchers, transform TransformFunc) (*Translation, error) {
	if len(matchers) == 0 {
		return nil, ErrNoMatchers
	}
	m := make(Matchers, len(matchers))
	for k, v := range matchers {
		if k != MatchProperty && k != MatchValue {
			return nil, fmt.Errorf("%w: %q", ErrMatcherKey, k)
		}
		if isNilMatcher(v) {
			return nil, fmt.Errorf("%w: %s matcher is nil", ErrMatcher, k)
		}
		m[k] = v
	}
	if transform == nil {
		return nil, ErrNoTransform
	}
	return &Translation{matchers: m, transform: transform}, nil
}

func isNilMatcher(m Matcher) bool {
	if m == nil {
		return true
	}
	re, ok := m.(*regexp.Regexp)
	return ok && re == nil
}

// Matcher returns matcher registered for the key, if any.
func (t *Translation) Matcher(key MatchKey) (Matcher, bool) {
	m, ok := t.matchers[key]
	return m, ok
}

// Matches reports whether translation applies to the declaration.
func (t *Translation) Matches(d *Declaration) bool {
	if m, ok := t.matchers[MatchProperty]; ok && m.MatchString(d.Property) {
		return true
	}
	if m, ok := t.matchers[MatchValue]; ok && m.MatchString(d.Value) {
		return true
	}
	return false
}

// Translate transforms declaration in place if it matches and returns it.
func (t *Translation) Translate(d *Declaration) *Declaration {
	if t.Matches(d) {
		t.transform(&d.Property, &d.Value)
	}
	return d
}
