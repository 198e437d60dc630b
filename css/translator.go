package css

import (
	"regexp"
	"strings"
)

// Submatcher finds the leftmost match and its groups, *regexp.Regexp is a
// Submatcher.
type Submatcher interface {
	FindStringSubmatch(s string) []string
}

// TranslatorFunc receives full match followed by captured groups and returns
// replacement for the matched text.
type TranslatorFunc func(match []string) string

// Translator modifies arbitrary CSS values. When its matcher matches a value
// the match is passed to the handler and matched text is replaced by the
// handler result.
//
// Converting `red` to `green`:
//
//	css.NewTranslator(regexp.MustCompile(`(red)`), func(m []string) string { return "green" })
type Translator struct {
	matcher Submatcher
	handler TranslatorFunc
}

// NewTranslator validates arguments and creates a Translator.
func NewTranslator(matcher Submatcher, handler TranslatorFunc) (*Translator, error) {
	if matcher == nil {
		return nil, ErrMatcher
	}
	if re, ok := matcher.(*regexp.Regexp); ok && re == nil {
		return nil, ErrMatcher
	}
	if handler == nil {
		return nil, ErrNoHandler
	}
	return &Translator{matcher: matcher, handler: handler}, nil
}

// Transform returns val with the first occurrence of matched text replaced
// by the handler result. Unmatched values are returned as is.
func (t *Translator) Transform(val string) string {
	m := t.matcher.FindStringSubmatch(val)
	if len(m) == 0 || m[0] == "" {
		return val
	}
	return strings.Replace(val, m[0], t.handler(m), 1)
}
