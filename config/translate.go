package config

import (
	"fmt"
	"regexp"

	"r2/css"
)

// CompileTranslators compiles configured value translators in order.
func (conf *ConversionConfig) CompileTranslators() ([]*css.Translator, error) {
	list := make([]*css.Translator, 0, len(conf.Translators))
	for i, tc := range conf.Translators {
		t, err := tc.compile()
		if err != nil {
			return nil, fmt.Errorf("translator %d: %w", i, err)
		}
		list = append(list, t)
	}
	return list, nil
}

func (tc TranslatorConfig) compile() (*css.Translator, error) {
	match, err := regexp.Compile(tc.Match)
	if err != nil {
		return nil, fmt.Errorf("bad match expression: %w", err)
	}
	if tc.Find == "" {
		replace := tc.Replace
		return css.NewTranslator(match, func([]string) string { return replace })
	}
	find, err := regexp.Compile(tc.Find)
	if err != nil {
		return nil, fmt.Errorf("bad find expression: %w", err)
	}
	replace := tc.Replace
	return css.NewTranslator(match, func(m []string) string {
		return find.ReplaceAllString(m[0], replace)
	})
}

// CompileTranslations compiles configured custom translations preserving order.
// Empty configuration results in nil.
func (conf *ConversionConfig) CompileTranslations() ([]*css.Translation, error) {
	defs := make([]css.Definition, 0, len(conf.Translations))
	for i, tc := range conf.Translations {
		d, err := tc.definition()
		if err != nil {
			return nil, fmt.Errorf("translation %d: %w", i, err)
		}
		defs = append(defs, d)
	}
	return css.Compile(defs...)
}

func (tc TranslationConfig) definition() (css.Definition, error) {
	matchers := css.Matchers{}
	for key, pattern := range map[css.MatchKey]string{css.MatchProperty: tc.Property, css.MatchValue: tc.Value} {
		if pattern == "" {
			continue
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return css.Definition{}, fmt.Errorf("bad %s expression: %w", key, err)
		}
		matchers[key] = re
	}

	find, err := regexp.Compile(tc.Find)
	if err != nil {
		return css.Definition{}, fmt.Errorf("bad find expression: %w", err)
	}
	replace := tc.Replace

	var transform css.TransformFunc
	switch css.MatchKey(tc.Target) {
	case css.MatchProperty:
		transform = func(property, _ *string) {
			*property = find.ReplaceAllString(*property, replace)
		}
	case css.MatchValue:
		transform = func(_, value *string) {
			*value = find.ReplaceAllString(*value, replace)
		}
	default:
		return css.Definition{}, fmt.Errorf("%w: unknown target %q", css.ErrMatcherKey, tc.Target)
	}
	return css.Match(matchers, transform), nil
}
