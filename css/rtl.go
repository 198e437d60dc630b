package css

import (
	"fmt"
	"slices"
)

// RTL returns built-in LTR <-> RTL translations in their fixed order:
// property rename, direction, text-align/float/clear, margin/padding,
// box-shadow, border-radius and background-position. They are built from the
// same table Declaration.Flip uses.
func RTL() []*Translation {
	names := make([]string, 0, len(propertyNames))
	for n := range propertyNames {
		names = append(names, n)
	}

	defs := make([]Definition, 0, len(valueGroups)+1)
	defs = append(defs, Match(Matchers{MatchProperty: exactPattern(names...)}, func(property, _ *string) {
		*property = renameProperty(*property)
	}))
	for _, g := range valueGroups {
		defs = append(defs, Match(Matchers{MatchProperty: exactPattern(g.properties...)}, func(_, value *string) {
			*value = g.swap(*value)
		}))
	}

	list, err := Compile(defs...)
	if err != nil {
		// built from static tables, this should never happen
		panic(fmt.Sprintf("unable to compile built-in translations: %v", err))
	}
	return list
}

// Flip parses css text, mirrors it and returns the result.
func Flip(text string) (string, error) {
	sheet, err := ParseStylesheet(text)
	if err != nil {
		return "", err
	}
	return sheet.Flip(), nil
}

// Translate parses css text and applies translations to it.
func Translate(text string, translations []*Translation) (*Stylesheet, error) {
	sheet, err := ParseStylesheet(text)
	if err != nil {
		return nil, err
	}
	return sheet.Translate(translations), nil
}

// R2 parses css text and applies built-in RTL translations followed by any
// extra translations.
func R2(text string, extra ...*Translation) (*Stylesheet, error) {
	return Translate(text, slices.Concat(RTL(), extra))
}

// SwapDeclaration flips a single declaration and returns it in compact form.
// Text which is not a declaration results in an empty string.
func SwapDeclaration(text string) string {
	d, err := ParseDeclaration(text)
	if err != nil {
		return ""
	}
	d.Flip(nil)
	return d.Compact()
}
