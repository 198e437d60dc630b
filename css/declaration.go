package css

import (
	"fmt"
	"regexp"
)

var declarationPattern = regexp.MustCompile(`([^:]+):(.+)`)

// Declaration is a single property:value pair of a rule.
type Declaration struct {
	Property string
	Value    string
}

// ParseDeclaration splits text on the first colon into property and value.
func ParseDeclaration(text string) (*Declaration, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: css argument can't be empty", ErrInvalidDeclaration)
	}
	m := declarationPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: css argument %q does not appear to be a valid CSS declaration", ErrInvalidDeclaration, text)
	}
	return &Declaration{Property: m[1], Value: m[2]}, nil
}

// Flip mirrors declaration in place: property is renamed first, then value is
// rewritten according to the new property name and finally translators are
// applied to the value in order.
func (d *Declaration) Flip(translators []*Translator) {
	d.Property = renameProperty(d.Property)
	d.Value = swapValue(d.Property, d.Value)
	for _, t := range translators {
		d.Value = t.Transform(d.Value)
	}
}

// String returns declaration as "property: value;".
func (d *Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}

// Compact returns declaration as "property:value;".
func (d *Declaration) Compact() string {
	return d.Property + ":" + d.Value + ";"
}
