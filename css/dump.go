package css

import (
	"r2/utils/debug"
)

// Dump returns indented textual representation of the parsed stylesheet.
func (s *Stylesheet) Dump() string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "stylesheet: rules=%d translators=%d", len(s.Rules), len(s.Translators))
	for i, r := range s.Rules {
		tw.Line(1, "rule %d", i)
		tw.TextBlock(2, "selector", r.Selector)
		for _, d := range r.Declarations {
			tw.Line(2, "declaration")
			tw.TextBlock(3, "property", d.Property)
			tw.TextBlock(3, "value", d.Value)
		}
	}
	return tw.String()
}
