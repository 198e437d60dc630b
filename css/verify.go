package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Verify tokenizes rendered CSS with a grammar aware parser and returns the
// number of rulesets found. Error is returned on the first grammar problem.
func Verify(data []byte) (int, error) {
	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	rules := 0
	for {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return rules, fmt.Errorf("css does not re-parse after rule %d: %w", rules, err)
			}
			return rules, nil
		case css.BeginRulesetGrammar:
			rules++
		}
	}
}
