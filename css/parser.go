package css

import (
	"fmt"
	"regexp"
	"slices"

	"go.uber.org/zap"
)

var blockPattern = regexp.MustCompile(`[^{]+\{[^}]+\}`)

// Parser parses CSS stylesheets into rules.
type Parser struct {
	log         *zap.Logger
	translators []*Translator
}

// ParserOption configures Parser.
type ParserOption func(*Parser)

// WithTranslators attaches translators to every parsed stylesheet. They are
// applied to declaration values after the built-in flip.
func WithTranslators(translators ...*Translator) ParserOption {
	return func(p *Parser) {
		for _, t := range translators {
			if t != nil {
				p.translators = append(p.translators, t)
			}
		}
	}
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger, opts ...ParserOption) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log.Named("css-parser")}
	for _, setOpt := range opts {
		setOpt(p)
	}
	return p
}

// Parse minimizes CSS text and splits it into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) (*Stylesheet, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: css argument can't be nil", ErrInvalidStylesheet)
	}

	log := p.log
	if len(source) > 0 && source[0] != "" {
		log = log.With(zap.String("source", source[0]))
	}
	log.Debug("Parsing CSS", zap.Int("bytes", len(data)))

	sheet := &Stylesheet{Translators: slices.Clone(p.translators)}
	for _, block := range blockPattern.FindAllString(Minimize(string(data)), -1) {
		rule, err := ParseRule(block)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStylesheet, err)
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	if len(sheet.Rules) == 0 {
		return nil, fmt.Errorf("%w: no CSS rules found", ErrInvalidStylesheet)
	}

	log.Debug("Parsed CSS", zap.Int("rules", len(sheet.Rules)), zap.Int("translators", len(sheet.Translators)))
	return sheet, nil
}

// ParseStylesheet parses css text without logging.
func ParseStylesheet(text string, translators ...*Translator) (*Stylesheet, error) {
	return NewParser(nil, WithTranslators(translators...)).Parse([]byte(text))
}
