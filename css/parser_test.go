package css_test

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"r2/css"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// urlSuffixTranslator rewrites "-ltr." to "-rtl." inside url() values.
func urlSuffixTranslator(t *testing.T) *css.Translator {
	t.Helper()
	tr, err := css.NewTranslator(regexp.MustCompile(`url[\s]*\([\s]*([^\)]*)[\s]*\)[\s]*`), func(m []string) string {
		return strings.ReplaceAll(m[0], "-ltr.", "-rtl.")
	})
	if err != nil {
		t.Fatalf("NewTranslator() error = %v", err)
	}
	return tr
}

func TestParser_Parse(t *testing.T) {
	ltr := readFixture(t, "ltr.css")

	p := css.NewParser(zaptest.NewLogger(t))
	sheet, err := p.Parse([]byte(ltr), "ltr.css")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(sheet.Rules))
	}
	if sheet.Rules[0].Selector != "body" || sheet.Rules[1].Selector != ".logo" {
		t.Errorf("selectors = %q, %q", sheet.Rules[0].Selector, sheet.Rules[1].Selector)
	}
	if len(sheet.Rules[0].Declarations) != 6 {
		t.Errorf("expected 6 declarations in body, got %d", len(sheet.Rules[0].Declarations))
	}
	if len(sheet.Translators) != 0 {
		t.Errorf("expected no translators, got %d", len(sheet.Translators))
	}

	// fixture is already in canonical form
	if got := sheet.String(); got != ltr {
		t.Errorf("String() = %q, want %q", got, ltr)
	}
}

func TestParser_Invalid(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	_, err := p.Parse(nil)
	if !errors.Is(err, css.ErrInvalidStylesheet) {
		t.Errorf("Parse(nil) error = %v, want ErrInvalidStylesheet", err)
	}
	if err == nil || !strings.Contains(err.Error(), "can't be nil") {
		t.Errorf("Parse(nil) error = %v", err)
	}

	for _, in := range []string{"", "not a stylesheet", "a{}", "/* a{b:c} */"} {
		_, err := p.Parse([]byte(in))
		if !errors.Is(err, css.ErrInvalidStylesheet) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidStylesheet", in, err)
			continue
		}
		if !strings.Contains(err.Error(), "no CSS rules found") {
			t.Errorf("Parse(%q) error = %v", in, err)
		}
	}
}

func TestParser_InvalidDeclaration(t *testing.T) {
	_, err := css.ParseStylesheet("a{color:red}b{oops}")
	if !errors.Is(err, css.ErrInvalidStylesheet) || !errors.Is(err, css.ErrInvalidDeclaration) {
		t.Errorf("error = %v, want both ErrInvalidStylesheet and ErrInvalidDeclaration", err)
	}
}

func TestParser_WithTranslators(t *testing.T) {
	tr := urlSuffixTranslator(t)

	p := css.NewParser(nil, css.WithTranslators(tr, nil))
	sheet, err := p.Parse([]byte(readFixture(t, "ltr.css")))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sheet.Translators) != 1 || sheet.Translators[0] != tr {
		t.Errorf("Translators = %v, want [%v]", sheet.Translators, tr)
	}
}

func TestStylesheet_Flip(t *testing.T) {
	sheet, err := css.ParseStylesheet(readFixture(t, "ltr.css"), urlSuffixTranslator(t))
	if err != nil {
		t.Fatalf("ParseStylesheet() error = %v", err)
	}
	want := readFixture(t, "rtl.css")
	if got := sheet.Flip(); got != want {
		t.Errorf("Flip() = %q, want %q", got, want)
	}
	if got := sheet.String(); got != want {
		t.Errorf("String() after Flip() = %q, want %q", got, want)
	}
}

func TestStylesheet_FlipTwice(t *testing.T) {
	ltr := readFixture(t, "ltr.css")
	sheet, err := css.ParseStylesheet(ltr)
	if err != nil {
		t.Fatalf("ParseStylesheet() error = %v", err)
	}
	sheet.Flip()
	if got := sheet.Flip(); got != ltr {
		t.Errorf("flipping twice = %q, want original %q", got, ltr)
	}
}

func TestStylesheet_Compact(t *testing.T) {
	sheet, err := css.ParseStylesheet("/* comment */\nbody { direction: rtl; }\nimg { padding: 4px;}")
	if err != nil {
		t.Fatalf("ParseStylesheet() error = %v", err)
	}
	sheet.Flip()
	if got := sheet.Compact(); got != "body{direction:ltr;}img{padding:4px;}" {
		t.Errorf("Compact() = %q", got)
	}
}

func TestStylesheet_RulesBySelector(t *testing.T) {
	sheet, err := css.ParseStylesheet("a{color:red}b{color:blue}a{float:left}")
	if err != nil {
		t.Fatalf("ParseStylesheet() error = %v", err)
	}
	if got := len(sheet.RulesBySelector("a")); got != 2 {
		t.Errorf("expected 2 rules for 'a', got %d", got)
	}
	if got := len(sheet.RulesBySelector("i")); got != 0 {
		t.Errorf("expected no rules for 'i', got %d", got)
	}
}

func TestStylesheet_WriteTo(t *testing.T) {
	sheet, err := css.ParseStylesheet("a{color:red}b{float:left}")
	if err != nil {
		t.Fatalf("ParseStylesheet() error = %v", err)
	}
	var sb strings.Builder
	n, err := sheet.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	want := "a {\n  color: red;\n}\nb {\n  float: left;\n}\n"
	if sb.String() != want {
		t.Errorf("WriteTo() wrote %q, want %q", sb.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() = %d, want %d", n, len(want))
	}
}

func TestStylesheet_Translate(t *testing.T) {
	sheet, err := css.ParseStylesheet("a{color:red}")
	if err != nil {
		t.Fatalf("ParseStylesheet() error = %v", err)
	}
	list, err := css.Compile(css.Match(css.Matchers{css.MatchValue: css.Literal("red")}, func(_, v *string) {
		*v = "green"
	}))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if got := sheet.Translate(list).String(); got != "a {\n  color: green;\n}\n" {
		t.Errorf("Translate().String() = %q", got)
	}
}
