package css_test

import (
	"errors"
	"regexp"
	"testing"

	"r2/css"
)

func TestParseDeclaration(t *testing.T) {
	d, err := css.ParseDeclaration("direction:ltr")
	if err != nil {
		t.Fatalf("ParseDeclaration() error = %v", err)
	}
	if d.Property != "direction" {
		t.Errorf("Property = %q, want %q", d.Property, "direction")
	}
	if d.Value != "ltr" {
		t.Errorf("Value = %q, want %q", d.Value, "ltr")
	}
	if got := d.String(); got != "direction: ltr;" {
		t.Errorf("String() = %q, want %q", got, "direction: ltr;")
	}
	if got := d.Compact(); got != "direction:ltr;" {
		t.Errorf("Compact() = %q, want %q", got, "direction:ltr;")
	}
}

func TestParseDeclaration_FirstColon(t *testing.T) {
	d, err := css.ParseDeclaration("background:url(http://example.com/a.png)")
	if err != nil {
		t.Fatalf("ParseDeclaration() error = %v", err)
	}
	if d.Property != "background" || d.Value != "url(http://example.com/a.png)" {
		t.Errorf("got %q / %q", d.Property, d.Value)
	}
}

func TestParseDeclaration_Invalid(t *testing.T) {
	for _, in := range []string{"", "not a declaration", "padding:", ":"} {
		_, err := css.ParseDeclaration(in)
		if err == nil {
			t.Errorf("ParseDeclaration(%q) expected error", in)
			continue
		}
		if !errors.Is(err, css.ErrInvalidDeclaration) {
			t.Errorf("ParseDeclaration(%q) error = %v, want ErrInvalidDeclaration", in, err)
		}
	}

	_, err := css.ParseDeclaration("not a declaration")
	want := `invalid declaration: css argument "not a declaration" does not appear to be a valid CSS declaration`
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestDeclarationFlip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"padding-right:4px", "padding-left: 4px;"},
		{"direction:ltr", "direction: rtl;"},
		{"font-weight:bold", "font-weight: bold;"},
		{"left:10px", "right: 10px;"},
		{"padding:1px 2px 3px 4px", "padding: 1px 4px 3px 2px;"},
		{"-moz-box-shadow:1px 2px 3px 4px", "-moz-box-shadow: 1px 4px 3px 2px;"},
		{"-webkit-border-radius:1px 2px", "-webkit-border-radius: 2px 1px;"},
		{"clear:left", "clear: right;"},
		{"background-position:25px", "background-position: right 25px center;"},
		{"border-radius-topleft:5px", "border-radius-topright: 5px;"},
		{"-webkit-border-bottom-left-radius:2px", "-webkit-border-bottom-right-radius: 2px;"},
		{"border-left-color:red", "border-left-color: red;"},
	}

	for _, tt := range tests {
		d, err := css.ParseDeclaration(tt.in)
		if err != nil {
			t.Fatalf("ParseDeclaration(%q) error = %v", tt.in, err)
		}
		d.Flip(nil)
		if got := d.String(); got != tt.want {
			t.Errorf("Flip(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeclarationFlip_Translators(t *testing.T) {
	suffix, err := css.NewTranslator(regexp.MustCompile(`url\(([^)]*)\)`), func(m []string) string {
		return "url(" + regexp.MustCompile(`-ltr\.`).ReplaceAllString(m[1], "-rtl.") + ")"
	})
	if err != nil {
		t.Fatalf("NewTranslator() error = %v", err)
	}
	upper, err := css.NewTranslator(regexp.MustCompile(`rtl`), func(m []string) string { return "RTL" })
	if err != nil {
		t.Fatalf("NewTranslator() error = %v", err)
	}

	d := &css.Declaration{Property: "background", Value: "url(a-ltr.png) no-repeat"}
	d.Flip([]*css.Translator{suffix, upper})
	if d.Value != "url(a-RTL.png) no-repeat" {
		t.Errorf("Value = %q, translators must apply in order", d.Value)
	}

	// translators see the value after built-in swap
	d = &css.Declaration{Property: "direction", Value: "ltr"}
	d.Flip([]*css.Translator{upper})
	if d.Value != "RTL" {
		t.Errorf("Value = %q, want %q", d.Value, "RTL")
	}
}

func TestSwapDeclaration(t *testing.T) {
	tests := map[string]string{
		"":                        "",
		"not a decl":              "",
		"padding-right:4px":       "padding-left:4px;",
		"padding:1px 2px 3px 4px": "padding:1px 4px 3px 2px;",
		"foo:bar":                 "foo:bar;",
	}
	for in, want := range tests {
		if got := css.SwapDeclaration(in); got != want {
			t.Errorf("SwapDeclaration(%q) = %q, want %q", in, got, want)
		}
	}
}
