package css_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"r2/css"
)

func TestNewTranslation_Invalid(t *testing.T) {
	noop := func(_, _ *string) {}
	var nilRegexp *regexp.Regexp

	tests := []struct {
		name     string
		matchers css.Matchers
		fn       css.TransformFunc
		want     error
	}{
		{"no matchers", nil, noop, css.ErrNoMatchers},
		{"empty matchers", css.Matchers{}, noop, css.ErrNoMatchers},
		{"invalid key", css.Matchers{"foo": regexp.MustCompile(`bar`)}, noop, css.ErrMatcherKey},
		{"nil matcher", css.Matchers{css.MatchValue: nil}, noop, css.ErrMatcher},
		{"nil regexp", css.Matchers{css.MatchValue: nilRegexp}, noop, css.ErrMatcher},
		{"no transform", css.Matchers{css.MatchValue: css.Literal("bar")}, nil, css.ErrNoTransform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := css.NewTranslation(tt.matchers, tt.fn)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewTranslation() error = %v, want %v", err, tt.want)
			}
			if tr != nil {
				t.Error("expected nil translation on error")
			}
		})
	}
}

func TestTranslation_Matcher(t *testing.T) {
	m := css.Literal("bar")
	tr, err := css.NewTranslation(css.Matchers{css.MatchValue: m}, func(_, v *string) {})
	if err != nil {
		t.Fatalf("NewTranslation() error = %v", err)
	}
	if got, ok := tr.Matcher(css.MatchValue); !ok || got != m {
		t.Errorf("Matcher(value) = %v, %v", got, ok)
	}
	if _, ok := tr.Matcher(css.MatchProperty); ok {
		t.Error("Matcher(property) should be absent")
	}
}

func TestTranslation_Translate(t *testing.T) {
	t.Run("property", func(t *testing.T) {
		tr, err := css.NewTranslation(css.Matchers{css.MatchProperty: regexp.MustCompile(`color`)}, func(p, _ *string) {
			*p = strings.ReplaceAll(*p, "color", "colour")
		})
		if err != nil {
			t.Fatalf("NewTranslation() error = %v", err)
		}
		d, _ := css.ParseDeclaration("color:red")
		got := tr.Translate(d)
		if got != d {
			t.Error("Translate() must return the same declaration")
		}
		if got.Property != "colour" || got.Value != "red" {
			t.Errorf("Translate() = %q / %q, want colour / red", got.Property, got.Value)
		}
	})

	t.Run("value", func(t *testing.T) {
		tr, err := css.NewTranslation(css.Matchers{css.MatchValue: regexp.MustCompile(`red`)}, func(_, v *string) {
			*v = strings.ReplaceAll(*v, "red", "green")
		})
		if err != nil {
			t.Fatalf("NewTranslation() error = %v", err)
		}
		d, _ := css.ParseDeclaration("color:red")
		if got := tr.Translate(d).Value; got != "green" {
			t.Errorf("Value = %q, want green", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		called := false
		tr, err := css.NewTranslation(css.Matchers{
			css.MatchProperty: css.Literal("margin"),
			css.MatchValue:    css.Literal("blue"),
		}, func(_, _ *string) { called = true })
		if err != nil {
			t.Fatalf("NewTranslation() error = %v", err)
		}
		d := &css.Declaration{Property: "color", Value: "red"}
		tr.Translate(d)
		if called {
			t.Error("transform must not run when nothing matches")
		}
		if d.Property != "color" || d.Value != "red" {
			t.Errorf("declaration changed: %v", d)
		}
	})

	t.Run("either matcher", func(t *testing.T) {
		tr, err := css.NewTranslation(css.Matchers{
			css.MatchProperty: css.Literal("margin"),
			css.MatchValue:    css.Literal("red"),
		}, func(_, v *string) { *v = "matched" })
		if err != nil {
			t.Fatalf("NewTranslation() error = %v", err)
		}
		d := &css.Declaration{Property: "color", Value: "red"}
		if tr.Translate(d).Value != "matched" {
			t.Error("value matcher alone must trigger transform")
		}
		d = &css.Declaration{Property: "margin", Value: "0"}
		if tr.Translate(d).Value != "matched" {
			t.Error("property matcher alone must trigger transform")
		}
	})
}

func TestTranslation_MatchersCopied(t *testing.T) {
	m := css.Matchers{css.MatchValue: css.Literal("red")}
	tr, err := css.NewTranslation(m, func(_, v *string) { *v = "green" })
	if err != nil {
		t.Fatalf("NewTranslation() error = %v", err)
	}
	delete(m, css.MatchValue)

	d := &css.Declaration{Property: "color", Value: "red"}
	if tr.Translate(d).Value != "green" {
		t.Error("translation must not depend on caller's matchers map")
	}
}
