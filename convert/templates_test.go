package convert

import (
	"path/filepath"
	"strings"
	"testing"

	"r2/common"
	"r2/config"
)

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"simple text", "simple-text", "simple-text"},
		{"context", "{{ .Context }}", string(config.OutputNameTemplateFieldName)},
		{"source file", "{{ .SourceFile }}", "site.min"},
		{"source dir", "{{ .SourceDir }}", "themes/dark"},
		{"mode and layout", "{{ .Mode }}-{{ .Layout }}", "translate-compact"},
		{"suffix", "{{ .SourceFile }}{{ .Suffix }}", "site.min-translated"},
		{"rules", "{{ .Rules }}", "2"},
		{"selectors", `{{ join "," .Selectors }}`, "body,.nav"},
		{"sprig", `{{ .SourceFile | replace "." "_" | upper }}`, "SITE_MIN"},
		{"conditional", `{{ if eq .Layout "compact" }}min/{{ end }}{{ .SourceFile }}`, "min/site.min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, false, false, common.ConversionModeTranslate, "")
			env.Layout = common.OutputLayoutCompact
			res := setupTestResult(t, filepath.Join("themes", "dark", "site.min.css"))

			got, err := expandTemplate(res, config.OutputNameTemplateFieldName, tt.template, env)
			if err != nil {
				t.Fatalf("expandTemplate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTemplate_Errors(t *testing.T) {
	env := setupTestEnvForOutputPath(t, false, false, common.ConversionModeFlip, "")
	res := setupTestResult(t, "site.css")

	t.Run("parse", func(t *testing.T) {
		_, err := expandTemplate(res, config.OutputNameTemplateFieldName, "{{ .SourceFile", env)
		if err == nil || !strings.Contains(err.Error(), "unable to parse template field") {
			t.Errorf("expandTemplate() error = %v, want parse error", err)
		}
	})

	t.Run("execute", func(t *testing.T) {
		if _, err := expandTemplate(res, config.OutputNameTemplateFieldName, "{{ .NoSuchField }}", env); err == nil {
			t.Error("expandTemplate() expected error for unknown field")
		}
	})
}

func TestExpandTemplate_NoSheet(t *testing.T) {
	env := setupTestEnvForOutputPath(t, false, false, common.ConversionModeFlip, "")
	got, err := expandTemplate(&result{src: "a.css"}, config.OutputNameTemplateFieldName, "{{ .Rules }}-{{ len .Selectors }}", env)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if got != "0-0" {
		t.Errorf("expandTemplate() = %q, want %q", got, "0-0")
	}
}
