package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"r2/config"
	"r2/state"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	SourceFile string
	SourceDir  string
	Mode       string
	Layout     string
	Suffix     string
	Rules      int
	Selectors  []string
}

func buildSelectors(res *result) []string {
	if res.sheet == nil {
		return nil
	}
	result := make([]string, 0, len(res.sheet.Rules))
	for _, r := range res.sheet.Rules {
		result = append(result, r.Selector)
	}
	return result
}

func expandTemplate(res *result, name config.TemplateFieldName, field string, env *state.LocalEnv) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		SourceFile: strings.TrimSuffix(filepath.Base(res.src), filepath.Ext(res.src)),
		SourceDir:  filepath.ToSlash(filepath.Dir(res.src)),
		Mode:       env.Mode.String(),
		Layout:     env.Layout.String(),
		Suffix:     outputSuffix(env),
		Selectors:  buildSelectors(res),
	}
	if res.sheet != nil {
		values.Rules = len(res.sheet.Rules)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
