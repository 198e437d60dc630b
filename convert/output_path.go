package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"r2/config"
	"r2/state"
)

const outputExt = ".css"

// buildOutputPath returns constructed output file path/name based on various
// input parameters. It uses either default naming scheme or user-defined
// template and takes into account whether to preserve source directory
// structure on the output. It cleans up path and if requested transliterates
// it.
func buildOutputPath(res *result, src, dst string, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)
	if env.Cfg.Conversion.OutputNameTemplate != "" {
		if name := templateOutputPath(outDir, expandOutputNameTemplate(res, env), env); name != "" {
			return name
		}
		// fallback to default name if template expansion failed
	}
	return filepath.Join(outDir, buildDefaultFileName(src, env))
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

// outputSuffix is appended to default output names so converted stylesheet
// never replaces its source.
func outputSuffix(env *state.LocalEnv) string {
	if s := env.Cfg.Conversion.Suffix; s != "" {
		return s
	}
	return env.Mode.Suffix()
}

// outputName makes a single path element out of arbitrary text.
func outputName(name string, env *state.LocalEnv) string {
	if env.Cfg.Conversion.FileNameTransliterate {
		name = slug.Make(name)
	}
	return config.CleanFileName(name)
}

func buildDefaultFileName(src string, env *state.LocalEnv) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if env.Cfg.Conversion.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}
	return config.CleanFileName(baseName+outputSuffix(env)) + outputExt
}

func expandOutputNameTemplate(res *result, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(res, config.OutputNameTemplateFieldName, env.Cfg.Conversion.OutputNameTemplate, env)
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return strings.TrimSuffix(strings.TrimSpace(expandedName), outputExt)
}

// templateOutputPath places expanded template name under outDir. Name may use
// either slash to create subdirectories, "." and ".." elements are dropped so
// result never leaves outDir. Empty string is returned when nothing usable is
// left of the name.
func templateOutputPath(outDir, name string, env *state.LocalEnv) string {
	var elems []string
	for _, e := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if e = strings.TrimSpace(e); e != "" && e != "." && e != ".." {
			elems = append(elems, e)
		}
	}
	if len(elems) == 0 {
		return ""
	}
	parts := []string{outDir}
	for _, e := range elems {
		parts = append(parts, outputName(e, env))
	}
	parts[len(parts)-1] += outputExt
	return filepath.Join(parts...)
}
