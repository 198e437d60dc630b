package convert

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"r2/common"
	"r2/css"
	"r2/state"
)

// result is a single converted stylesheet.
type result struct {
	src    string
	sheet  *css.Stylesheet
	output []byte
}

// convertStylesheet parses UTF-8 css data and applies conversion requested in
// env. Source name is only used for logging and debug report.
func convertStylesheet(ctx context.Context, data []byte, src string, log *zap.Logger) (*result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	parser := css.NewParser(log, css.WithTranslators(env.Translators...))
	sheet, err := parser.Parse(data, src)
	if err != nil {
		return nil, fmt.Errorf("unable to parse stylesheet (%s): %w", src, err)
	}

	if env.Rpt != nil {
		name := filepath.ToSlash(src)
		env.Rpt.StoreData(path.Join("input", name), data)
		env.Rpt.StoreData(path.Join("dump", name+".txt"), []byte(sheet.Dump()))
	}

	switch env.Mode {
	case common.ConversionModeFlip:
		sheet.Flip()
		if len(env.Translations) > 0 {
			sheet.Translate(env.Translations)
		}
	case common.ConversionModeTranslate:
		if len(env.Translations) == 0 {
			log.Warn("No translations configured, stylesheet is copied as is", zap.String("source", src))
		}
		sheet.Translate(env.Translations)
	default:
		return nil, fmt.Errorf("unsupported conversion mode: %s", env.Mode)
	}

	res := &result{src: src, sheet: sheet, output: render(sheet, env.Layout)}

	if env.Cfg != nil && env.Cfg.Conversion.Verify {
		verifyOutput(res, log)
	}
	return res, nil
}

func render(sheet *css.Stylesheet, layout common.OutputLayout) []byte {
	if layout == common.OutputLayoutCompact {
		return []byte(sheet.Compact() + "\n")
	}
	return []byte(sheet.String())
}

// verifyOutput only warns, produced stylesheet is written regardless.
func verifyOutput(res *result, log *zap.Logger) {
	rules, err := css.Verify(res.output)
	if err != nil {
		log.Warn("Converted stylesheet does not re-parse", zap.String("source", res.src), zap.Error(err))
		return
	}
	if rules != len(res.sheet.Rules) {
		log.Warn("Converted stylesheet rule count mismatch",
			zap.String("source", res.src), zap.Int("expected", len(res.sheet.Rules)), zap.Int("found", rules))
	}
}
