package state

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"r2/common"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:  time.Now(),
		Layout: common.OutputLayoutPretty,
	}
}

// PrepareConversion sets requested conversion mode and compiles configured
// translators and translations. Translators only make sense for flip.
func (e *LocalEnv) PrepareConversion(mode common.ConversionMode, compact bool) error {
	if e.Cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}
	e.Mode = mode

	e.Layout = e.Cfg.Conversion.Layout
	if compact {
		e.Layout = common.OutputLayoutCompact
	}

	var err error
	e.Translators = nil
	if mode == common.ConversionModeFlip {
		if e.Translators, err = e.Cfg.Conversion.CompileTranslators(); err != nil {
			return fmt.Errorf("unable to prepare translators: %w", err)
		}
	}
	if e.Translations, err = e.Cfg.Conversion.CompileTranslations(); err != nil {
		return fmt.Errorf("unable to prepare translations: %w", err)
	}

	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("Conversion prepared",
		zap.Stringer("mode", e.Mode), zap.Stringer("layout", e.Layout),
		zap.Int("translators", len(e.Translators)), zap.Int("translations", len(e.Translations)))
	return nil
}
