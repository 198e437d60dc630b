package state

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"r2/common"
	"r2/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Log != nil {
		t.Error("Logger must not be set before configuration is loaded")
	}
	if env.Layout != common.OutputLayoutPretty {
		t.Errorf("Layout = %v, want pretty", env.Layout)
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	time.Sleep(10 * time.Millisecond)
	uptime := env.Uptime()
	if uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		env := &LocalEnv{
			Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		}
		for i := range 3 {
			env.RedirectStdLog()
			if env.restoreStdLog == nil {
				t.Errorf("Iteration %d: restoreStdLog not set", i)
			}
			env.RestoreStdLog()
		}
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		// Should not panic
		env.RestoreStdLog()
	})
}

func loadDefaults(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	return cfg
}

func TestLocalEnv_PrepareConversion(t *testing.T) {
	cfg := loadDefaults(t)
	cfg.Conversion.Translators = []config.TranslatorConfig{{Match: `url\(`, Find: "ltr", Replace: "rtl"}}
	cfg.Conversion.Translations = []config.TranslationConfig{{Property: "color", Target: "property", Find: "color", Replace: "colour"}}

	t.Run("flip", func(t *testing.T) {
		env := &LocalEnv{Cfg: cfg, Log: zaptest.NewLogger(t)}
		if err := env.PrepareConversion(common.ConversionModeFlip, false); err != nil {
			t.Fatalf("PrepareConversion() error = %v", err)
		}
		if env.Mode != common.ConversionModeFlip || env.Layout != common.OutputLayoutPretty {
			t.Errorf("mode/layout = %v/%v", env.Mode, env.Layout)
		}
		if len(env.Translators) != 1 || len(env.Translations) != 1 {
			t.Errorf("translators = %d, translations = %d", len(env.Translators), len(env.Translations))
		}
	})

	t.Run("translate compact", func(t *testing.T) {
		env := &LocalEnv{Cfg: cfg}
		if err := env.PrepareConversion(common.ConversionModeTranslate, true); err != nil {
			t.Fatalf("PrepareConversion() error = %v", err)
		}
		if env.Layout != common.OutputLayoutCompact {
			t.Errorf("Layout = %v, want compact", env.Layout)
		}
		if env.Translators != nil {
			t.Error("translators are not used by translate")
		}
		if len(env.Translations) != 1 {
			t.Errorf("translations = %d, want 1", len(env.Translations))
		}
	})

	t.Run("no config", func(t *testing.T) {
		env := &LocalEnv{}
		if err := env.PrepareConversion(common.ConversionModeFlip, false); err == nil {
			t.Error("expected error without configuration")
		}
	})

	t.Run("bad translation", func(t *testing.T) {
		bad := *cfg
		bad.Conversion.Translations = []config.TranslationConfig{{Target: "value", Find: "a"}}
		env := &LocalEnv{Cfg: &bad}
		if err := env.PrepareConversion(common.ConversionModeTranslate, false); err == nil {
			t.Error("expected error for translation without matchers")
		}
	})
}
