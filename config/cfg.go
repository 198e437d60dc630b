package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"r2/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// TranslatorConfig describes a value translator applied after built-in
	// flip. Every match of Match in a declaration value has Find replaced by
	// Replace, empty Find replaces the whole match.
	TranslatorConfig struct {
		Match   string `yaml:"match" validate:"required"`
		Find    string `yaml:"find,omitempty"`
		Replace string `yaml:"replace"`
	}

	// TranslationConfig describes custom translation. Declaration is selected
	// when Property matches its property or Value matches its value, then
	// Find is replaced by Replace in the Target part.
	TranslationConfig struct {
		Property string `yaml:"property,omitempty" validate:"required_without=Value"`
		Value    string `yaml:"value,omitempty" validate:"required_without=Property"`
		Target   string `yaml:"target" validate:"required,oneof=property value"`
		Find     string `yaml:"find" validate:"required"`
		Replace  string `yaml:"replace"`
	}

	ConversionConfig struct {
		Layout                common.OutputLayout `yaml:"layout"`
		Verify                bool                `yaml:"verify"`
		OutputNameTemplate    string              `yaml:"output_name_template"`
		FileNameTransliterate bool                `yaml:"file_name_transliterate"`
		Suffix                string              `yaml:"suffix,omitempty"`
		Translators           []TranslatorConfig  `yaml:"translators" validate:"dive"`
		Translations          []TranslationConfig `yaml:"translations" validate:"dive"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Conversion ConversionConfig `yaml:"conversion"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// checkPatterns makes sure every configured regular expression compiles, so
// conversion could not fail half way through.
func checkPatterns(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	check := func(pattern, field string) {
		if pattern == "" {
			return
		}
		if _, err := regexp.Compile(pattern); err != nil {
			sl.ReportError(pattern, field, field, "regexp", "")
		}
	}
	for i, t := range cfg.Conversion.Translators {
		check(t.Match, fmt.Sprintf("Conversion.Translators[%d].Match", i))
		check(t.Find, fmt.Sprintf("Conversion.Translators[%d].Find", i))
	}
	for i, t := range cfg.Conversion.Translations {
		check(t.Property, fmt.Sprintf("Conversion.Translations[%d].Property", i))
		check(t.Value, fmt.Sprintf("Conversion.Translations[%d].Value", i))
		check(t.Find, fmt.Sprintf("Conversion.Translations[%d].Find", i))
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkPatterns)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
