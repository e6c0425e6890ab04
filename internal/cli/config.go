package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/bluecheck/pkg/batch"
	"github.com/dmitrymomot/bluecheck/pkg/config"
	"github.com/dmitrymomot/bluecheck/pkg/logger"
)

// Config holds the settings read from the environment. Command line flags
// override them.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat   string `env:"LOG_FORMAT"`
	Lang        string `env:"BLUECHECK_LANG" envDefault:"en"`
	IBANCountry string `env:"BLUECHECK_IBAN_COUNTRY" envDefault:"PL"`
	Output      string `env:"BLUECHECK_OUTPUT" envDefault:"text"`
}

// flagValues mirrors Config for the persistent flags.
type flagValues struct {
	fs *pflag.FlagSet

	envFile     string
	logLevel    string
	logFormat   string
	lang        string
	ibanCountry string
	output      string
}

func (f *flagValues) register(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.envFile, "env-file", "", "load environment variables from this file first")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json; defaults to text in development and json in production (env LOG_FORMAT)")
	fs.StringVarP(&f.lang, "lang", "l", "", "message language, e.g. en, pl (env BLUECHECK_LANG)")
	fs.StringVar(&f.ibanCountry, "iban-country", "", "country prefixed to IBANs without one (env BLUECHECK_IBAN_COUNTRY)")
	fs.StringVarP(&f.output, "output", "o", "", "report format: text, json, yaml (env BLUECHECK_OUTPUT)")
}

func (f *flagValues) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// loadConfig reads the environment and applies the flags that were set.
func loadConfig(fs *pflag.FlagSet, f *flagValues) (Config, error) {
	var cfg Config

	if f.envFile != "" {
		if err := config.LoadEnv(f.envFile); err != nil {
			return cfg, errors.Join(ErrConfig, err)
		}
		config.ResetCache()
	}
	if err := config.Load(&cfg); err != nil {
		return cfg, errors.Join(ErrConfig, err)
	}

	override := func(name string, dst *string, val string) {
		if fs.Changed(name) {
			*dst = val
		}
	}
	override("log-level", &cfg.LogLevel, f.logLevel)
	override("log-format", &cfg.LogFormat, f.logFormat)
	override("lang", &cfg.Lang, f.lang)
	override("iban-country", &cfg.IBANCountry, f.ibanCountry)
	override("output", &cfg.Output, f.output)

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Join(ErrConfig, err)
	}
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: invalid log format %q", ErrConfig, c.LogFormat)
	}
	switch c.Output {
	case batch.FormatText, batch.FormatJSON, batch.FormatYAML:
	default:
		return fmt.Errorf("%w: invalid output format %q", ErrConfig, c.Output)
	}
	return nil
}
