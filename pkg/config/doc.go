// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads optional .env files into the
// process environment, and github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` tags:
//
//	type CLIConfig struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	    Lang     string `env:"BLUECHECK_LANG" envDefault:"en"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil { // optional
//	    return err
//	}
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each struct type is parsed once and cached for the lifetime of the process;
// ResetCache drops the cache, which tests use after changing variables. The
// default .env file is read on the first Load when it exists.
//
// Failures wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can
// be matched with errors.Is.
package config
