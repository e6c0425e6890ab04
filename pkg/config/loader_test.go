package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bluecheck/pkg/config"
)

type checkConfig struct {
	Lang    string `env:"BLUECHECK_TEST_LANG" envDefault:"en"`
	Country string `env:"BLUECHECK_TEST_COUNTRY" envDefault:"PL"`
	Strict  bool   `env:"BLUECHECK_TEST_STRICT" envDefault:"true"`
	Workers int    `env:"BLUECHECK_TEST_WORKERS" envDefault:"4"`
}

type defaultsConfig struct {
	Output string `env:"BLUECHECK_TEST_OUTPUT_DEFAULT" envDefault:"text"`
	Limit  int    `env:"BLUECHECK_TEST_LIMIT_DEFAULT" envDefault:"26"`
}

type singletonConfig struct {
	Value string `env:"BLUECHECK_TEST_SINGLETON"`
}

type requiredConfig struct {
	Required string `env:"BLUECHECK_TEST_REQUIRED,required"`
}

type envFileConfig struct {
	Lang    string `env:"BLUECHECK_TEST_LANG"`
	Country string `env:"BLUECHECK_TEST_COUNTRY"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("BLUECHECK_TEST_LANG", "pl")
	t.Setenv("BLUECHECK_TEST_COUNTRY", "DE")
	t.Setenv("BLUECHECK_TEST_STRICT", "false")
	t.Setenv("BLUECHECK_TEST_WORKERS", "8")
	config.ResetCache()

	var cfg checkConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, checkConfig{Lang: "pl", Country: "DE", Strict: false, Workers: 8}, cfg)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("BLUECHECK_TEST_OUTPUT_DEFAULT")
	os.Unsetenv("BLUECHECK_TEST_LIMIT_DEFAULT")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 26, cfg.Limit)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("BLUECHECK_TEST_SINGLETON", "first")

	var first singletonConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("BLUECHECK_TEST_SINGLETON", "second")

	var second singletonConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value is returned")

	config.ResetCache()
	var third singletonConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value, "reset forces a re-read")
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("BLUECHECK_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("BLUECHECK_TEST_REQUIRED", "present")
	require.NoError(t, config.Load(&cfg), "failed loads are retried")
	assert.Equal(t, "present", cfg.Required)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *checkConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("BLUECHECK_TEST_REQUIRED")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	// registered so the variables are restored after the test
	t.Setenv("BLUECHECK_TEST_LANG", "")
	t.Setenv("BLUECHECK_TEST_COUNTRY", "")
	os.Unsetenv("BLUECHECK_TEST_LANG")
	os.Unsetenv("BLUECHECK_TEST_COUNTRY")
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg envFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "pl", cfg.Lang)
	assert.Equal(t, "DE", cfg.Country)

	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
