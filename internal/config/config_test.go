package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ladder/internal/model"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Method = "flat"
	cfg.View = "interest"
	cfg.Input.Delimiter = ";"
	cfg.Input.DateFormat = "02.01.2006"
	cfg.Log.Format = "json"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "annuity", cfg.Method)
	assert.Equal(t, ViewAll, cfg.View)
	assert.Equal(t, "2006-01-02", cfg.Input.DateFormat)
	assert.Equal(t, "no", cfg.Input.DefaultInstallment)
	assert.Equal(t, "exports", cfg.Output.Directory)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("method: flat\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "flat", cfg.Method)
	assert.Equal(t, ViewAll, cfg.View)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("method: [flat\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "method: annuity")
	assert.Contains(t, contents, "view: all")
	assert.Contains(t, contents, "date_format:")
	assert.Contains(t, contents, "2006-01-02")
	assert.Contains(t, contents, "directory: exports")
	assert.NotContains(t, contents, "delimiter")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"method", func(c *Config) { c.Method = "balloon" }, "method"},
		{"view", func(c *Config) { c.View = "both" }, "view"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"delimiter", func(c *Config) { c.Input.Delimiter = ";;" }, "input.delimiter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestViews(t *testing.T) {
	cfg := Default()
	views, err := cfg.Views()
	require.NoError(t, err)
	assert.Equal(t, []model.View{model.ViewPrincipal, model.ViewInterest, model.ViewCombined}, views)

	cfg.View = "Combined"
	views, err = cfg.Views()
	require.NoError(t, err)
	assert.Equal(t, []model.View{model.ViewCombined}, views)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvMethod, "flat")
	t.Setenv(EnvView, "principal")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "flat", cfg.Method)
	assert.Equal(t, "principal", cfg.View)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("LADDER_TEST_ONLY_KEY=from-file\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("LADDER_TEST_ONLY_KEY") })

	require.NoError(t, LoadEnv(envFile))
	assert.Equal(t, "from-file", os.Getenv("LADDER_TEST_ONLY_KEY"))

	require.NoError(t, LoadEnv(filepath.Join(dir, "missing.env")))
	require.NoError(t, LoadEnv(""))
}

func TestLoanOptions(t *testing.T) {
	cfg := Default()
	cfg.Input.Delimiter = "\t"
	cfg.Input.DefaultInstallment = "Y"

	opts := cfg.LoanOptions()
	assert.Equal(t, '\t', opts.Delimiter)
	assert.Equal(t, "2006-01-02", opts.DateLayout)
	assert.Equal(t, model.InstallmentAmortizing, opts.DefaultInstallment)

	assert.Equal(t, rune(0), Default().LoanOptions().Delimiter)
}
