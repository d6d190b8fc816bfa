package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ladder/internal/loans"
	"github.com/cleared-dev/ladder/internal/model"
)

// FileName is the conventional config file name.
const FileName = "ladder.yaml"

// Environment overrides, applied after the file is loaded.
const (
	EnvMethod    = "LADDER_METHOD"
	EnvView      = "LADDER_VIEW"
	EnvLogLevel  = "LADDER_LOG_LEVEL"
	EnvLogFormat = "LADDER_LOG_FORMAT"
)

// ViewAll selects every view in a run.
const ViewAll = "all"

// Config represents the top-level ladder.yaml configuration.
type Config struct {
	Method string       `yaml:"method"`
	View   string       `yaml:"view"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig controls how loan files are read.
type InputConfig struct {
	Format             string `yaml:"format,omitempty"` // empty = from file extension
	DateFormat         string `yaml:"date_format"`      // Go layout, e.g. "2006-01-02"
	Delimiter          string `yaml:"delimiter,omitempty"`
	DefaultInstallment string `yaml:"default_installment"`
}

// OutputConfig controls where exports go.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// Load reads a ladder.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Method: string(model.MethodAnnuity),
		View:   ViewAll,
		Input: InputConfig{
			DateFormat:         loans.DefaultDateLayout,
			DefaultInstallment: string(model.InstallmentBullet),
		},
		Output: OutputConfig{
			Directory: "exports",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadEnv loads variables from envFile into the process environment. A
// missing file is not an error.
func LoadEnv(envFile string) error {
	if envFile == "" {
		return nil
	}
	if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}
	return nil
}

// ApplyEnv overrides fields from LADDER_* environment variables.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvMethod); ok && v != "" {
		c.Method = v
	}
	if v, ok := os.LookupEnv(EnvView); ok && v != "" {
		c.View = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := model.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("method: %w", err)
	}
	if _, err := c.Views(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	if utf8.RuneCountInString(c.Input.Delimiter) > 1 {
		return fmt.Errorf("input.delimiter: must be a single character, got %q", c.Input.Delimiter)
	}
	return nil
}

// RunMethod returns the configured default method.
func (c *Config) RunMethod() (model.Method, error) {
	return model.ParseMethod(c.Method)
}

// Views expands the configured view; "all" yields principal, interest and
// combined in that order.
func (c *Config) Views() ([]model.View, error) {
	if strings.EqualFold(strings.TrimSpace(c.View), ViewAll) {
		return model.Views(), nil
	}
	v, err := model.ParseView(c.View)
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}
	return []model.View{v}, nil
}

// LoanOptions converts the input section into ingestion options.
func (c *Config) LoanOptions() loans.Options {
	opts := loans.Options{
		DateLayout:         c.Input.DateFormat,
		DefaultInstallment: loans.ParseInstallment(c.Input.DefaultInstallment, model.InstallmentBullet),
	}
	if c.Input.Delimiter != "" {
		opts.Delimiter, _ = utf8.DecodeRuneInString(c.Input.Delimiter)
	}
	return opts
}
