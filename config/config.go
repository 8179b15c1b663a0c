// Package config loads statkit settings from a TOML or YAML file.
//
// Every field has a default, so a file only needs the settings it changes:
//
//	# statkit.toml
//	dialect = "srd"
//	format = "foundry"
//
//	[foundry]
//	folder = "a1b2c3"
//
// Command-line flags override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/statkit/parser"
	"github.com/randalmurphal/statkit/writer"
	_ "github.com/randalmurphal/statkit/writer/writers"
)

// Sentinel errors for configuration.
var (
	// ErrInvalidConfig indicates a setting has an unusable value.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnsupportedFile indicates a config file extension that is neither
	// TOML nor YAML.
	ErrUnsupportedFile = errors.New("unsupported config file type")
)

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

// Config holds the settings shared by every command.
type Config struct {
	// Dialect is the input layout: "pdf", "srd" or "html".
	Dialect string `json:"dialect" yaml:"dialect" toml:"dialect"`

	// Format is the output writer name: "yaml", "latex" or "foundry".
	Format string `json:"format" yaml:"format" toml:"format"`

	// Fenced wraps YAML output in a ```statblock fence.
	Fenced bool `json:"fenced" yaml:"fenced" toml:"fenced"`

	// LaTeXTemplate is the path of a template file that replaces the
	// built-in LaTeX template.
	LaTeXTemplate string `json:"latex_template" yaml:"latex_template" toml:"latex_template"`

	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format"`

	// Foundry configures the Foundry actor writer.
	Foundry writer.FoundryOptions `json:"foundry" yaml:"foundry" toml:"foundry"`
}

// Default returns the built-in settings: PDF input, YAML output, info
// level text logs.
func Default() Config {
	return Config{
		Dialect:   parser.PDF.String(),
		Format:    "yaml",
		LogLevel:  "info",
		LogFormat: LogText,
	}
}

// Load reads path over the defaults and validates the result. The file
// type is chosen by extension: .toml, .yaml or .yml. Unknown keys are an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("%w: unknown key %s", ErrInvalidConfig, undecoded[0])
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, filepath.Base(path), err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := parser.ParseDialect(c.Dialect); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !writer.IsRegistered(c.Format) {
		return fmt.Errorf("%w: unknown format %q (available: %s)",
			ErrInvalidConfig, c.Format, strings.Join(writer.Available(), ", "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.LogFormat != LogText && c.LogFormat != LogJSON {
		return fmt.Errorf("%w: log_format must be %q or %q, got %q", ErrInvalidConfig, LogText, LogJSON, c.LogFormat)
	}
	return nil
}

// ParsedDialect returns the configured dialect.
func (c *Config) ParsedDialect() (parser.Dialect, error) {
	return parser.ParseDialect(c.Dialect)
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}

// WriterOptions builds the writer options, reading the LaTeX template file
// when one is configured.
func (c *Config) WriterOptions() (writer.Options, error) {
	opts := writer.Options{
		Fenced:  c.Fenced,
		Foundry: c.Foundry,
	}
	if c.LaTeXTemplate != "" {
		data, err := os.ReadFile(c.LaTeXTemplate)
		if err != nil {
			return opts, fmt.Errorf("read latex template: %w", err)
		}
		opts.Template = string(data)
	}
	return opts, nil
}
