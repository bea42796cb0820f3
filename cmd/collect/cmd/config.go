package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collection/collections"
)

// Config holds the CLI configuration.
type Config struct {
	Input  InputConfig  `toml:"input" yaml:"input" json:"input"`
	Output OutputConfig `toml:"output" yaml:"output" json:"output"`
	Log    LogConfig    `toml:"log" yaml:"log" json:"log"`
}

// InputConfig holds input settings
type InputConfig struct {
	// Format of standard input: json, yaml or toml.
	Format string `toml:"format" yaml:"format" json:"format"`
}

// OutputConfig holds output settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format" json:"format"`
	Indent int    `toml:"indent" yaml:"indent" json:"indent"`
	Color  bool   `toml:"color" yaml:"color" json:"color"`
	// Pack is the envelope format written by "collect pack".
	Pack string `toml:"pack" yaml:"pack" json:"pack"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level" yaml:"level" json:"level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{Format: "json"},
		Output: OutputConfig{
			Format: "json",
			Indent: 2,
			Pack:   "json",
		},
		Log: LogConfig{Level: "warn"},
	}
}

// LoadConfig reads a TOML, YAML or JSON config file, chosen by extension.
// Settings missing from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	path = os.ExpandEnv(path)

	format, err := collections.ParseFormat(filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config file not found: %w", err)
	}

	cfg := DefaultConfig()
	switch format {
	case collections.FormatTOML:
		_, err = toml.Decode(string(data), &cfg)
	case collections.FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Input.Format == "" {
		c.Input.Format = def.Input.Format
	}
	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
	if c.Output.Indent <= 0 {
		c.Output.Indent = def.Output.Indent
	}
	if c.Output.Pack == "" {
		c.Output.Pack = def.Output.Pack
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

func (c *Config) validate() error {
	if _, err := collections.ParseFormat(c.Input.Format); err != nil {
		return fmt.Errorf("input.format: %w", err)
	}
	if _, err := collections.ParseFormat(c.Output.Pack); err != nil {
		return fmt.Errorf("output.pack: %w", err)
	}
	switch strings.ToLower(c.Output.Format) {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("output.format: unsupported %q (json or yaml)", c.Output.Format)
	}
	return nil
}
