package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultPath is where the CLI looks for an optional toolchain config.
const DefaultPath = "config/toolchains.yaml"

// ToolchainEntry renames or disables the toolchain for one known language.
// The set of languages is fixed in the runner; config cannot add new ones.
type ToolchainEntry struct {
	Language string `yaml:"language"`
	Bin      string `yaml:"bin"`      // run binary, e.g. python3, /opt/jdk/bin/java
	Compiler string `yaml:"compiler"` // compile binary, e.g. rustc, javac
	Enabled  *bool  `yaml:"enabled"`  // nil means enabled
}

type Config struct {
	Toolchains []ToolchainEntry `yaml:"toolchains"`
}

// Load reads a toolchain config from path. Callers treat a load error as
// "no config": a nil *Config falls back to stock toolchains everywhere.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Bin returns the configured run binary for a language, or fallback when
// the config, entry, or field is absent. Safe on a nil receiver.
func (c *Config) Bin(language, fallback string) string {
	if c == nil {
		return fallback
	}
	for _, t := range c.Toolchains {
		if t.Language == language && t.Bin != "" {
			return t.Bin
		}
	}
	return fallback
}

// Compiler returns the configured compile binary for a language, or fallback.
func (c *Config) Compiler(language, fallback string) string {
	if c == nil {
		return fallback
	}
	for _, t := range c.Toolchains {
		if t.Language == language && t.Compiler != "" {
			return t.Compiler
		}
	}
	return fallback
}

// Enabled reports whether a language may run. Languages default to enabled.
func (c *Config) Enabled(language string) bool {
	if c == nil {
		return true
	}
	for _, t := range c.Toolchains {
		if t.Language == language && t.Enabled != nil {
			return *t.Enabled
		}
	}
	return true
}
