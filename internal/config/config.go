// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable read by the loader.
const EnvPrefix = "SYNCSTATUS_"

// Output formats accepted by Output.Format.
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// StructuredConfig is the top-level configuration container for the
// syncstatus tool. It is populated by merging defaults, an optional config
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
//   - json / yaml: keys used in the config file.
type StructuredConfig struct {
	// Log controls diagnostic output.
	Log Log `envPrefix:"LOG_" json:"log" yaml:"log"`

	// Output controls how command results are rendered.
	Output Output `envPrefix:"OUTPUT_" json:"output" yaml:"output"`

	// Input controls where documents are read from.
	Input Input `envPrefix:"INPUT_" json:"input" yaml:"input"`

	// ConfigPath is the optional path to a JSON or YAML configuration file.
	// Populated via SYNCSTATUS_CONFIG or the --config flag; never read from
	// the file itself.
	ConfigPath string `env:"CONFIG" json:"-" yaml:"-"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error, disabled).
	// Env: SYNCSTATUS_LOG_LEVEL
	Level string `env:"LEVEL" json:"level" yaml:"level"`

	// File, when set, receives log output instead of stderr.
	// Env: SYNCSTATUS_LOG_FILE
	File string `env:"FILE" json:"file" yaml:"file"`
}

// Output holds rendering settings.
type Output struct {
	// Format is either "json" or "table".
	// Env: SYNCSTATUS_OUTPUT_FORMAT
	Format string `env:"FORMAT" json:"format" yaml:"format"`

	// Indent pretty-prints JSON output.
	// Env: SYNCSTATUS_OUTPUT_INDENT
	Indent bool `env:"INDENT" json:"indent" yaml:"indent"`
}

// Input holds document source settings.
type Input struct {
	// Path of the document to read; empty or "-" means stdin.
	// Env: SYNCSTATUS_INPUT_PATH
	Path string `env:"PATH" json:"path" yaml:"path"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Log:    Log{Level: "warn"},
		Output: Output{Format: FormatJSON},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources. Later sources override earlier non-zero fields:
//  1. Built-in defaults
//  2. Config file (path taken from flags, then environment)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig(flags Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
