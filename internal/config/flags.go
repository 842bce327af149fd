// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Flags carries the values of configuration-related command-line flags.
// Zero values mean "flag not given" and never override other sources.
//
// The CLI layer parses the flags; this package only merges them.
type Flags struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Format     string
	Indent     bool
	InputPath  string
}

func (f Flags) toStructured() *StructuredConfig {
	return &StructuredConfig{
		Log: Log{
			Level: f.LogLevel,
			File:  f.LogFile,
		},
		Output: Output{
			Format: f.Format,
			Indent: f.Indent,
		},
		Input: Input{
			Path: f.InputPath,
		},
		ConfigPath: f.ConfigPath,
	}
}
