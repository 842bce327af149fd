// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetStructuredConfig].
var (
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidOutputConfigs indicates an unknown output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrUnsupportedConfigFile indicates a config file whose extension is
	// neither JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file type")
)
