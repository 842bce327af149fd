// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrValidationFailed is returned by the validate command when at least
	// one element could not be decoded. The report has been printed already.
	ErrValidationFailed = errors.New("validation failed")
	// ErrInvalidFlag indicates a flag value outside its accepted range or set.
	ErrInvalidFlag = errors.New("invalid flag value")
)

// Exit codes returned by [ExitCode].
const (
	ExitOK               = 0
	ExitError            = 1
	ExitValidationFailed = 2
)

// ExitCode maps the error returned by [App.Run] to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	default:
		return ExitError
	}
}
