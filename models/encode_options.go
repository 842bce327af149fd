// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncodeOptions controls how a batch of sync statuses is written out.
type EncodeOptions struct {
	// Indent pretty-prints the output with two-space indentation.
	Indent bool
	// AsArray forces array output even for a single status. Without it a
	// one-element batch is written as a bare object.
	AsArray bool
}
