// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

var (
	// ErrParse matches every [*ParseError] via errors.Is.
	ErrParse = errors.New("malformed sync status")
	// ErrUnknownVariant matches every [*UnknownVariantError] via errors.Is.
	ErrUnknownVariant = errors.New("unknown sync status type")

	errNotObject = errors.New("document is not a JSON object")
	errNotArray  = errors.New("document is not a JSON array")
)

// ParseError reports input that is not well-formed JSON, is not of the
// expected JSON kind, or carries a value of the wrong JSON type under a
// recognized key.
type ParseError struct {
	// Key is the offending object key. Empty for document-level failures.
	Key string
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", ErrParse, e.Err)
	}
	return fmt.Sprintf("%s: key %q: %v", ErrParse, e.Key, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// UnknownVariantError reports a sync status string outside the closed set
// None/Export/Sync/Delete.
type UnknownVariantError struct {
	// Key is the object key holding the value. Empty when the error comes from
	// [ParseSyncStatusType] directly.
	Key string
	// Value is the unrecognized string exactly as received.
	Value string
}

func (e *UnknownVariantError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s %q", ErrUnknownVariant, e.Value)
	}
	return fmt.Sprintf("%s %q for key %q", ErrUnknownVariant, e.Value, e.Key)
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

// ElementError attaches an array index to the failure of one element of a
// batch document.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}
