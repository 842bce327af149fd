// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrEmptyDocument = errors.New("empty sync status document")
	ErrReadDocument  = errors.New("error reading sync status document")
	ErrWriteDocument = errors.New("error writing sync status document")
)
