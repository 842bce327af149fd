// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the batch operations behind the syncstatus
// commands: decoding, validating and encoding sync-status documents.
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-tile-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncStatusService defines batch operations over sync-status documents.
// Implementations perform no I/O beyond the reader and writer they are given
// and check ctx between elements.
type SyncStatusService interface {
	// Decode reads a document holding either one sync status object or an
	// array of them and returns the decoded statuses in input order.
	// Returns ErrEmptyDocument for blank input, a *models.ParseError or
	// *models.UnknownVariantError for a bad single object, and a
	// *models.ElementError for the first bad array element.
	Decode(ctx context.Context, r io.Reader) ([]models.SyncStatus, error)

	// Validate decodes every element of the document without stopping at the
	// first failure and returns a report with totals, per-element failures
	// and per-variant tallies. Only document-level problems (unreadable
	// input, an array that is not well-formed JSON, cancellation) are
	// returned as errors.
	Validate(ctx context.Context, r io.Reader) (models.ValidationReport, error)

	// Encode writes statuses as JSON followed by a newline. A single status
	// is written as a bare object unless opts.AsArray is set.
	// Returns a *models.ElementError if a status holds an undeclared update
	// type.
	Encode(ctx context.Context, w io.Writer, statuses []models.SyncStatus, opts models.EncodeOptions) error
}
