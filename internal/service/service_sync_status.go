// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-tile-sync/internal/logger"
	"github.com/MKhiriev/go-tile-sync/models"
)

type syncStatusService struct{}

// NewSyncStatusService returns the stateless SyncStatusService
// implementation.
func NewSyncStatusService() SyncStatusService {
	return &syncStatusService{}
}

func (s *syncStatusService) Decode(ctx context.Context, r io.Reader) ([]models.SyncStatus, error) {
	log := logger.FromContext(ctx)

	data, err := readDocument(ctx, r)
	if err != nil {
		return nil, err
	}

	if !isArrayDocument(data) {
		status, err := models.DecodeSyncStatus(data)
		if err != nil {
			return nil, err
		}
		return []models.SyncStatus{status}, nil
	}

	elements, err := models.SplitSyncStatuses(data)
	if err != nil {
		return nil, err
	}

	statuses := make([]models.SyncStatus, 0, len(elements))
	for i, raw := range elements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status, err := models.DecodeSyncStatus(raw)
		if err != nil {
			log.Debug().Str("func", "syncStatusService.Decode").Int("index", i).Err(err).Msg("element rejected")
			return nil, &models.ElementError{Index: i, Err: err}
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

func (s *syncStatusService) Validate(ctx context.Context, r io.Reader) (models.ValidationReport, error) {
	log := logger.FromContext(ctx)
	report := models.NewValidationReport()

	data, err := readDocument(ctx, r)
	if err != nil {
		return report, err
	}

	elements := []json.RawMessage{data}
	if isArrayDocument(data) {
		if elements, err = models.SplitSyncStatuses(data); err != nil {
			return report, err
		}
	}

	tiles := make(map[models.TileCoordinate]struct{}, len(elements))
	for i, raw := range elements {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		report.Total++
		status, err := models.DecodeSyncStatus(raw)
		if err != nil {
			log.Debug().Str("func", "syncStatusService.Validate").Int("index", i).Err(err).Msg("element rejected")
			report.Failures = append(report.Failures, newValidationFailure(i, err))
			continue
		}

		report.Valid++
		report.PoiUpdateTypes[status.PoiUpdateType]++
		report.ReviewUpdateTypes[status.ReviewUpdateType]++
		tiles[status.Tile()] = struct{}{}
	}
	report.Tiles = len(tiles)

	return report, nil
}

func (s *syncStatusService) Encode(ctx context.Context, w io.Writer, statuses []models.SyncStatus, opts models.EncodeOptions) error {
	encoded := make([]json.RawMessage, 0, len(statuses))
	for i, status := range statuses {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := models.EncodeSyncStatus(status)
		if err != nil {
			return &models.ElementError{Index: i, Err: err}
		}
		encoded = append(encoded, data)
	}

	var v any = encoded
	if len(encoded) == 1 && !opts.AsArray {
		v = encoded[0]
	}

	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteDocument, err)
	}

	return nil
}

func readDocument(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	return data, nil
}

func isArrayDocument(data []byte) bool {
	return len(data) > 0 && data[0] == '['
}

func newValidationFailure(index int, err error) models.ValidationFailure {
	failure := models.ValidationFailure{Index: index, Message: err.Error()}

	var parseErr *models.ParseError
	var variantErr *models.UnknownVariantError
	switch {
	case errors.As(err, &variantErr):
		failure.Key = variantErr.Key
	case errors.As(err, &parseErr):
		failure.Key = parseErr.Key
	}

	return failure
}
