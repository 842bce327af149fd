// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-tile-sync/internal/logger"
	"github.com/MKhiriev/go-tile-sync/models"
	"github.com/rs/zerolog"
)

// SyncStatusLoggingService records the outcome and duration of every call.
// If the incoming context carries no logger, the wrapper's own logger is
// attached so the inner service logs through it too.
type SyncStatusLoggingService struct {
	inner  SyncStatusService
	logger *logger.Logger
}

func NewSyncStatusLoggingService(log *logger.Logger) SyncStatusServiceWrapper {
	return &SyncStatusLoggingService{logger: log}
}

func (s *SyncStatusLoggingService) Wrap(inner SyncStatusService) SyncStatusService {
	s.inner = inner
	return s
}

func (s *SyncStatusLoggingService) Decode(ctx context.Context, r io.Reader) ([]models.SyncStatus, error) {
	ctx = s.withLogger(ctx)
	log := logger.FromContext(ctx)
	start := time.Now()

	statuses, err := s.inner.Decode(ctx, r)
	if err != nil {
		log.Err(err).Str("func", "SyncStatusLoggingService.Decode").Dur("elapsed", time.Since(start)).Msg("decode failed")
		return nil, err
	}

	log.Info().Str("func", "SyncStatusLoggingService.Decode").
		Int("count", len(statuses)).
		Dur("elapsed", time.Since(start)).
		Msg("sync statuses decoded")
	return statuses, nil
}

func (s *SyncStatusLoggingService) Validate(ctx context.Context, r io.Reader) (models.ValidationReport, error) {
	ctx = s.withLogger(ctx)
	log := logger.FromContext(ctx)
	start := time.Now()

	report, err := s.inner.Validate(ctx, r)
	if err != nil {
		log.Err(err).Str("func", "SyncStatusLoggingService.Validate").Dur("elapsed", time.Since(start)).Msg("validation aborted")
		return report, err
	}

	event := log.Info()
	if !report.OK() {
		event = log.Warn()
	}
	event.Str("func", "SyncStatusLoggingService.Validate").
		Int("total", report.Total).
		Int("valid", report.Valid).
		Int("failed", len(report.Failures)).
		Dur("elapsed", time.Since(start)).
		Msg("sync statuses validated")
	return report, nil
}

func (s *SyncStatusLoggingService) Encode(ctx context.Context, w io.Writer, statuses []models.SyncStatus, opts models.EncodeOptions) error {
	ctx = s.withLogger(ctx)
	log := logger.FromContext(ctx)

	if err := s.inner.Encode(ctx, w, statuses, opts); err != nil {
		log.Err(err).Str("func", "SyncStatusLoggingService.Encode").Int("count", len(statuses)).Msg("encode failed")
		return err
	}

	log.Debug().Str("func", "SyncStatusLoggingService.Encode").
		Int("count", len(statuses)).
		Bool("indent", opts.Indent).
		Msg("sync statuses encoded")
	return nil
}

func (s *SyncStatusLoggingService) withLogger(ctx context.Context) context.Context {
	if s.logger == nil || zerolog.Ctx(ctx).GetLevel() != zerolog.Disabled {
		return ctx
	}
	return s.logger.WithContext(ctx)
}
