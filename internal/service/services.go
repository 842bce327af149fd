// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-tile-sync/internal/logger"
)

type Services struct {
	SyncStatusService SyncStatusService
}

func NewServices(logger *logger.Logger) *Services {
	return &Services{
		SyncStatusService: NewSyncStatusLoggingService(logger).Wrap(NewSyncStatusService()),
	}
}
