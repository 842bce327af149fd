// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// SyncStatusServiceWrapper defines middleware composition for
// SyncStatusService. Implementations wrap an existing SyncStatusService to
// add behavior such as logging.
type SyncStatusServiceWrapper interface {
	Wrap(SyncStatusService) SyncStatusService // returns a decorated SyncStatusService
}
