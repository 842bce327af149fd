// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// SyncStatusType is the pending synchronization action for one kind of tile
// data (points of interest or reviews).
//
// The zero value is [SyncStatusNone], so a status that was never set reads as
// "nothing to do".
type SyncStatusType int

const (
	// SyncStatusNone means the tile needs no action.
	SyncStatusNone SyncStatusType = iota
	// SyncStatusExport means the full tile data should be exported (downloaded).
	SyncStatusExport
	// SyncStatusSync means only incremental changes should be synchronized.
	SyncStatusSync
	// SyncStatusDelete means the local copy of the tile data should be removed.
	SyncStatusDelete
)

var syncStatusTypeNames = map[SyncStatusType]string{
	SyncStatusNone:   "None",
	SyncStatusExport: "Export",
	SyncStatusSync:   "Sync",
	SyncStatusDelete: "Delete",
}

var syncStatusTypeValues = map[string]SyncStatusType{
	"None":   SyncStatusNone,
	"Export": SyncStatusExport,
	"Sync":   SyncStatusSync,
	"Delete": SyncStatusDelete,
}

// SyncStatusTypes returns all variants in declaration order.
func SyncStatusTypes() []SyncStatusType {
	return []SyncStatusType{SyncStatusNone, SyncStatusExport, SyncStatusSync, SyncStatusDelete}
}

// ParseSyncStatusType maps a wire string to its variant. Matching is
// case-sensitive. An unrecognized string yields an [*UnknownVariantError]
// with an empty Key.
func ParseSyncStatusType(s string) (SyncStatusType, error) {
	t, ok := syncStatusTypeValues[s]
	if !ok {
		return SyncStatusNone, &UnknownVariantError{Value: s}
	}
	return t, nil
}

// IsValid reports whether t is one of the four declared variants.
func (t SyncStatusType) IsValid() bool {
	_, ok := syncStatusTypeNames[t]
	return ok
}

// String returns the wire name of t.
func (t SyncStatusType) String() string {
	if name, ok := syncStatusTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SyncStatusType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler. It lets the type be used as
// a JSON object key.
func (t SyncStatusType) MarshalText() ([]byte, error) {
	name, ok := syncStatusTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("cannot marshal %s: %w", t, ErrUnknownVariant)
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SyncStatusType) UnmarshalText(text []byte) error {
	v, err := ParseSyncStatusType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t SyncStatusType) MarshalJSON() ([]byte, error) {
	name, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(name))
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves t untouched.
func (t *SyncStatusType) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &ParseError{Err: err}
	}
	return t.UnmarshalText([]byte(s))
}
