// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus is the synchronization state of a single map tile as reported by
// the sync-status endpoint.
//
// Wire form:
//
//	{"tileX":12,"tileY":34,"poiUpdateType":"Sync","reviewUpdateType":"None"}
//
// Every key is optional on input; absent or null keys keep the zero value
// (0 for coordinates, [SyncStatusNone] for update types). Unknown keys are
// ignored. Output always carries all four keys.
type SyncStatus struct {
	TileX            int32
	TileY            int32
	PoiUpdateType    SyncStatusType
	ReviewUpdateType SyncStatusType
}

var syncStatusFields = []wireField[SyncStatus]{
	int32Field("tileX",
		func(s SyncStatus) int32 { return s.TileX },
		func(s *SyncStatus, v int32) { s.TileX = v }),
	int32Field("tileY",
		func(s SyncStatus) int32 { return s.TileY },
		func(s *SyncStatus, v int32) { s.TileY = v }),
	syncStatusTypeField("poiUpdateType",
		func(s SyncStatus) SyncStatusType { return s.PoiUpdateType },
		func(s *SyncStatus, v SyncStatusType) { s.PoiUpdateType = v }),
	syncStatusTypeField("reviewUpdateType",
		func(s SyncStatus) SyncStatusType { return s.ReviewUpdateType },
		func(s *SyncStatus, v SyncStatusType) { s.ReviewUpdateType = v }),
}

// DecodeSyncStatus parses one JSON object into a [SyncStatus].
//
// It returns a [*ParseError] for malformed JSON, a non-object document or a
// value of the wrong JSON type, and an [*UnknownVariantError] when either
// update type holds a string outside the known variants.
func DecodeSyncStatus(data []byte) (SyncStatus, error) {
	return decodeObject(data, syncStatusFields)
}

// DecodeSyncStatuses parses a JSON array of sync status objects. It stops at
// the first bad element and reports it as an [*ElementError].
func DecodeSyncStatuses(data []byte) ([]SyncStatus, error) {
	elements, err := SplitSyncStatuses(data)
	if err != nil {
		return nil, err
	}

	statuses := make([]SyncStatus, 0, len(elements))
	for i, raw := range elements {
		s, err := DecodeSyncStatus(raw)
		if err != nil {
			return nil, &ElementError{Index: i, Err: err}
		}
		statuses = append(statuses, s)
	}

	return statuses, nil
}

// EncodeSyncStatus renders s as a compact JSON object with all four keys.
func EncodeSyncStatus(s SyncStatus) ([]byte, error) {
	return encodeObject(s, syncStatusFields)
}

// Tile returns the coordinate pair of the tile s describes.
func (s SyncStatus) Tile() TileCoordinate {
	return TileCoordinate{X: s.TileX, Y: s.TileY}
}

// MarshalJSON implements json.Marshaler.
func (s SyncStatus) MarshalJSON() ([]byte, error) {
	return EncodeSyncStatus(s)
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null is a no-op, as with
// encoding/json's own types; any other non-object input is a [*ParseError].
func (s *SyncStatus) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}

	v, err := DecodeSyncStatus(data)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
