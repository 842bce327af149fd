// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValidationFailure describes one array element that could not be decoded.
type ValidationFailure struct {
	// Index is the zero-based position of the element in the input array.
	Index int `json:"index"`
	// Key is the object key at fault, empty when the element as a whole is bad.
	Key string `json:"key,omitempty"`
	// Message is the human-readable decoding error.
	Message string `json:"error"`
}

// ValidationReport summarizes a batch of sync status objects.
//
// The variant counters are plain tallies over the valid elements; they carry
// no judgement about what the update types mean.
type ValidationReport struct {
	Total             int                    `json:"total"`
	Valid             int                    `json:"valid"`
	Failures          []ValidationFailure    `json:"failures,omitempty"`
	PoiUpdateTypes    map[SyncStatusType]int `json:"poiUpdateTypes"`
	ReviewUpdateTypes map[SyncStatusType]int `json:"reviewUpdateTypes"`
	Tiles             int                    `json:"distinctTiles"`
}

// NewValidationReport returns an empty report with every variant counter
// present and set to zero.
func NewValidationReport() ValidationReport {
	r := ValidationReport{
		PoiUpdateTypes:    make(map[SyncStatusType]int, len(syncStatusTypeNames)),
		ReviewUpdateTypes: make(map[SyncStatusType]int, len(syncStatusTypeNames)),
	}
	for _, t := range SyncStatusTypes() {
		r.PoiUpdateTypes[t] = 0
		r.ReviewUpdateTypes[t] = 0
	}
	return r
}

// OK reports whether every element decoded.
func (r ValidationReport) OK() bool {
	return len(r.Failures) == 0
}
