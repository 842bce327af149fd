// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// wireField binds one JSON object key to a field of T.
//
// decode is never called for an absent key or a JSON null, so such keys keep
// the zero value of the field.
type wireField[T any] struct {
	key    string
	decode func(dst *T, raw json.RawMessage) error
	encode func(src T) ([]byte, error)
}

// decodeObject reads a JSON object into a T using the given field table.
// Keys missing from the table are ignored. Key matching is exact.
func decodeObject[T any](data []byte, fields []wireField[T]) (T, error) {
	var out T

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return out, &ParseError{Err: err}
	}
	if obj == nil {
		return out, &ParseError{Err: errNotObject}
	}

	for _, f := range fields {
		raw, ok := obj[f.key]
		if !ok || isJSONNull(raw) {
			continue
		}
		if err := f.decode(&out, raw); err != nil {
			var zero T
			return zero, err
		}
	}

	return out, nil
}

// encodeObject writes every field of the table, in table order.
func encodeObject[T any](src T, fields []wireField[T]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		value, err := f.encode(src)
		if err != nil {
			return nil, fmt.Errorf("error encoding key %q: %w", f.key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// SplitSyncStatuses splits a JSON array document into its raw elements
// without decoding them. A non-array document is a [*ParseError].
func SplitSyncStatuses(data []byte) ([]json.RawMessage, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, &ParseError{Err: err}
	}
	if elements == nil {
		return nil, &ParseError{Err: errNotArray}
	}
	return elements, nil
}

func int32Field[T any](key string, get func(T) int32, set func(*T, int32)) wireField[T] {
	return wireField[T]{
		key: key,
		decode: func(dst *T, raw json.RawMessage) error {
			var v int32
			if err := json.Unmarshal(raw, &v); err != nil {
				return &ParseError{Key: key, Err: err}
			}
			set(dst, v)
			return nil
		},
		encode: func(src T) ([]byte, error) {
			return json.Marshal(get(src))
		},
	}
}

func syncStatusTypeField[T any](key string, get func(T) SyncStatusType, set func(*T, SyncStatusType)) wireField[T] {
	return wireField[T]{
		key: key,
		decode: func(dst *T, raw json.RawMessage) error {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return &ParseError{Key: key, Err: err}
			}
			v, ok := syncStatusTypeValues[s]
			if !ok {
				return &UnknownVariantError{Key: key, Value: s}
			}
			set(dst, v)
			return nil
		},
		encode: func(src T) ([]byte, error) {
			return get(src).MarshalJSON()
		},
	}
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
