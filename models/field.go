// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

type fieldState uint8

const (
	fieldAbsent fieldState = iota
	fieldNull
	fieldSet
)

// Field is an optional record attribute that remembers how it arrived:
// omitted from the payload (absent), explicitly cleared (null) or carrying a
// value (set). The zero Field is absent.
//
// Struct fields of this type should be tagged `json:",omitzero"` so that an
// absent Field is left out of encoded payloads while a null one is sent as
// JSON null.
type Field[T any] struct {
	value T
	state fieldState
}

// Set returns a Field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, state: fieldSet}
}

// Null returns a Field that was explicitly cleared.
func Null[T any]() Field[T] {
	return Field[T]{state: fieldNull}
}

// Absent returns a Field that was never provided.
func Absent[T any]() Field[T] {
	return Field[T]{}
}

// Present reports whether the field was provided at all, either as a value
// or as an explicit null.
func (f Field[T]) Present() bool {
	return f.state != fieldAbsent
}

// IsNull reports whether the field was explicitly cleared.
func (f Field[T]) IsNull() bool {
	return f.state == fieldNull
}

// IsSet reports whether the field carries a value.
func (f Field[T]) IsSet() bool {
	return f.state == fieldSet
}

// Get returns the value and whether it is set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == fieldSet
}

// OrElse returns the value when set and def otherwise.
func (f Field[T]) OrElse(def T) T {
	if f.state == fieldSet {
		return f.value
	}
	return def
}

// IsZero reports whether the field is absent. encoding/json uses it for the
// omitzero tag option.
func (f Field[T]) IsZero() bool {
	return f.state == fieldAbsent
}

// MarshalJSON encodes a set field as its value and anything else as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != fieldSet {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON is only invoked by encoding/json when the key is present in
// the payload, so the result is either null or set.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*f = Null[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Set(v)
	return nil
}
