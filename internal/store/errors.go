// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by store methods. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrInvalidTTL is returned by [TTLCache.Set] for a TTL shorter than one
	// millisecond.
	ErrInvalidTTL = errors.New("ttl must be at least one millisecond")

	// ErrUnknownDriver is returned by [NewClientStorages] for a driver name
	// it does not recognise.
	ErrUnknownDriver = errors.New("unknown storage driver")

	// ErrProjectNotFound is returned when a project id has no record.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrInvalidProject is returned when a record to save has no id.
	ErrInvalidProject = errors.New("project id is required")
)
