// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import "errors"

var (
	// ErrNoFetch is returned by [New] when the config has no fetch function.
	ErrNoFetch = errors.New("detail cache requires a fetch function")

	// ErrInvalidCapacity is returned by [New] for a negative capacity.
	ErrInvalidCapacity = errors.New("detail cache capacity must not be negative")

	// ErrPurged is recorded for fetches that finished after [DetailCache.Purge].
	ErrPurged = errors.New("detail cache was purged during fetch")
)
