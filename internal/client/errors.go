// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUsage is returned for an unknown command, wrong arguments or an
	// unknown flag.
	ErrUsage = errors.New("usage error")

	// ErrNoOwner is returned by list and watch when neither an argument nor
	// the configured default owner names one.
	ErrNoOwner = errors.New("no project owner given")

	// ErrInvalidJSONArgument is returned when a JSON command argument cannot
	// be decoded.
	ErrInvalidJSONArgument = errors.New("invalid JSON argument")

	// ErrNoMetrics is returned when metrics are requested from a session
	// that does not collect them.
	ErrNoMetrics = errors.New("session has no metrics")
)
