// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks project records and timeline payloads before
// they are sent to or accepted by the projects API.
//
// A [Validator] validates a value against a list of named fields; with no
// fields given, the default set for the value's type is checked. Absent
// optional fields always pass, so the same rules apply to full records and
// to partial updates.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
